package notion

import "encoding/json"

// queryRequest is the body of a database query call. The cursor is omitted on
// the first page.
type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryResponse represents one page of results from the Notion database
// query endpoint. HasMore and NextCursor drive pagination.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Page is one database row. Property values are kept raw and decoded
// per-type by the extraction helpers, mirroring how the Notion API tags each
// property with its own type discriminator.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is a single typed property value of a page.
type Property struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title"`
	RichText []RichText `json:"rich_text"`
	Number   *float64   `json:"number"`
	Select   *Select    `json:"select"`
	Date     *Date      `json:"date"`
	Formula  *Formula   `json:"formula"`
}

// RichText is one fragment of a title or rich_text property.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// Select is the chosen option of a select property.
type Select struct {
	Name string `json:"name"`
}

// Date is the value of a date property. Start is ISO 8601, date-only for
// all-day values.
type Date struct {
	Start string `json:"start"`
}

// Formula is the computed value of a formula property. Exactly one of the
// typed fields is populated, per the Type discriminator.
type Formula struct {
	Type    string   `json:"type"`
	Number  *float64 `json:"number"`
	String  *string  `json:"string"`
	Boolean *bool    `json:"boolean"`
	Date    *Date    `json:"date"`
}

// errorResponse is the body Notion returns on non-2xx statuses.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e errorResponse) String() string {
	out, _ := json.Marshal(e)
	return string(out)
}
