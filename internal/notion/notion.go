package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	apiBase = "https://api.notion.com/v1"

	// apiVersion pins the Notion API revision; property payload shapes
	// change between revisions.
	apiVersion = "2022-06-28"

	// pageSize is the maximum page size the query endpoint accepts.
	pageSize = 100
)

// Client defines the interface for reading rows from a Notion database.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	QueryDatabase(ctx context.Context, databaseID string) ([]Page, error)
}

// APIClient provides methods for reading trade records from the Notion API.
// It wraps an HTTP client and handles authentication, versioning and cursor
// pagination.
type APIClient struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

// NewAPIClient creates a new Notion client authenticated with the given
// integration token.
//
// Returns:
//   - *APIClient: A new client instance ready for use
func NewAPIClient(token string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		baseURL:    apiBase,
	}
}

// NewAPIClientWithBaseURL creates a Notion client pointed at an alternate
// endpoint. Used by tests to target an httptest server.
func NewAPIClientWithBaseURL(token, baseURL string) *APIClient {
	c := NewAPIClient(token)
	c.baseURL = baseURL
	return c
}

// QueryDatabase retrieves every row of a Notion database, following the
// has_more/next_cursor pagination of the query endpoint until exhausted.
// Pages are returned in the order Notion yields them.
//
// Parameters:
//   - ctx: Cancellation context covering all pages of the query
//   - databaseID: UUID of the database to query
//
// Returns:
//   - []Page: All rows of the database
//   - error: If any page request fails or the API reports an error
func (c *APIClient) QueryDatabase(ctx context.Context, databaseID string) ([]Page, error) {
	var all []Page
	cursor := ""

	for {
		page, err := c.queryPage(ctx, databaseID, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)

		if !page.HasMore || page.NextCursor == nil {
			return all, nil
		}
		cursor = *page.NextCursor
	}
}

// queryPage executes a single database query call with an optional cursor.
func (c *APIClient) queryPage(ctx context.Context, databaseID, cursor string) (QueryResponse, error) {
	body, err := json.Marshal(queryRequest{PageSize: pageSize, StartCursor: cursor})
	if err != nil {
		return QueryResponse{}, err
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return QueryResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return QueryResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return QueryResponse{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
			return QueryResponse{}, fmt.Errorf("notion error %d: %s", resp.StatusCode, apiErr.Message)
		}
		return QueryResponse{}, fmt.Errorf("notion error %d: %s", resp.StatusCode, string(data))
	}

	var response QueryResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return QueryResponse{}, err
	}

	return response, nil
}

// StringValue extracts a textual value from a property. Title, rich_text and
// select properties collapse to their plain text; numbers are formatted;
// anything else yields an empty string.
func (p Property) StringValue() string {
	switch p.Type {
	case "title":
		if len(p.Title) > 0 {
			return p.Title[0].PlainText
		}
	case "rich_text":
		if len(p.RichText) > 0 {
			return p.RichText[0].PlainText
		}
	case "select":
		if p.Select != nil {
			return p.Select.Name
		}
	case "number":
		if p.Number != nil {
			return strconv.FormatFloat(*p.Number, 'f', -1, 64)
		}
	case "formula":
		if p.Formula != nil && p.Formula.String != nil {
			return *p.Formula.String
		}
	}
	return ""
}

// NumberValue extracts a numeric value from a property. Formula strings that
// parse as numbers are accepted; ledgers exported from Notion store some
// computed percentages as string formulas.
//
// Returns:
//   - float64: The numeric value, 0 when absent
//   - bool: true when a numeric value was present
func (p Property) NumberValue() (float64, bool) {
	switch p.Type {
	case "number":
		if p.Number != nil {
			return *p.Number, true
		}
	case "formula":
		if p.Formula == nil {
			return 0, false
		}
		switch p.Formula.Type {
		case "number":
			if p.Formula.Number != nil {
				return *p.Formula.Number, true
			}
		case "string":
			if p.Formula.String != nil {
				if v, err := strconv.ParseFloat(*p.Formula.String, 64); err == nil {
					return v, true
				}
			}
		}
	case "rich_text":
		if len(p.RichText) > 0 {
			if v, err := strconv.ParseFloat(p.RichText[0].PlainText, 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// DateValue extracts a calendar date from a date or formula property.
// Notion date starts may carry a time component; only the date part is kept.
//
// Returns:
//   - time.Time: The date at midnight UTC, zero when absent
//   - bool: true when a date was present and parsable
func (p Property) DateValue() (time.Time, bool) {
	var start string
	switch p.Type {
	case "date":
		if p.Date != nil {
			start = p.Date.Start
		}
	case "formula":
		if p.Formula != nil && p.Formula.Date != nil {
			start = p.Formula.Date.Start
		}
	}
	if len(start) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", start[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
