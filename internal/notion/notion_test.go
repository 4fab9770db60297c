package notion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/notion"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

// TestAPIClient_QueryDatabase tests the paginated database query against a
// stub server.
//
// WHY: Notion caps query pages at 100 rows; a journal past its hundredth
// trade silently truncates if the cursor loop is wrong.
func TestAPIClient_QueryDatabase(t *testing.T) {
	t.Run("follows cursors until exhausted", func(t *testing.T) {
		var requests []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				PageSize    int    `json:"page_size"`
				StartCursor string `json:"start_cursor"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("Failed to decode request body: %v", err)
			}
			requests = append(requests, body.StartCursor)

			if body.PageSize != 100 {
				t.Errorf("Expected page size 100, got %d", body.PageSize)
			}
			if got := r.Header.Get("Notion-Version"); got != "2022-06-28" {
				t.Errorf("Expected pinned API version, got %q", got)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("Expected bearer auth, got %q", got)
			}

			w.Header().Set("Content-Type", "application/json")
			if body.StartCursor == "" {
				cursor := "cursor-2"
				json.NewEncoder(w).Encode(notion.QueryResponse{
					Results:    []notion.Page{{ID: "page-1"}, {ID: "page-2"}},
					HasMore:    true,
					NextCursor: &cursor,
				})
				return
			}
			json.NewEncoder(w).Encode(notion.QueryResponse{
				Results: []notion.Page{{ID: "page-3"}},
			})
		}))
		defer server.Close()

		client := notion.NewAPIClientWithBaseURL("test-token", server.URL)

		pages, err := client.QueryDatabase(context.Background(), "db-1")
		if err != nil {
			t.Fatalf("Failed to query database: %v", err)
		}

		if len(pages) != 3 {
			t.Fatalf("Expected 3 pages across 2 calls, got %d", len(pages))
		}
		if pages[2].ID != "page-3" {
			t.Errorf("Expected pages in API order, got %s last", pages[2].ID)
		}
		if len(requests) != 2 || requests[0] != "" || requests[1] != "cursor-2" {
			t.Errorf("Expected cursor progression [\"\", cursor-2], got %v", requests)
		}
	})

	t.Run("surfaces API errors with the Notion message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"object_not_found","message":"Could not find database"}`))
		}))
		defer server.Close()

		client := notion.NewAPIClientWithBaseURL("test-token", server.URL)

		_, err := client.QueryDatabase(context.Background(), "missing-db")
		if err == nil {
			t.Fatal("Expected an error for a 404 response")
		}
		if !strings.Contains(err.Error(), "Could not find database") {
			t.Errorf("Expected Notion message in error, got %v", err)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(notion.QueryResponse{})
		}))
		defer server.Close()

		client := notion.NewAPIClientWithBaseURL("test-token", server.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := client.QueryDatabase(ctx, "db-1"); err == nil {
			t.Error("Expected an error for a cancelled context")
		}
	})
}

// TestProperty_Values tests the typed property extraction helpers.
//
// WHY: Notion tags every property with a type discriminator and the journal
// databases mix numbers, formulas and rich text for the same logical
// columns. The helpers normalize all of it.
func TestProperty_Values(t *testing.T) {
	t.Run("StringValue", func(t *testing.T) {
		tests := []struct {
			name string
			prop notion.Property
			want string
		}{
			{"title", notion.Property{Type: "title", Title: []notion.RichText{{PlainText: "Toyota"}}}, "Toyota"},
			{"rich text", notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: "7203"}}}, "7203"},
			{"select", notion.Property{Type: "select", Select: &notion.Select{Name: "売却済"}}, "売却済"},
			{"number", notion.Property{Type: "number", Number: fptr(7203)}, "7203"},
			{"formula string", notion.Property{Type: "formula", Formula: &notion.Formula{Type: "string", String: sptr("12.5%")}}, "12.5%"},
			{"empty title", notion.Property{Type: "title"}, ""},
			{"unknown type", notion.Property{Type: "files"}, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := tt.prop.StringValue(); got != tt.want {
					t.Errorf("Expected %q, got %q", tt.want, got)
				}
			})
		}
	})

	t.Run("NumberValue", func(t *testing.T) {
		tests := []struct {
			name   string
			prop   notion.Property
			want   float64
			wantOK bool
		}{
			{"number", notion.Property{Type: "number", Number: fptr(1200)}, 1200, true},
			{"formula number", notion.Property{Type: "formula", Formula: &notion.Formula{Type: "number", Number: fptr(20)}}, 20, true},
			{"formula numeric string", notion.Property{Type: "formula", Formula: &notion.Formula{Type: "string", String: sptr("20.5")}}, 20.5, true},
			{"formula non-numeric string", notion.Property{Type: "formula", Formula: &notion.Formula{Type: "string", String: sptr("n/a")}}, 0, false},
			{"rich text numeric", notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: "42"}}}, 42, true},
			{"absent number", notion.Property{Type: "number"}, 0, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := tt.prop.NumberValue()
				if got != tt.want || ok != tt.wantOK {
					t.Errorf("Expected (%v, %v), got (%v, %v)", tt.want, tt.wantOK, got, ok)
				}
			})
		}
	})

	t.Run("DateValue", func(t *testing.T) {
		t.Run("keeps only the date part", func(t *testing.T) {
			prop := notion.Property{Type: "date", Date: &notion.Date{Start: "2025-01-06T09:30:00.000+09:00"}}

			d, ok := prop.DateValue()
			if !ok {
				t.Fatal("Expected a date")
			}
			want := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
			if !d.Equal(want) {
				t.Errorf("Expected %v, got %v", want, d)
			}
		})

		t.Run("absent date reports false", func(t *testing.T) {
			if _, ok := (notion.Property{Type: "date"}).DateValue(); ok {
				t.Error("Expected no date")
			}
		})
	})
}

// TestTradesFromPages tests the row-to-trade mapping for the Japanese-named
// journal schema.
func TestTradesFromPages(t *testing.T) {
	t.Run("maps a sold row to a closed trade", func(t *testing.T) {
		page := notion.Page{
			ID: "page-1",
			Properties: map[string]notion.Property{
				"銘柄名":    {Type: "title", Title: []notion.RichText{{PlainText: "Toyota"}}},
				"証券コード":  {Type: "rich_text", RichText: []notion.RichText{{PlainText: "7203"}}},
				"ステータス":  {Type: "select", Select: &notion.Select{Name: "売却済"}},
				"買付日":    {Type: "date", Date: &notion.Date{Start: "2025-01-06"}},
				"売付日":    {Type: "date", Date: &notion.Date{Start: "2025-02-03"}},
				"買付単価":   {Type: "number", Number: fptr(1000)},
				"売付単価":   {Type: "number", Number: fptr(1200)},
				"買付数量":   {Type: "number", Number: fptr(10)},
				"買付約定代金": {Type: "number", Number: fptr(10000)},
				"売付約定代金": {Type: "number", Number: fptr(12000)},
				"実現損益":   {Type: "number", Number: fptr(2000)},
				"増減率":    {Type: "formula", Formula: &notion.Formula{Type: "number", Number: fptr(20)}},
			},
		}

		trades := notion.TradesFromPages([]notion.Page{page})

		if len(trades) != 1 {
			t.Fatalf("Expected 1 trade, got %d", len(trades))
		}
		trade := trades[0]
		if !trade.IsClosed() {
			t.Errorf("Expected closed trade, got %s", trade.Status)
		}
		if trade.Name != "Toyota" || trade.Code != "7203" {
			t.Errorf("Unexpected identity: %s / %s", trade.Name, trade.Code)
		}
		if trade.PnL != 2000 || trade.ChangePct != 20 {
			t.Errorf("Unexpected figures: pnl %v pct %v", trade.PnL, trade.ChangePct)
		}
		if !trade.BuyDate.Equal(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Unexpected buy date %v", trade.BuyDate)
		}
	})

	t.Run("maps a held row to an open trade", func(t *testing.T) {
		page := notion.Page{
			Properties: map[string]notion.Property{
				"銘柄名":   {Type: "title", Title: []notion.RichText{{PlainText: "Sony"}}},
				"証券コード": {Type: "rich_text", RichText: []notion.RichText{{PlainText: "6758"}}},
				"ステータス": {Type: "select", Select: &notion.Select{Name: "保有中"}},
				"買付日":   {Type: "date", Date: &notion.Date{Start: "2025-03-03"}},
				"買付単価":  {Type: "number", Number: fptr(2000)},
				"買付数量":  {Type: "number", Number: fptr(5)},
			},
		}

		trades := notion.TradesFromPages([]notion.Page{page})

		if !trades[0].IsOpen() {
			t.Errorf("Expected open trade, got %s", trades[0].Status)
		}
		if !trades[0].SellDate.IsZero() {
			t.Errorf("Expected zero sell date, got %v", trades[0].SellDate)
		}
	})

	t.Run("unrecognized status defaults to open", func(t *testing.T) {
		page := notion.Page{
			Properties: map[string]notion.Property{
				"ステータス": {Type: "select", Select: &notion.Select{Name: "検討中"}},
			},
		}

		trades := notion.TradesFromPages([]notion.Page{page})

		if !trades[0].IsOpen() {
			t.Errorf("Expected open for unrecognized status, got %s", trades[0].Status)
		}
	})

	t.Run("falls back to the alternate P&L property name", func(t *testing.T) {
		page := notion.Page{
			Properties: map[string]notion.Property{
				"ステータス": {Type: "select", Select: &notion.Select{Name: "売却済"}},
				"評価損益":  {Type: "number", Number: fptr(-300)},
			},
		}

		trades := notion.TradesFromPages([]notion.Page{page})

		if trades[0].PnL != -300 {
			t.Errorf("Expected alternate P&L -300, got %v", trades[0].PnL)
		}
	})
}
