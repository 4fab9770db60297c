package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hmorita/Trade-Journal-Backend/internal/api/handlers"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/testutil"
)

func newDashboardHandler(t *testing.T, trades []model.Trade, prices *testutil.StaticPriceSource) *handlers.DashboardHandler {
	t.Helper()
	ledgers := testutil.NewTestLedgerService(t, japanSwing, trades)
	accounting := testutil.NewTestAccountingService(t, prices)
	return handlers.NewDashboardHandler(ledgers, accounting, testConfig())
}

// TestDashboardHandler_Summary tests the aggregate overview endpoint.
//
// WHY: The summary is the landing payload of the dashboard. The empty-state
// contract (200 with hasData=false, never an error) is what the frontend
// keys its "run a sync" screen on.
func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("returns KPIs and charts for a populated ledger", func(t *testing.T) {
		trades := []model.Trade{
			testutil.ClosedTrade("Toyota", "7203", testutil.Day(2025, 1, 6), testutil.Day(2025, 2, 3), 1000, 1200, 10),
		}
		handler := newDashboardHandler(t, trades, nil)

		req := httptest.NewRequest("GET", "/api/dashboard/summary?market=japan&style=swing", nil)
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var response handlers.SummaryResponse
		decodeBody(t, rec, &response)

		if !response.HasData {
			t.Error("Expected hasData true")
		}
		if response.KPIs.RealizedPnL != 2000 {
			t.Errorf("Expected realized P&L 2000, got %v", response.KPIs.RealizedPnL)
		}
		if response.KPIs.WinRate != 100 {
			t.Errorf("Expected win rate 100, got %v", response.KPIs.WinRate)
		}
		if len(response.EquityCurve) != 2 {
			t.Errorf("Expected 2 equity points, got %d", len(response.EquityCurve))
		}
		if len(response.PnLBars) != 1 {
			t.Errorf("Expected 1 P&L bar, got %d", len(response.PnLBars))
		}
		if response.WinLoss.Wins != 1 {
			t.Errorf("Expected 1 win, got %d", response.WinLoss.Wins)
		}
	})

	t.Run("prices open positions into the KPIs", func(t *testing.T) {
		trades := []model.Trade{
			testutil.OpenTrade("Sony", "6758", testutil.Day(2025, 3, 3), 2000, 5),
		}
		prices := &testutil.StaticPriceSource{Prices: map[string]float64{"6758": 2100}}
		handler := newDashboardHandler(t, trades, prices)

		req := httptest.NewRequest("GET", "/api/dashboard/summary?market=japan&style=swing", nil)
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		var response handlers.SummaryResponse
		decodeBody(t, rec, &response)

		if response.KPIs.UnrealizedPnL != 500 {
			t.Errorf("Expected unrealized P&L 500, got %v", response.KPIs.UnrealizedPnL)
		}
		if response.KPIs.HoldingsValue != 10500 {
			t.Errorf("Expected holdings value 10500, got %v", response.KPIs.HoldingsValue)
		}
	})

	t.Run("absent ledger yields 200 with hasData false", func(t *testing.T) {
		handler := newDashboardHandler(t, nil, nil)

		req := httptest.NewRequest("GET", "/api/dashboard/summary?market=japan&style=swing", nil)
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200 for empty state, got %d", rec.Code)
		}

		var response handlers.SummaryResponse
		decodeBody(t, rec, &response)

		if response.HasData {
			t.Error("Expected hasData false")
		}
		if response.KPIs.TotalAssets != 100000 {
			t.Errorf("Expected total assets at principal, got %v", response.KPIs.TotalAssets)
		}
	})

	t.Run("rejects an unknown dataset", func(t *testing.T) {
		handler := newDashboardHandler(t, nil, nil)

		req := httptest.NewRequest("GET", "/api/dashboard/summary?market=europe&style=swing", nil)
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}

		var body map[string]string
		decodeBody(t, rec, &body)
		if body["error"] == "" {
			t.Error("Expected an error message in the body")
		}
	})
}
