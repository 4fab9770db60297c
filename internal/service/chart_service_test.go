package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
	"github.com/hmorita/Trade-Journal-Backend/internal/testutil"
	"github.com/hmorita/Trade-Journal-Backend/internal/yahoo"
)

var chartSuffixes = map[model.Market]string{
	model.MarketJapan: ".T",
	model.MarketUS:    "",
}

// weekendGapResponse builds a two-candle series with a weekend between the
// candles, so marker alignment has a gap to snap across.
func weekendGapResponse() yahoo.Response {
	dates := []time.Time{
		testutil.Day(2025, 3, 6), // Friday
		testutil.Day(2025, 3, 9), // Monday
	}
	prices := []float64{100, 105}

	timestamps := make([]int64, len(dates))
	closes := make([]*float64, len(dates))
	for i := range dates {
		timestamps[i] = dates[i].Unix()
		closes[i] = &prices[i]
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta:      yahoo.Meta{Symbol: "TEST", Currency: "USD"},
					Timestamp: timestamps,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{{Close: closes}},
					},
				},
			},
		},
	}
}

// TestChartService_TradeChart tests candle fetching and marker alignment.
//
// WHY: Entry and exit dates are calendar dates from the journal; the chart
// only has trading days. The snap-forward rule is what keeps markers on a
// real candle, and open trades must mark the latest candle instead of an
// exit.
func TestChartService_TradeChart(t *testing.T) {
	t.Run("closed trade gets entry and exit markers", func(t *testing.T) {
		start := testutil.Day(2025, 3, 1)
		mock := (&testutil.MockYahooClient{}).WithResponse(testutil.CreateMockYahooResponseRange(start, 30, 100))
		svc := service.NewChartServiceWithClock(mock, chartSuffixes, 20, testutil.Clock())

		trade := testutil.ClosedTrade("Toyota", "7203", testutil.Day(2025, 3, 5), testutil.Day(2025, 3, 20), 1000, 1200, 10)

		chart, err := svc.TradeChart(trade, model.MarketJapan)
		if err != nil {
			t.Fatalf("Failed to build trade chart: %v", err)
		}

		if chart.Symbol != "7203.T" {
			t.Errorf("Expected market suffix on symbol, got %s", chart.Symbol)
		}
		if mock.LastSymbol != "7203.T" {
			t.Errorf("Expected query for 7203.T, got %s", mock.LastSymbol)
		}
		if len(chart.Candles) != 30 {
			t.Errorf("Expected 30 candles, got %d", len(chart.Candles))
		}

		if chart.Entry == nil {
			t.Fatal("Expected an entry marker")
		}
		if !chart.Entry.Date.Equal(testutil.Day(2025, 3, 5)) {
			t.Errorf("Expected entry marker on 2025-03-05, got %v", chart.Entry.Date)
		}
		if chart.Exit == nil {
			t.Fatal("Expected an exit marker")
		}
		if !chart.Exit.Date.Equal(testutil.Day(2025, 3, 20)) {
			t.Errorf("Expected exit marker on 2025-03-20, got %v", chart.Exit.Date)
		}
		if chart.Current != nil {
			t.Error("Expected no current marker for a closed trade")
		}
	})

	t.Run("markers snap forward across non-trading days", func(t *testing.T) {
		mock := (&testutil.MockYahooClient{}).WithResponse(weekendGapResponse())
		svc := service.NewChartServiceWithClock(mock, chartSuffixes, 20, testutil.Clock())

		// Bought on a Saturday; the marker must land on Monday's candle.
		trade := testutil.OpenTrade("Acme", "TEST", testutil.Day(2025, 3, 7), 100, 5)

		chart, err := svc.TradeChart(trade, model.MarketUS)
		if err != nil {
			t.Fatalf("Failed to build trade chart: %v", err)
		}

		if chart.Entry == nil {
			t.Fatal("Expected an entry marker")
		}
		if chart.Entry.Index != 1 {
			t.Errorf("Expected entry marker at index 1 (Monday), got %d", chart.Entry.Index)
		}
		if !chart.Entry.Date.Equal(testutil.Day(2025, 3, 9)) {
			t.Errorf("Expected entry marker on 2025-03-09, got %v", chart.Entry.Date)
		}
		if chart.Entry.Price != 105 {
			t.Errorf("Expected entry marker price 105, got %v", chart.Entry.Price)
		}
	})

	t.Run("open trade marks the latest candle", func(t *testing.T) {
		start := testutil.Day(2025, 5, 1)
		mock := (&testutil.MockYahooClient{}).WithResponse(testutil.CreateMockYahooResponseRange(start, 10, 200))
		svc := service.NewChartServiceWithClock(mock, chartSuffixes, 20, testutil.Clock())

		trade := testutil.OpenTrade("Acme", "ACME", testutil.Day(2025, 5, 2), 200, 5)

		chart, err := svc.TradeChart(trade, model.MarketUS)
		if err != nil {
			t.Fatalf("Failed to build trade chart: %v", err)
		}

		if chart.Exit != nil {
			t.Error("Expected no exit marker for an open trade")
		}
		if chart.Current == nil {
			t.Fatal("Expected a current marker")
		}
		if chart.Current.Index != len(chart.Candles)-1 {
			t.Errorf("Expected current marker on last candle, got index %d", chart.Current.Index)
		}
	})

	t.Run("query failure wraps the fetch sentinel", func(t *testing.T) {
		mock := (&testutil.MockYahooClient{}).WithError(errors.New("connection refused"))
		svc := service.NewChartServiceWithClock(mock, chartSuffixes, 20, testutil.Clock())

		trade := testutil.OpenTrade("Acme", "ACME", testutil.Day(2025, 5, 2), 200, 5)

		_, err := svc.TradeChart(trade, model.MarketUS)
		if !errors.Is(err, apperrors.ErrFailedToFetchChart) {
			t.Errorf("Expected ErrFailedToFetchChart, got %v", err)
		}
	})

	t.Run("empty response wraps the fetch sentinel", func(t *testing.T) {
		mock := (&testutil.MockYahooClient{}).WithResponse(yahoo.Response{})
		svc := service.NewChartServiceWithClock(mock, chartSuffixes, 20, testutil.Clock())

		trade := testutil.OpenTrade("Acme", "ACME", testutil.Day(2025, 5, 2), 200, 5)

		_, err := svc.TradeChart(trade, model.MarketUS)
		if !errors.Is(err, apperrors.ErrFailedToFetchChart) {
			t.Errorf("Expected ErrFailedToFetchChart, got %v", err)
		}
	})
}
