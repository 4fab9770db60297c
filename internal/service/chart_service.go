package service

import (
	"fmt"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/yahoo"
)

// ChartService builds the per-trade candlestick data: the OHLC series
// surrounding a trade's holding period, with entry/exit markers aligned to
// the nearest trading day. It performs no rendering; the browser draws the
// candles.
type ChartService struct {
	client       yahoo.Client
	suffix       map[model.Market]string
	lookbackDays int
	now          func() time.Time
}

// NewChartService creates a new ChartService. lookbackDays controls how many
// calendar days of context are shown before the entry date.
func NewChartService(client yahoo.Client, suffix map[model.Market]string, lookbackDays int) *ChartService {
	return &ChartService{
		client:       client,
		suffix:       suffix,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// NewChartServiceWithClock creates a ChartService with a fixed clock.
// Used by tests that exercise the open-position date range.
func NewChartServiceWithClock(client yahoo.Client, suffix map[model.Market]string, lookbackDays int, now func() time.Time) *ChartService {
	s := NewChartService(client, suffix, lookbackDays)
	s.now = now
	return s
}

// TradeChart fetches the candle series for one trade and aligns its markers.
//
// The range starts lookbackDays plus a 10-day pad before entry (the pad
// absorbs weekends and holidays so the lookback window still holds enough
// trading days) and ends 5 days after exit, or tomorrow while the position
// is open. Markers snap to the first trading day on or after their calendar
// date; open trades also get a marker on the latest candle.
func (s *ChartService) TradeChart(trade model.Trade, market model.Market) (model.TradeChart, error) {
	symbol := trade.Code + s.suffix[market]

	start := trade.BuyDate.AddDate(0, 0, -(s.lookbackDays + 10))
	var end time.Time
	if trade.IsClosed() {
		end = trade.SellDate.AddDate(0, 0, 5)
	} else {
		end = s.now().AddDate(0, 0, 1)
	}

	resp, err := s.client.QueryYahooSymbolByDateRange(symbol, start, end)
	if err != nil {
		return model.TradeChart{}, fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToFetchChart, symbol, err)
	}

	chart, err := s.client.ParseChart(resp)
	if err != nil {
		return model.TradeChart{}, fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToFetchChart, symbol, err)
	}
	if len(chart.Indicators) == 0 {
		return model.TradeChart{}, fmt.Errorf("%w: %s", apperrors.ErrChartDataNotFound, symbol)
	}

	candles := make([]model.Candle, len(chart.Indicators))
	for i, ind := range chart.Indicators {
		candles[i] = model.Candle{
			Date:   ind.Date,
			Open:   ind.PriceOpen,
			High:   ind.PriceHigh,
			Low:    ind.PriceLow,
			Close:  ind.PriceClose,
			Volume: ind.Volume,
		}
	}

	result := model.TradeChart{
		Symbol:  symbol,
		Candles: candles,
		Entry:   markerOnOrAfter(chart, trade.BuyDate),
	}

	if trade.IsClosed() {
		result.Exit = markerOnOrAfter(chart, trade.SellDate)
	} else {
		last := len(chart.Indicators) - 1
		result.Current = &model.ChartMarker{
			Index: last,
			Date:  chart.Indicators[last].Date,
			Price: chart.Indicators[last].PriceClose,
		}
	}

	return result, nil
}

// markerOnOrAfter aligns a calendar date to the nearest trading day at or
// after it. Returns nil when the whole series predates the date.
func markerOnOrAfter(chart yahoo.PriceChart, date time.Time) *model.ChartMarker {
	idx, ok := chart.IndexOnOrAfter(date)
	if !ok {
		return nil
	}
	return &model.ChartMarker{
		Index: idx,
		Date:  chart.Indicators[idx].Date,
		Price: chart.Indicators[idx].PriceClose,
	}
}
