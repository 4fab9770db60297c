package model

import "time"

// Candle is one trading day of OHLCV data for the per-trade chart.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// ChartMarker annotates one candle of a trade chart. Markers are aligned to
// the first trading day on or after the trade's calendar date, since the
// entry or exit date may fall on a non-trading day.
type ChartMarker struct {
	Index int       `json:"index"` // Position within the candle series
	Date  time.Time `json:"date"`
	Price float64   `json:"price"` // Close of the aligned candle
}

// TradeChart is the renderable price series for one selected trade, with
// entry/exit markers and, for open positions, a marker on the latest candle.
type TradeChart struct {
	Symbol  string       `json:"symbol"` // Resolved symbol including market suffix
	Candles []Candle     `json:"candles"`
	Entry   *ChartMarker `json:"entry,omitempty"`
	Exit    *ChartMarker `json:"exit,omitempty"`
	Current *ChartMarker `json:"current,omitempty"`
}
