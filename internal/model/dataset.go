package model

import "fmt"

// Market identifies the exchange region a ledger belongs to.
type Market string

// Style identifies the trading style a ledger belongs to.
type Style string

const (
	MarketJapan Market = "japan"
	MarketUS    Market = "us"

	StyleSwing Style = "swing"
	StyleLong  Style = "long"
)

// Dataset identifies one ledger: a (market, style) combination backed by one
// flat file pair on disk and one Notion database upstream.
type Dataset struct {
	Market Market `json:"market"`
	Style  Style  `json:"style"`
}

// AllDatasets lists every ledger the application manages, in sync order.
func AllDatasets() []Dataset {
	return []Dataset{
		{MarketJapan, StyleSwing},
		{MarketJapan, StyleLong},
		{MarketUS, StyleSwing},
		{MarketUS, StyleLong},
	}
}

// Key returns the canonical identifier used for file names, Notion database
// configuration and GitHub mirror paths, e.g. "japan_swing".
func (d Dataset) Key() string {
	return fmt.Sprintf("%s_%s", d.Market, d.Style)
}

// DisplayName returns a human-readable label used in sync commit messages.
func (d Dataset) DisplayName() string {
	market := "Japan"
	if d.Market == MarketUS {
		market = "US"
	}
	style := "Swing"
	if d.Style == StyleLong {
		style = "Long-Term"
	}
	return market + " " + style
}
