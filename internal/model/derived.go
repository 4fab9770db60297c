package model

import "time"

// UnrealizedPosition represents the marked-to-market state of one open trade.
//
// CurrentPrice is fetched at evaluation time. When the live lookup fails the
// purchase price is substituted, which deliberately reports zero unrealized
// change instead of propagating the failure.
type UnrealizedPosition struct {
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	BuyDate      time.Time `json:"buyDate"`
	BuyPrice     float64   `json:"buyPrice"`
	CurrentPrice float64   `json:"currentPrice"`
	Quantity     float64   `json:"quantity"`
	BuyValue     float64   `json:"buyValue"`     // Purchase consideration
	CurrentValue float64   `json:"currentValue"` // CurrentPrice * Quantity
	PnL          float64   `json:"pnl"`          // CurrentValue - BuyValue
	ChangePct    float64   `json:"changePct"`    // PnL / BuyValue * 100, 0 when BuyValue is 0
}

// EquityPoint is one sample of the equity curve: the total portfolio value at
// a point in time. Closed trades contribute one point each at their sale date;
// a single trailing point at evaluation time adds the unrealized P&L.
type EquityPoint struct {
	Date      time.Time `json:"date"`
	Assets    float64   `json:"assets"`
	Principal float64   `json:"principal"`
}

// KPISnapshot aggregates performance metrics over one ledger.
// All values are recomputed from scratch on every request.
type KPISnapshot struct {
	TradeCount    int     `json:"tradeCount"`    // Number of closed trades
	WinRate       float64 `json:"winRate"`       // Winners / closed * 100, 0 when no closed trades
	AvgProfitPct  float64 `json:"avgProfitPct"`  // Mean percentage change over winners, 0 when none
	AvgLossPct    float64 `json:"avgLossPct"`    // Mean percentage change over losers, 0 when none
	RealizedPnL   float64 `json:"realizedPnl"`   // Sum of realized P&L over closed trades
	UnrealizedPnL float64 `json:"unrealizedPnl"` // Sum of unrealized P&L over open positions
	Principal     float64 `json:"principal"`     // Fixed capital base
	Cash          float64 `json:"cash"`          // Principal + realized - open cost basis
	HoldingsValue float64 `json:"holdingsValue"` // Sum of current value over open positions
	TotalAssets   float64 `json:"totalAssets"`   // Cash + holdings value
	TotalPnL      float64 `json:"totalPnl"`      // Realized + unrealized
}

// SummaryRow is the flattened display shape shared by closed and open trades
// in the per-trade listing. Open trades show "-" as the sell date and their
// unrealized figures as P&L.
type SummaryRow struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Status    string  `json:"status"`
	BuyDate   string  `json:"buyDate"`   // YYYY-MM-DD
	SellDate  string  `json:"sellDate"`  // YYYY-MM-DD, "-" while open
	PnL       float64 `json:"pnl"`       // Realized or unrealized P&L
	ChangePct string  `json:"changePct"` // Formatted with two decimals and a trailing "%"
}

// PnLBar is one bar of the per-trade P&L chart, in sale-date order.
type PnLBar struct {
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	SellDate time.Time `json:"sellDate"`
	PnL      float64   `json:"pnl"`
}

// WinLossDistribution counts closed trades per outcome for the pie chart.
// Break-even trades count toward the total but toward neither bucket.
type WinLossDistribution struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	BreakEven int `json:"breakEven"`
}
