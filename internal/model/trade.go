package model

import "time"

// TradeStatus represents the lifecycle state of a trade.
type TradeStatus string

const (
	// TradeStatusClosed marks a trade that has been fully sold.
	TradeStatusClosed TradeStatus = "closed"
	// TradeStatusOpen marks a position that is still held.
	TradeStatusOpen TradeStatus = "open"
)

// Trade represents one row of the trade ledger.
//
// A closed trade always carries a sell date, sell price, realized P&L and a
// percentage change with the same sign as the P&L. An open trade carries none
// of the sell-side fields (they are zero values).
type Trade struct {
	Name      string      `json:"name"`      // Display name of the security
	Code      string      `json:"code"`      // Security code / ticker, without market suffix
	Status    TradeStatus `json:"status"`    // closed or open
	BuyDate   time.Time   `json:"buyDate"`   // Purchase date
	SellDate  time.Time   `json:"sellDate"`  // Sale date, zero while open
	BuyPrice  float64     `json:"buyPrice"`  // Purchase unit price
	SellPrice float64     `json:"sellPrice"` // Sale unit price, 0 while open
	Quantity  float64     `json:"quantity"`  // Purchase quantity, always positive
	BuyValue  float64     `json:"buyValue"`  // Purchase consideration (price * quantity)
	SellValue float64     `json:"sellValue"` // Sale consideration, 0 while open
	PnL       float64     `json:"pnl"`       // Realized P&L, 0 while open
	ChangePct float64     `json:"changePct"` // Realized percentage change, 0 while open
}

// IsClosed reports whether the trade has been sold.
func (t Trade) IsClosed() bool {
	return t.Status == TradeStatusClosed
}

// IsOpen reports whether the position is still held.
func (t Trade) IsOpen() bool {
	return t.Status == TradeStatusOpen
}

// CostBasis returns the purchase consideration, deriving it from price and
// quantity when the stored buy value is missing.
func (t Trade) CostBasis() float64 {
	if t.BuyValue > 0 {
		return t.BuyValue
	}
	return t.BuyPrice * t.Quantity
}
