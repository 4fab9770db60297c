package testutil

import (
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// Day builds a date at midnight UTC, the same shape ledger dates load as.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ClosedTrade builds a closed ledger row with its realized P&L and
// percentage change derived from the prices, the way a synced ledger
// carries them.
func ClosedTrade(name, code string, buyDate, sellDate time.Time, buyPrice, sellPrice, quantity float64) model.Trade {
	buyValue := buyPrice * quantity
	sellValue := sellPrice * quantity
	pnl := sellValue - buyValue

	pct := 0.0
	if buyValue > 0 {
		pct = pnl / buyValue * 100
	}

	return model.Trade{
		Name:      name,
		Code:      code,
		Status:    model.TradeStatusClosed,
		BuyDate:   buyDate,
		SellDate:  sellDate,
		BuyPrice:  buyPrice,
		SellPrice: sellPrice,
		Quantity:  quantity,
		BuyValue:  buyValue,
		SellValue: sellValue,
		PnL:       pnl,
		ChangePct: pct,
	}
}

// OpenTrade builds an open ledger row with empty sell-side fields.
func OpenTrade(name, code string, buyDate time.Time, buyPrice, quantity float64) model.Trade {
	return model.Trade{
		Name:     name,
		Code:     code,
		Status:   model.TradeStatusOpen,
		BuyDate:  buyDate,
		BuyPrice: buyPrice,
		Quantity: quantity,
		BuyValue: buyPrice * quantity,
	}
}
