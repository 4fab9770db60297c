package notion

import (
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// Property names of the trade databases. The journal databases are authored
// in Japanese; these constants are the single place the external schema is
// spelled out.
const (
	propName      = "銘柄名"     // security display name (title)
	propCode      = "証券コード"   // security code
	propStatus    = "ステータス"   // status (select)
	propBuyDate   = "買付日"     // purchase date
	propSellDate  = "売付日"     // sale date
	propBuyPrice  = "買付単価"    // purchase unit price
	propSellPrice = "売付単価"    // sale unit price
	propQuantity  = "買付数量"    // purchase quantity
	propBuyValue  = "買付約定代金"  // purchase consideration
	propSellValue = "売付約定代金"  // sale consideration
	propPnL       = "実現損益"    // realized P&L
	propPnLAlt    = "評価損益"    // alternate P&L property name in older databases
	propChangePct = "増減率"     // percentage change
)

// Status select options, with English passthrough for databases that were
// re-labelled.
var statusNames = map[string]model.TradeStatus{
	"売却済":    model.TradeStatusClosed,
	"保有中":    model.TradeStatusOpen,
	"closed": model.TradeStatusClosed,
	"open":   model.TradeStatusOpen,
}

// TradesFromPages converts raw database rows into ledger trades.
//
// Rows with an unrecognized status are treated as open: a row that has not
// been marked sold must not contribute phantom realized P&L. Missing numeric
// properties load as 0, matching the flat-file loader's behavior.
func TradesFromPages(pages []Page) []model.Trade {
	trades := make([]model.Trade, 0, len(pages))
	for _, page := range pages {
		trades = append(trades, tradeFromPage(page))
	}
	return trades
}

func tradeFromPage(page Page) model.Trade {
	props := page.Properties

	trade := model.Trade{
		Name:   props[propName].StringValue(),
		Code:   props[propCode].StringValue(),
		Status: model.TradeStatusOpen,
	}

	if status, ok := statusNames[props[propStatus].StringValue()]; ok {
		trade.Status = status
	}

	if d, ok := props[propBuyDate].DateValue(); ok {
		trade.BuyDate = d
	}
	if d, ok := props[propSellDate].DateValue(); ok {
		trade.SellDate = d
	}

	trade.BuyPrice, _ = props[propBuyPrice].NumberValue()
	trade.SellPrice, _ = props[propSellPrice].NumberValue()
	trade.Quantity, _ = props[propQuantity].NumberValue()
	trade.BuyValue, _ = props[propBuyValue].NumberValue()
	trade.SellValue, _ = props[propSellValue].NumberValue()

	if pnl, ok := props[propPnL].NumberValue(); ok {
		trade.PnL = pnl
	} else {
		// Older databases named the realized P&L column differently.
		trade.PnL, _ = props[propPnLAlt].NumberValue()
	}
	trade.ChangePct, _ = props[propChangePct].NumberValue()

	return trade
}
