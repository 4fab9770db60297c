package service

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// AccountingService computes the derived portfolio figures of one ledger:
// unrealized positions, aggregate KPIs, the equity curve and the per-trade
// display table.
//
// Every method is a pure recomputation over the trade slice it is given;
// nothing is cached or mutated between invocations. The only suspension
// point is the live price lookup per open position, which runs sequentially
// because personal-journal ledgers are small.
type AccountingService struct {
	prices PriceSource
	now    func() time.Time
}

// NewAccountingService creates a new AccountingService using the given
// price source for open-position valuation.
func NewAccountingService(prices PriceSource) *AccountingService {
	return &AccountingService{
		prices: prices,
		now:    time.Now,
	}
}

// NewAccountingServiceWithClock creates an AccountingService with a fixed
// clock. Used by tests that assert on the trailing equity point.
func NewAccountingServiceWithClock(prices PriceSource, now func() time.Time) *AccountingService {
	return &AccountingService{prices: prices, now: now}
}

// ComputeUnrealized marks every open trade of the ledger to market.
//
// A failed price lookup substitutes the purchase price, which reports zero
// unrealized change for that position instead of aborting the computation;
// the substitution is logged, never escalated. The percentage is defined as
// 0 when the purchase value is 0.
func (s *AccountingService) ComputeUnrealized(trades []model.Trade, market model.Market) []model.UnrealizedPosition {
	positions := []model.UnrealizedPosition{}

	for _, t := range trades {
		if !t.IsOpen() {
			continue
		}

		currentPrice, err := s.prices.CurrentPrice(t.Code, market)
		if err != nil {
			log.Printf("price lookup failed for %s (%s), using purchase price: %v", t.Name, t.Code, err)
			currentPrice = t.BuyPrice
		}

		buyValue := t.CostBasis()
		currentValue := currentPrice * t.Quantity
		pnl := currentValue - buyValue

		pct := 0.0
		if buyValue > 0 {
			pct = pnl / buyValue * 100
		}

		positions = append(positions, model.UnrealizedPosition{
			Name:         t.Name,
			Code:         t.Code,
			BuyDate:      t.BuyDate,
			BuyPrice:     t.BuyPrice,
			CurrentPrice: currentPrice,
			Quantity:     t.Quantity,
			BuyValue:     buyValue,
			CurrentValue: currentValue,
			PnL:          pnl,
			ChangePct:    pct,
		})
	}

	return positions
}

// ComputeKPIs aggregates performance metrics over the whole ledger.
//
// Closed trades partition into winners (realized P&L > 0) and losers (< 0);
// break-even trades count toward the trade count but toward neither bucket.
// Every division guards its denominator: an empty bucket yields 0, never an
// arithmetic fault.
func (s *AccountingService) ComputeKPIs(trades []model.Trade, unrealized []model.UnrealizedPosition, principal float64) model.KPISnapshot {
	var (
		closedCount int
		winCount    int
		profitSum   float64
		profitN     int
		lossSum     float64
		lossN       int
		realized    float64
	)

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		closedCount++
		realized += t.PnL

		switch {
		case t.PnL > 0:
			winCount++
			profitSum += t.ChangePct
			profitN++
		case t.PnL < 0:
			lossSum += t.ChangePct
			lossN++
		}
	}

	winRate := 0.0
	if closedCount > 0 {
		winRate = float64(winCount) / float64(closedCount) * 100
	}
	avgProfit := 0.0
	if profitN > 0 {
		avgProfit = profitSum / float64(profitN)
	}
	avgLoss := 0.0
	if lossN > 0 {
		avgLoss = lossSum / float64(lossN)
	}

	var unrealizedPnL, holdingsValue, openCost float64
	for _, p := range unrealized {
		unrealizedPnL += p.PnL
		holdingsValue += p.CurrentValue
		openCost += p.BuyValue
	}

	cash := principal + realized - openCost

	return model.KPISnapshot{
		TradeCount:    closedCount,
		WinRate:       winRate,
		AvgProfitPct:  avgProfit,
		AvgLossPct:    avgLoss,
		RealizedPnL:   realized,
		UnrealizedPnL: unrealizedPnL,
		Principal:     principal,
		Cash:          cash,
		HoldingsValue: holdingsValue,
		TotalAssets:   cash + holdingsValue,
		TotalPnL:      realized + unrealizedPnL,
	}
}

// ComputeEquityCurve builds the time-ordered total asset series.
//
// Closed trades sorted ascending by sale date each contribute one point
// (principal + cumulative realized P&L); exactly one trailing point at
// evaluation time adds the total unrealized P&L. An empty ledger yields the
// single point (now, principal). The curve therefore always has
// closed-trade-count + 1 points.
func (s *AccountingService) ComputeEquityCurve(trades []model.Trade, unrealized []model.UnrealizedPosition, principal float64) []model.EquityPoint {
	closed := closedTradesBySellDate(trades)

	points := make([]model.EquityPoint, 0, len(closed)+1)
	cumulative := 0.0
	for _, t := range closed {
		cumulative += t.PnL
		points = append(points, model.EquityPoint{
			Date:      t.SellDate,
			Assets:    principal + cumulative,
			Principal: principal,
		})
	}

	var unrealizedPnL float64
	for _, p := range unrealized {
		unrealizedPnL += p.PnL
	}

	points = append(points, model.EquityPoint{
		Date:      s.now(),
		Assets:    principal + cumulative + unrealizedPnL,
		Principal: principal,
	})

	return points
}

// BuildSummaryTable flattens closed trades and open positions into the
// common display shape, sorted ascending by entry date. Open rows show "-"
// as the sell date and their unrealized figures as P&L.
func (s *AccountingService) BuildSummaryTable(trades []model.Trade, unrealized []model.UnrealizedPosition) []model.SummaryRow {
	type dated struct {
		row model.SummaryRow
		buy time.Time
	}
	rows := make([]dated, 0, len(trades))

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		rows = append(rows, dated{
			buy: t.BuyDate,
			row: model.SummaryRow{
				Name:      t.Name,
				Code:      t.Code,
				Status:    string(model.TradeStatusClosed),
				BuyDate:   formatDate(t.BuyDate),
				SellDate:  formatDate(t.SellDate),
				PnL:       t.PnL,
				ChangePct: formatPct(t.ChangePct),
			},
		})
	}

	for _, p := range unrealized {
		rows = append(rows, dated{
			buy: p.BuyDate,
			row: model.SummaryRow{
				Name:      p.Name,
				Code:      p.Code,
				Status:    string(model.TradeStatusOpen),
				BuyDate:   formatDate(p.BuyDate),
				SellDate:  "-",
				PnL:       p.PnL,
				ChangePct: formatPct(p.ChangePct),
			},
		})
	}

	slices.SortStableFunc(rows, func(a, b dated) int {
		return a.buy.Compare(b.buy)
	})

	result := make([]model.SummaryRow, len(rows))
	for i, r := range rows {
		result[i] = r.row
	}
	return result
}

// PnLBars returns one bar per closed trade in sale-date order, for the
// per-trade P&L chart.
func (s *AccountingService) PnLBars(trades []model.Trade) []model.PnLBar {
	closed := closedTradesBySellDate(trades)

	bars := make([]model.PnLBar, len(closed))
	for i, t := range closed {
		bars[i] = model.PnLBar{
			Name:     t.Name,
			Code:     t.Code,
			SellDate: t.SellDate,
			PnL:      t.PnL,
		}
	}
	return bars
}

// WinLossDistribution counts closed trades per outcome for the win/loss pie.
func (s *AccountingService) WinLossDistribution(trades []model.Trade) model.WinLossDistribution {
	var dist model.WinLossDistribution
	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		switch {
		case t.PnL > 0:
			dist.Wins++
		case t.PnL < 0:
			dist.Losses++
		default:
			dist.BreakEven++
		}
	}
	return dist
}

// closedTradesBySellDate filters to closed trades and sorts them ascending
// by sale date. The sort is stable so same-day sales keep ledger order.
func closedTradesBySellDate(trades []model.Trade) []model.Trade {
	closed := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			closed = append(closed, t)
		}
	}
	slices.SortStableFunc(closed, func(a, b model.Trade) int {
		return a.SellDate.Compare(b.SellDate)
	})
	return closed
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatPct(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}
