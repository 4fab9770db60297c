package service

import (
	"fmt"
	"log"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/repository"
)

// LedgerService loads trade ledgers through the one canonical pipeline:
// flat-file read, then normalization of the percentage-change field.
type LedgerService struct {
	ledgerRepo *repository.LedgerRepository
}

// NewLedgerService creates a new LedgerService over the given repository.
func NewLedgerService(ledgerRepo *repository.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// LoadTrades returns the normalized ledger for one dataset. A missing
// ledger file yields an empty slice ("no data" is a state, not an error).
func (s *LedgerService) LoadTrades(ds model.Dataset) ([]model.Trade, error) {
	trades, err := s.ledgerRepo.LoadTrades(ds)
	if err != nil {
		return nil, err
	}

	for i := range trades {
		trades[i] = backfillChangePct(ds, trades[i])
	}

	return trades, nil
}

// FindTrade locates one ledger row by security code and purchase date.
// The pair is the ledger's natural key: a journal never records two buys of
// the same security on the same day as separate rows.
func (s *LedgerService) FindTrade(ds model.Dataset, code string, buyDate time.Time) (model.Trade, error) {
	trades, err := s.LoadTrades(ds)
	if err != nil {
		return model.Trade{}, err
	}

	day := buyDate.Format("2006-01-02")
	for _, t := range trades {
		if t.Code == code && t.BuyDate.Format("2006-01-02") == day {
			return t, nil
		}
	}

	return model.Trade{}, fmt.Errorf("%w: %s bought %s", apperrors.ErrTradeNotFound, code, day)
}

// backfillChangePct recomputes a closed trade's percentage change from its
// realized P&L when the stored percentage is exactly 0 but the P&L is not.
//
// A stored 0 is ambiguous between "genuinely flat" and "never filled in",
// but a genuinely flat trade has zero P&L too, so the ambiguity only exists
// when the two fields disagree. The backfill is logged so divergent source
// rows stay visible.
func backfillChangePct(ds model.Dataset, t model.Trade) model.Trade {
	if !t.IsClosed() || t.ChangePct != 0 || t.PnL == 0 {
		return t
	}
	buyValue := t.CostBasis()
	if buyValue <= 0 {
		return t
	}

	t.ChangePct = t.PnL / buyValue * 100
	log.Printf("ledger %s: backfilled change pct for %s (%s) from P&L: %.2f%%", ds.Key(), t.Name, t.Code, t.ChangePct)
	return t
}
