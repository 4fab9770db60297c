package testutil

import (
	"testing"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/repository"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
)

// FixedNow is the evaluation-time clock used by deterministic tests.
var FixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// Clock returns a clock function frozen at FixedNow.
func Clock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// SetupLedgerRepository creates a LedgerRepository rooted in a per-test
// temporary directory.
func SetupLedgerRepository(t *testing.T) *repository.LedgerRepository {
	t.Helper()
	return repository.NewLedgerRepository(t.TempDir())
}

// NewTestLedgerService creates a LedgerService over a temporary data
// directory, seeded with the given trades for the dataset.
func NewTestLedgerService(t *testing.T, ds model.Dataset, trades []model.Trade) *service.LedgerService {
	t.Helper()

	repo := SetupLedgerRepository(t)
	if trades != nil {
		if err := repo.SaveTrades(ds, trades); err != nil {
			t.Fatalf("Failed to seed ledger: %v", err)
		}
	}
	return service.NewLedgerService(repo)
}

// NewTestAccountingService creates an AccountingService with a static price
// source and a frozen clock.
func NewTestAccountingService(t *testing.T, prices *StaticPriceSource) *service.AccountingService {
	t.Helper()

	if prices == nil {
		prices = &StaticPriceSource{Prices: map[string]float64{}}
	}
	return service.NewAccountingServiceWithClock(prices, Clock())
}
