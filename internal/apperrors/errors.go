package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrTradeNotFound indicates that no ledger row matches the requested
	// security code and purchase date.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrLedgerNotFound indicates that no ledger file exists for the
	// requested dataset. Callers normally treat this as an empty ledger.
	ErrLedgerNotFound = errors.New("ledger not found")

	// ErrPriceNotFound indicates that a live price lookup returned no usable
	// quote for a symbol. The accounting engine substitutes the purchase
	// price instead of surfacing this error.
	ErrPriceNotFound = errors.New("price not found")

	// ErrChartDataNotFound indicates that no historical candles were
	// available for the requested trade's date range.
	ErrChartDataNotFound = errors.New("chart data not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidMarket indicates that a market parameter is not one of the
	// supported markets.
	ErrInvalidMarket = errors.New("invalid market")

	// ErrInvalidStyle indicates that a style parameter is not one of the
	// supported trading styles.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidDatabaseID indicates that a Notion database ID is not a
	// valid UUID (with or without dashes).
	ErrInvalidDatabaseID = errors.New("invalid notion database ID")

	// ErrInvalidDate indicates that a date parameter is missing or not in
	// YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date parameter")

	// ErrMissingCode indicates that a required security code parameter is
	// empty.
	ErrMissingCode = errors.New("security code is required")

	// ErrSyncNotConfigured indicates that a sync was requested while no
	// Notion token is configured.
	ErrSyncNotConfigured = errors.New("notion sync is not configured")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToLoadLedger   = errors.New("failed to load ledger")
	ErrFailedToSaveLedger   = errors.New("failed to save ledger")
	ErrFailedToQueryNotion  = errors.New("failed to query notion database")
	ErrFailedToMirrorLedger = errors.New("failed to mirror ledger to github")
	ErrFailedToFetchChart   = errors.New("failed to fetch chart data")
	ErrFailedToBuildSummary = errors.New("failed to build dashboard summary")
)
