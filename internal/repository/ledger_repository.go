package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// ledgerColumns is the canonical column schema of the flat-file ledgers.
// Every loader and writer in the application goes through this one schema.
var ledgerColumns = []string{
	"name",
	"code",
	"status",
	"buy_date",
	"sell_date",
	"buy_price",
	"sell_price",
	"quantity",
	"buy_value",
	"sell_value",
	"realized_pnl",
	"change_pct",
}

const dateLayout = "2006-01-02"

// LedgerRepository provides access to the flat-file trade ledgers: one CSV
// file per dataset under the data directory, with a JSON mirror written
// alongside for consumers that prefer structured records.
type LedgerRepository struct {
	dataDir string
}

// NewLedgerRepository creates a new LedgerRepository rooted at the given
// data directory.
func NewLedgerRepository(dataDir string) *LedgerRepository {
	return &LedgerRepository{dataDir: dataDir}
}

// CSVPath returns the on-disk location of a dataset's CSV ledger.
func (r *LedgerRepository) CSVPath(ds model.Dataset) string {
	return filepath.Join(r.dataDir, ds.Key()+".csv")
}

// JSONPath returns the on-disk location of a dataset's JSON mirror.
func (r *LedgerRepository) JSONPath(ds model.Dataset) string {
	return filepath.Join(r.dataDir, ds.Key()+".json")
}

// LoadTrades reads one dataset's ledger from its CSV file.
// A missing file is the "no data" state, not an error: it returns an empty
// slice so the dashboard can render its empty state.
func (r *LedgerRepository) LoadTrades(ds model.Dataset) ([]model.Trade, error) {
	f, err := os.Open(r.CSVPath(ds))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Trade{}, nil
		}
		return nil, fmt.Errorf("failed to open ledger %s: %w", ds.Key(), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger %s: %w", ds.Key(), err)
	}
	if len(records) == 0 {
		return []model.Trade{}, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	trades := make([]model.Trade, 0, len(records)-1)
	for _, record := range records[1:] {
		trade, err := tradeFromRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ledger %s: %w", ds.Key(), err)
		}
		trades = append(trades, trade)
	}

	return trades, nil
}

// SaveTrades writes one dataset's ledger to its CSV file and JSON mirror,
// creating the data directory if needed.
func (r *LedgerRepository) SaveTrades(ds model.Dataset, trades []model.Trade) error {
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	csvData, err := MarshalCSV(trades)
	if err != nil {
		return fmt.Errorf("failed to encode ledger %s: %w", ds.Key(), err)
	}
	if err := os.WriteFile(r.CSVPath(ds), csvData, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", ds.Key(), err)
	}

	jsonData, err := MarshalJSON(trades)
	if err != nil {
		return fmt.Errorf("failed to encode ledger %s: %w", ds.Key(), err)
	}
	if err := os.WriteFile(r.JSONPath(ds), jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", ds.Key(), err)
	}

	return nil
}

// MarshalCSV encodes trades in the canonical column schema. The same bytes
// are written locally and mirrored to GitHub, so the two copies never
// diverge in format.
func MarshalCSV(trades []model.Trade) ([]byte, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ledgerColumns); err != nil {
		return nil, err
	}
	for _, t := range trades {
		if err := writer.Write(recordFromTrade(t)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(buf.String()), nil
}

// MarshalJSON encodes trades as an indented JSON array of records.
func MarshalJSON(trades []model.Trade) ([]byte, error) {
	return json.MarshalIndent(trades, "", "  ")
}

func recordFromTrade(t model.Trade) []string {
	sellDate := ""
	if !t.SellDate.IsZero() {
		sellDate = t.SellDate.Format(dateLayout)
	}
	buyDate := ""
	if !t.BuyDate.IsZero() {
		buyDate = t.BuyDate.Format(dateLayout)
	}

	return []string{
		t.Name,
		t.Code,
		string(t.Status),
		buyDate,
		sellDate,
		formatFloat(t.BuyPrice),
		formatFloat(t.SellPrice),
		formatFloat(t.Quantity),
		formatFloat(t.BuyValue),
		formatFloat(t.SellValue),
		formatFloat(t.PnL),
		formatFloat(t.ChangePct),
	}
}

func tradeFromRecord(record []string, index map[string]int) (model.Trade, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	trade := model.Trade{
		Name: field("name"),
		Code: normalizeCode(field("code")),
	}

	switch model.TradeStatus(field("status")) {
	case model.TradeStatusClosed:
		trade.Status = model.TradeStatusClosed
	default:
		trade.Status = model.TradeStatusOpen
	}

	var err error
	if trade.BuyDate, err = parseDate(field("buy_date")); err != nil {
		return model.Trade{}, err
	}
	if trade.SellDate, err = parseDate(field("sell_date")); err != nil {
		return model.Trade{}, err
	}

	trade.BuyPrice = parseFloat(field("buy_price"))
	trade.SellPrice = parseFloat(field("sell_price"))
	trade.Quantity = parseFloat(field("quantity"))
	trade.BuyValue = parseFloat(field("buy_value"))
	trade.SellValue = parseFloat(field("sell_value"))
	trade.PnL = parseFloat(field("realized_pnl"))
	trade.ChangePct = parseFloat(field("change_pct"))

	return trade, nil
}

// normalizeCode strips the ".0" tail that spreadsheet round-trips leave on
// numeric security codes.
func normalizeCode(code string) string {
	return strings.TrimSuffix(code, ".0")
}

func parseDate(value string) (time.Time, error) {
	if value == "" || value == "-" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// parseFloat loads blank or malformed numeric cells as 0, matching the
// fail-safe semantics of the loader: a missing figure must not abort the
// whole ledger.
func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
