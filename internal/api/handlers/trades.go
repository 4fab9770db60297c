package handlers

import (
	"errors"
	"net/http"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
	"github.com/hmorita/Trade-Journal-Backend/internal/validation"
)

// TradeHandler handles per-trade HTTP requests: the summary listing and the
// candlestick chart data for one selected trade.
type TradeHandler struct {
	ledgerService     *service.LedgerService
	accountingService *service.AccountingService
	chartService      *service.ChartService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(ledgerService *service.LedgerService, accountingService *service.AccountingService, chartService *service.ChartService) *TradeHandler {
	return &TradeHandler{
		ledgerService:     ledgerService,
		accountingService: accountingService,
		chartService:      chartService,
	}
}

// Trades handles GET requests for the per-trade summary table of one
// dataset, one row per trade sorted ascending by entry date.
//
// Endpoint: GET /api/trades?market={japan|us}&style={swing|long}
// Response: 200 OK with []model.SummaryRow (empty array when no ledger)
// Error: 400 Bad Request on invalid market/style, 500 on ledger failure
func (h *TradeHandler) Trades(w http.ResponseWriter, r *http.Request) {
	ds, ok := datasetFromQuery(w, r)
	if !ok {
		return
	}

	trades, err := h.ledgerService.LoadTrades(ds)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
		return
	}

	unrealized := h.accountingService.ComputeUnrealized(trades, ds.Market)
	rows := h.accountingService.BuildSummaryTable(trades, unrealized)

	respondJSON(w, http.StatusOK, rows)
}

// ChartResponse wraps the candle series of one selected trade.
type ChartResponse struct {
	Trade model.Trade      `json:"trade"`
	Chart model.TradeChart `json:"chart"`
}

// Chart handles GET requests for the candlestick data of one trade,
// identified by security code and purchase date.
//
// Endpoint: GET /api/trades/chart?market=&style=&code=&buyDate=YYYY-MM-DD
// Response: 200 OK with ChartResponse
// Error: 400 on invalid parameters, 404 when the trade is not in the
// ledger, 502 when the price provider returned no usable candles
func (h *TradeHandler) Chart(w http.ResponseWriter, r *http.Request) {
	ds, ok := datasetFromQuery(w, r)
	if !ok {
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "invalid parameters", apperrors.ErrMissingCode.Error())
		return
	}
	buyDate, err := validation.ParseDate(r.URL.Query().Get("buyDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid parameters", err.Error())
		return
	}

	trade, err := h.ledgerService.FindTrade(ds, code, buyDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			respondError(w, http.StatusNotFound, "trade not found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
		return
	}

	chart, err := h.chartService.TradeChart(trade, ds.Market)
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to fetch chart data", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ChartResponse{Trade: trade, Chart: chart})
}
