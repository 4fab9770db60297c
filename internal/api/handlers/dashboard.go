package handlers

import (
	"net/http"

	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
)

// DashboardHandler handles the aggregate dashboard HTTP requests.
type DashboardHandler struct {
	ledgerService     *service.LedgerService
	accountingService *service.AccountingService
	cfg               *config.Config
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ledgerService *service.LedgerService, accountingService *service.AccountingService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		ledgerService:     ledgerService,
		accountingService: accountingService,
		cfg:               cfg,
	}
}

// SummaryResponse bundles everything the overview page renders: the KPI
// metrics, the equity curve, the per-trade P&L bars and the win/loss pie.
type SummaryResponse struct {
	Dataset     model.Dataset             `json:"dataset"`
	HasData     bool                      `json:"hasData"`
	KPIs        model.KPISnapshot         `json:"kpis"`
	EquityCurve []model.EquityPoint       `json:"equityCurve"`
	PnLBars     []model.PnLBar            `json:"pnlBars"`
	WinLoss     model.WinLossDistribution `json:"winLoss"`
}

// Summary handles GET requests for the aggregate dashboard of one dataset.
// An absent ledger is reported as hasData=false with zeroed KPIs, not as an
// error; the frontend renders its "run a sync" empty state from it.
//
// Endpoint: GET /api/dashboard/summary?market={japan|us}&style={swing|long}
// Response: 200 OK with SummaryResponse
// Error: 400 Bad Request on invalid market/style, 500 on ledger failure
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ds, ok := datasetFromQuery(w, r)
	if !ok {
		return
	}

	trades, err := h.ledgerService.LoadTrades(ds)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
		return
	}

	principal := h.cfg.Principal(ds.Market)
	unrealized := h.accountingService.ComputeUnrealized(trades, ds.Market)

	response := SummaryResponse{
		Dataset:     ds,
		HasData:     len(trades) > 0,
		KPIs:        h.accountingService.ComputeKPIs(trades, unrealized, principal),
		EquityCurve: h.accountingService.ComputeEquityCurve(trades, unrealized, principal),
		PnLBars:     h.accountingService.PnLBars(trades),
		WinLoss:     h.accountingService.WinLossDistribution(trades),
	}

	respondJSON(w, http.StatusOK, response)
}
