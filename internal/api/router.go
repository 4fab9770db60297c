package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hmorita/Trade-Journal-Backend/internal/api/handlers"
	custommiddleware "github.com/hmorita/Trade-Journal-Backend/internal/api/middleware"
	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	ledgerService *service.LedgerService,
	accountingService *service.AccountingService,
	chartService *service.ChartService,
	syncService *service.SyncService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(ledgerService, accountingService, cfg)
			r.Get("/summary", dashboardHandler.Summary)
		})

		r.Route("/trades", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(ledgerService, accountingService, chartService)
			r.Get("/", tradeHandler.Trades)
			r.Get("/chart", tradeHandler.Chart)
		})

		syncHandler := handlers.NewSyncHandler(syncService, cfg.Notion.Token != "")
		r.Post("/sync", syncHandler.Sync)
	})

	return r
}
