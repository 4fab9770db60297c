package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hmorita/Trade-Journal-Backend/internal/api"
	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/github"
	"github.com/hmorita/Trade-Journal-Backend/internal/notion"
	"github.com/hmorita/Trade-Journal-Backend/internal/repository"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
	"github.com/hmorita/Trade-Journal-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Ledger data directory: %s", cfg.Data.Dir)

	// Create repositories and external clients
	ledgerRepo := repository.NewLedgerRepository(cfg.Data.Dir)
	yahooClient := yahoo.NewFinanceClient()
	notionClient := notion.NewAPIClient(cfg.Notion.Token)

	var githubClient github.Client
	if cfg.GitHub.Token != "" && cfg.GitHub.Repo != "" {
		githubClient = github.NewContentClient(cfg.GitHub.Token, cfg.GitHub.Repo, cfg.GitHub.Branch)
	} else {
		log.Println("GitHub mirror disabled: no token or repository configured")
	}

	// Create services
	systemService := service.NewSystemService(cfg.Data.Dir)
	ledgerService := service.NewLedgerService(ledgerRepo)
	priceSource := service.NewYahooPriceSource(yahooClient, cfg.Markets.SymbolSuffix)
	accountingService := service.NewAccountingService(priceSource)
	chartService := service.NewChartService(yahooClient, cfg.Markets.SymbolSuffix, cfg.Chart.LookbackDays)
	syncService := service.NewSyncService(notionClient, githubClient, ledgerRepo, cfg.Notion)

	// Schedule periodic syncs when configured
	var scheduler *cron.Cron
	if cfg.Sync.Schedule != "" && cfg.Notion.Token != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Sync.Schedule, func() {
			report := syncService.SyncAll(context.Background())
			log.Printf("Scheduled sync %s finished (%d datasets)", report.RunID, len(report.Datasets))
		})
		if err != nil {
			log.Fatalf("Invalid sync schedule %q: %v", cfg.Sync.Schedule, err)
		}
		scheduler.Start()
		log.Printf("Scheduled sync enabled: %s", cfg.Sync.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, ledgerService, accountingService, chartService, syncService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
