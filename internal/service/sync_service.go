package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/github"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/notion"
	"github.com/hmorita/Trade-Journal-Backend/internal/repository"
	"github.com/hmorita/Trade-Journal-Backend/internal/validation"
)

// maxConcurrentSyncs bounds how many dataset syncs run at once. The Notion
// API rate-limits integrations to roughly three requests per second.
const maxConcurrentSyncs = 2

// SyncService refreshes the local flat-file ledgers from their Notion
// databases and mirrors the refreshed files to a GitHub repository.
//
// Each dataset syncs independently: a failing dataset is reported but does
// not abort the others, and a failing GitHub mirror is logged without
// failing the dataset, since the local files are what the dashboard reads.
type SyncService struct {
	notionClient notion.Client
	githubClient github.Client // nil when the mirror is disabled
	ledgerRepo   *repository.LedgerRepository
	databaseIDs  map[string]string
}

// NewSyncService creates a new SyncService. Pass a nil GitHub client to
// disable the mirror (e.g. when no token is configured).
func NewSyncService(
	notionClient notion.Client,
	githubClient github.Client,
	ledgerRepo *repository.LedgerRepository,
	notionCfg config.NotionConfig,
) *SyncService {
	return &SyncService{
		notionClient: notionClient,
		githubClient: githubClient,
		ledgerRepo:   ledgerRepo,
		databaseIDs:  notionCfg.DatabaseIDs,
	}
}

// SyncAll refreshes every configured dataset concurrently and returns a
// per-dataset report. Datasets without a configured database ID are skipped.
// The context bounds the whole run; cancellation aborts remaining datasets.
func (s *SyncService) SyncAll(ctx context.Context) model.SyncReport {
	report := model.SyncReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSyncs)

	for _, ds := range model.AllDatasets() {
		ds := ds
		g.Go(func() error {
			result := s.syncDataset(ctx, ds)
			mu.Lock()
			report.Datasets = append(report.Datasets, result)
			mu.Unlock()
			return nil
		})
	}

	// Goroutines report per-dataset failures in the result rows.
	_ = g.Wait()

	report.FinishedAt = time.Now()
	return report
}

// syncDataset refreshes one dataset: query Notion, write the local CSV and
// JSON files, then mirror both to GitHub.
func (s *SyncService) syncDataset(ctx context.Context, ds model.Dataset) model.DatasetSyncResult {
	result := model.DatasetSyncResult{Key: ds.Key()}

	databaseID := s.databaseIDs[ds.Key()]
	if databaseID == "" {
		result.Error = "no database ID configured"
		return result
	}
	if err := validation.ValidateDatabaseID(databaseID); err != nil {
		result.Error = err.Error()
		return result
	}

	log.Printf("syncing %s", ds.DisplayName())

	pages, err := s.notionClient.QueryDatabase(ctx, databaseID)
	if err != nil {
		result.Error = fmt.Errorf("%w: %v", apperrors.ErrFailedToQueryNotion, err).Error()
		return result
	}
	trades := notion.TradesFromPages(pages)
	result.Rows = len(trades)

	if err := s.ledgerRepo.SaveTrades(ds, trades); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Synced = true

	if err := s.mirror(ctx, ds, trades); err != nil {
		// Mirror failures leave the local ledger intact; record and move on.
		log.Printf("mirror failed for %s: %v", ds.Key(), err)
		result.MirrorError = err.Error()
	}

	log.Printf("synced %s (%d rows)", ds.DisplayName(), result.Rows)
	return result
}

// mirror pushes a dataset's CSV and JSON renditions to the GitHub
// repository, replacing the previous revision via the contents API.
func (s *SyncService) mirror(ctx context.Context, ds model.Dataset, trades []model.Trade) error {
	if s.githubClient == nil {
		return nil
	}

	csvData, err := repository.MarshalCSV(trades)
	if err != nil {
		return err
	}
	jsonData, err := repository.MarshalJSON(trades)
	if err != nil {
		return err
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf("Update %s data - %s", ds.DisplayName(), stamp)

	if err := s.githubClient.PutFile(ctx, "data/"+ds.Key()+".csv", csvData, message); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToMirrorLedger, err)
	}
	if err := s.githubClient.PutFile(ctx, "data/"+ds.Key()+".json", jsonData, message); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToMirrorLedger, err)
	}

	return nil
}
