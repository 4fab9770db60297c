package handlers

import (
	"net/http"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/service"
)

// SyncHandler handles requests to refresh the ledgers from Notion.
type SyncHandler struct {
	syncService *service.SyncService
	configured  bool
}

// NewSyncHandler creates a new SyncHandler. configured reflects whether a
// Notion token is present; without one the endpoint refuses to run.
func NewSyncHandler(syncService *service.SyncService, configured bool) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		configured:  configured,
	}
}

// Sync handles POST requests to run a full sync across all configured
// datasets. The run is synchronous: the response carries the per-dataset
// report of the completed run.
//
// Endpoint: POST /api/sync
// Response: 200 OK with model.SyncReport
// Error: 409 Conflict when no Notion token is configured
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	if !h.configured {
		respondError(w, http.StatusConflict, "sync not configured", apperrors.ErrSyncNotConfigured.Error())
		return
	}

	report := h.syncService.SyncAll(r.Context())
	respondJSON(w, http.StatusOK, report)
}
