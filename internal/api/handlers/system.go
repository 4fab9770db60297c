package handlers

import (
	"net/http"

	"github.com/hmorita/Trade-Journal-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	DataDir string `json:"dataDir"`
	Error   string `json:"error,omitempty"`
}

// Health checks the health of the system and the ledger data directory
//
// Endpoint: GET /api/system/health
// Response: 200 OK, or 503 Service Unavailable when the data directory is
// unusable
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:  "unhealthy",
			DataDir: h.systemService.DataDir(),
			Error:   err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		DataDir: h.systemService.DataDir(),
	}
	respondJSON(w, http.StatusOK, response)
}
