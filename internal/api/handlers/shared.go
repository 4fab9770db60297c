package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondError sends the standard {error, detail} body.
func respondError(w http.ResponseWriter, status int, message, detail string) {
	body := map[string]string{"error": message}
	if detail != "" {
		body["detail"] = detail
	}
	respondJSON(w, status, body)
}

// datasetFromQuery parses and validates the market/style query parameters
// shared by the dashboard and trade endpoints. On failure it writes a 400
// response and returns false.
func datasetFromQuery(w http.ResponseWriter, r *http.Request) (model.Dataset, bool) {
	ds, err := validation.ParseDataset(r.URL.Query().Get("market"), r.URL.Query().Get("style"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid dataset", err.Error())
		return model.Dataset{}, false
	}
	return ds, true
}
