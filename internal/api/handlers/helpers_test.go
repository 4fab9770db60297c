package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

var japanSwing = model.Dataset{Market: model.MarketJapan, Style: model.StyleSwing}

// testConfig builds the minimal configuration the handlers read.
func testConfig() *config.Config {
	return &config.Config{
		Markets: config.MarketsConfig{
			Principal: map[model.Market]float64{
				model.MarketJapan: 100000,
				model.MarketUS:    500,
			},
			SymbolSuffix: map[model.Market]string{
				model.MarketJapan: ".T",
				model.MarketUS:    "",
			},
		},
	}
}

// decodeBody unmarshals a recorded JSON response into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
}
