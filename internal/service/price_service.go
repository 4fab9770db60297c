package service

import (
	"fmt"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/yahoo"
)

// PriceSource supplies the current market price for a security code. The
// accounting engine treats any error as "price unavailable" and falls back
// to the purchase price; implementations are expected to bound their own
// latency.
type PriceSource interface {
	CurrentPrice(code string, market model.Market) (float64, error)
}

// YahooPriceSource resolves current prices through the Yahoo Finance chart
// API, applying the per-market symbol suffix before querying.
type YahooPriceSource struct {
	client yahoo.Client
	suffix map[model.Market]string
}

// NewYahooPriceSource creates a price source backed by the given Yahoo
// client and market suffix map.
func NewYahooPriceSource(client yahoo.Client, suffix map[model.Market]string) *YahooPriceSource {
	return &YahooPriceSource{client: client, suffix: suffix}
}

// Symbol resolves a security code to the quoted symbol for its market
// (e.g. code "7203" on the Japanese market becomes "7203.T").
func (s *YahooPriceSource) Symbol(code string, market model.Market) string {
	return code + s.suffix[market]
}

// CurrentPrice returns the latest available close for a security.
// The 5-day range query tolerates weekends and short holiday runs: the most
// recent trading day inside the window supplies the price.
func (s *YahooPriceSource) CurrentPrice(code string, market model.Market) (float64, error) {
	symbol := s.Symbol(code, market)

	resp, err := s.client.QueryYahooFiveDaySymbol(symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, symbol, err)
	}

	chart, err := s.client.ParseChart(resp)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, symbol, err)
	}

	price, ok := chart.LatestClose()
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrPriceNotFound, symbol)
	}

	return price, nil
}
