package testutil

import (
	"context"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
	"github.com/hmorita/Trade-Journal-Backend/internal/notion"
)

// StaticPriceSource is a PriceSource returning fixed prices per security
// code, or a fixed error for every lookup.
type StaticPriceSource struct {
	Prices map[string]float64
	Err    error
	// Lookups counts CurrentPrice calls
	Lookups int
}

// CurrentPrice returns the configured price for a code, or the configured
// error.
func (s *StaticPriceSource) CurrentPrice(code string, _ model.Market) (float64, error) {
	s.Lookups++
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Prices[code], nil
}

// MockNotionClient is a mock implementation of notion.Client. It serves
// fixed pages per database ID.
type MockNotionClient struct {
	PagesByDatabase map[string][]notion.Page
	Err             error
	// Queried records the database IDs queried, in call order
	Queried []string
}

// QueryDatabase returns the configured pages for a database.
func (m *MockNotionClient) QueryDatabase(_ context.Context, databaseID string) ([]notion.Page, error) {
	m.Queried = append(m.Queried, databaseID)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PagesByDatabase[databaseID], nil
}

// MockGitHubClient is a mock implementation of github.Client recording
// every mirrored file.
type MockGitHubClient struct {
	Err error
	// Puts maps mirrored path to the last content pushed there
	Puts map[string][]byte
}

// PutFile records the mirrored file, or fails with the configured error.
func (m *MockGitHubClient) PutFile(_ context.Context, path string, content []byte, _ string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Puts == nil {
		m.Puts = map[string][]byte{}
	}
	m.Puts[path] = content
	return nil
}
