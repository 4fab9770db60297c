package service

import (
	"fmt"
	"os"
)

// SystemService handles system-level operations such as health checks.
type SystemService struct {
	dataDir string
}

// NewSystemService creates a new SystemService for the given data directory.
func NewSystemService(dataDir string) *SystemService {
	return &SystemService{dataDir: dataDir}
}

// CheckHealth verifies that the data directory is reachable. A directory
// that does not exist yet is healthy (no sync has run); a path occupied by
// a regular file is not.
func (s *SystemService) CheckHealth() error {
	info, err := os.Stat(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("data directory unreachable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dataDir)
	}
	return nil
}

// DataDir returns the configured ledger directory.
func (s *SystemService) DataDir() string {
	return s.dataDir
}
