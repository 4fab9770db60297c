package model

import "time"

// DatasetSyncResult reports the outcome of syncing one ledger dataset.
// A mirror error is recorded but does not fail the dataset: the local flat
// files are the source of truth for the dashboard.
type DatasetSyncResult struct {
	Key         string `json:"key"`
	Rows        int    `json:"rows"`
	Synced      bool   `json:"synced"`
	Error       string `json:"error,omitempty"`
	MirrorError string `json:"mirrorError,omitempty"`
}

// SyncReport summarizes one full sync run across all configured datasets.
type SyncReport struct {
	RunID      string              `json:"runId"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
	Datasets   []DatasetSyncResult `json:"datasets"`
}
