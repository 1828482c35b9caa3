package ports

import "context"

// SyncResult summarizes a completed reconciliation run.
type SyncResult struct {
	Fetched  int
	Inserted int
	Skipped  int
}

// SyncService pulls the remote catalog and reconciles it against the local
// store. Run fails as a whole with domain.ErrSyncFailed when the fetch errors
// or yields no records; reconciliation itself is insert-if-absent per record
// and never mutates existing rows.
type SyncService interface {
	Run(ctx context.Context) (*SyncResult, error)
}
