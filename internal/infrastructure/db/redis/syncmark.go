package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const runTTL = 48 * time.Hour

// SyncMarker records completed catalog sync runs in Redis. Best effort:
// correctness of the sync job never depends on it, the marker only gives
// operators a cheap "when did it last run" signal.
// Key format: sync:last_run → "<RFC3339 timestamp> inserted=<n>"
type SyncMarker struct {
	client *redis.Client
}

// NewSyncMarker creates a SyncMarker wrapping the given Redis client.
func NewSyncMarker(client *redis.Client) *SyncMarker {
	return &SyncMarker{client: client}
}

// RecordRun stores the completion marker for a run (expires after runTTL).
func (m *SyncMarker) RecordRun(ctx context.Context, at time.Time, inserted int) error {
	value := fmt.Sprintf("%s inserted=%d", at.Format(time.RFC3339), inserted)
	if err := m.client.Set(ctx, "sync:last_run", value, runTTL).Err(); err != nil {
		return fmt.Errorf("record sync run: %w", err)
	}
	return nil
}
