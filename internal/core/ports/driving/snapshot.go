package driving

import (
	"context"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// SnapshotService captures what the live site is currently serving.
type SnapshotService interface {
	// Capture fetches the configured resource once and persists it.
	Capture(ctx context.Context, cfg domain.SnapshotConfig) (*domain.SnapshotResult, error)
}
