package driving

import (
	"context"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// HistoryService lists retained backups and snapshots.
type HistoryService interface {
	// List returns the files of kind in dir, newest first.
	List(ctx context.Context, dir string, kind domain.ArchiveKind) ([]domain.ArchiveEntry, error)
}

// DriftService compares the published artifact with the live site.
type DriftService interface {
	// Compare diffs the artifact against the newest snapshot.
	Compare(ctx context.Context, req domain.DriftRequest) (*domain.DriftReport, error)
}
