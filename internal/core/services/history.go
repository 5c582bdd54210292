package services

import (
	"context"
	"fmt"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService lists backups and snapshots kept on disk.
type HistoryService struct {
	archive driven.ArchiveReader
}

// NewHistoryService creates a new history service.
func NewHistoryService(archive driven.ArchiveReader) *HistoryService {
	return &HistoryService{archive: archive}
}

// List returns the archive entries of kind in dir, newest first.
func (s *HistoryService) List(ctx context.Context, dir string, kind domain.ArchiveKind) ([]domain.ArchiveEntry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown archive kind %q", domain.ErrInvalidInput, kind)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := s.archive.List(dir, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return entries, nil
}
