package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
	"github.com/verdantledger/marketpub/internal/logger"
)

// Ensure DriftService implements the interface.
var _ driving.DriftService = (*DriftService)(nil)

// generatedAtKey is the artifact field ignored by default when diffing.
const generatedAtKey = "generated_at"

// DriftService compares the published artifact with the newest snapshot.
type DriftService struct {
	archive driven.ArchiveReader
}

// NewDriftService creates a new drift service.
func NewDriftService(archive driven.ArchiveReader) *DriftService {
	return &DriftService{archive: archive}
}

// Compare diffs the decoded JSON of the artifact ("-") against the newest
// snapshot ("+"). It only reads files.
func (s *DriftService) Compare(ctx context.Context, req domain.DriftRequest) (*domain.DriftReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshots, err := s.archive.List(req.SnapshotDir, domain.ArchiveSnapshots)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoSnapshots, req.SnapshotDir)
	}
	latest := snapshots[0]
	logger.Debug("Comparing %s against snapshot %s", req.ArtifactPath, latest.Path)

	published, err := s.decode(req.ArtifactPath)
	if err != nil {
		return nil, err
	}
	live, err := s.decode(latest.Path)
	if err != nil {
		return nil, err
	}

	if !req.IncludeGeneratedAt {
		dropKey(published, generatedAtKey)
		dropKey(live, generatedAtKey)
	}

	return &domain.DriftReport{
		ArtifactPath: req.ArtifactPath,
		SnapshotPath: latest.Path,
		Diff:         cmp.Diff(published, live),
	}, nil
}

func (s *DriftService) decode(path string) (any, error) {
	data, err := s.archive.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

func dropKey(v any, key string) {
	if m, ok := v.(map[string]any); ok {
		delete(m, key)
	}
}
