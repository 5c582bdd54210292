package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
	"github.com/verdantledger/marketpub/internal/logger"
)

// Ensure PublisherService implements the interface.
var _ driving.Publisher = (*PublisherService)(nil)

// lockFileName is the advisory lock taken inside the backup directory
// for the duration of backup and write.
const lockFileName = ".market.lock"

// PublisherService validates, backs up, stamps and writes the market artifact.
type PublisherService struct {
	validator driven.SchemaValidator
	backups   driven.BackupManager
	store     driven.ArtifactStore
	locker    driven.Locker
	now       func() time.Time
}

// NewPublisherService creates a new publisher.
func NewPublisherService(
	validator driven.SchemaValidator,
	backups driven.BackupManager,
	store driven.ArtifactStore,
	locker driven.Locker,
) *PublisherService {
	return &PublisherService{
		validator: validator,
		backups:   backups,
		store:     store,
		locker:    locker,
		now:       time.Now,
	}
}

// Check reads and validates the content at contentPath.
func (s *PublisherService) Check(ctx context.Context, contentPath string) (*domain.MarketContent, error) {
	if contentPath == "" {
		return nil, fmt.Errorf("%w: content path is required", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := s.store.ReadContent(contentPath)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	logger.Debug("Read %d bytes of content from %s", len(raw), contentPath)

	content, err := s.validator.Validate(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("Content valid: %d kpis, %d series, %d refs",
		len(content.KPIs), len(content.Series), len(content.Refs))
	return content, nil
}

// Publish runs the full pipeline. Nothing on disk changes unless the
// content validates; the previous artifact is backed up before it is replaced.
// generated_at has millisecond resolution, so it is at or after the start of
// the call only when both are truncated to the millisecond.
func (s *PublisherService) Publish(ctx context.Context, req domain.PublishRequest) (*domain.PublishResult, error) {
	if req.ArtifactPath == "" {
		return nil, fmt.Errorf("%w: artifact path is required", domain.ErrInvalidInput)
	}
	backupDir := req.BackupDir
	if backupDir == "" {
		backupDir = domain.DefaultBackupDir(req.ArtifactPath)
	}

	logger.Section("Validate")
	content, err := s.Check(ctx, req.ContentPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Publish")
	release, err := s.locker.Acquire(filepath.Join(backupDir, lockFileName))
	if err != nil {
		return nil, fmt.Errorf("acquire publish lock: %w", err)
	}
	defer func() {
		if err := release(); err != nil {
			logger.Warn("Failed to release publish lock: %v", err)
		}
	}()

	at := s.now()

	// Encode before touching the disk so an unencodable artifact leaves no backup.
	artifact := content.Stamp(domain.Timestamp(at))
	data, err := encodeArtifact(artifact)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}

	backupPath, err := s.backups.Preserve(req.ArtifactPath, backupDir, at)
	if err != nil {
		return nil, fmt.Errorf("back up %s: %w", req.ArtifactPath, err)
	}
	if backupPath == "" {
		logger.Info("No existing artifact at %s, nothing to back up", req.ArtifactPath)
	} else {
		logger.Info("Backed up previous artifact to %s", backupPath)
	}

	// A failed write leaves the backup in place; there is no rollback.
	if err := s.store.WriteArtifact(req.ArtifactPath, data); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}
	logger.Info("Wrote %s (%d bytes)", req.ArtifactPath, len(data))

	return &domain.PublishResult{
		ArtifactPath: req.ArtifactPath,
		BackupPath:   backupPath,
		GeneratedAt:  artifact.GeneratedAt,
		KPIs:         len(artifact.KPIs),
		Series:       len(artifact.Series),
		Refs:         len(artifact.Refs),
	}, nil
}

// encodeArtifact renders the artifact as two-space indented JSON with a
// trailing newline, leaving characters such as '&' unescaped.
func encodeArtifact(artifact *domain.MarketDataArtifact) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artifact); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
