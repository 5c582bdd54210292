package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
	"github.com/verdantledger/marketpub/internal/logger"
)

// Ensure SnapshotService implements the interface.
var _ driving.SnapshotService = (*SnapshotService)(nil)

// SnapshotService captures dated copies of the live market resource.
type SnapshotService struct {
	fetcher driven.RemoteFetcher
	store   driven.SnapshotStore
	now     func() time.Time
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(fetcher driven.RemoteFetcher, store driven.SnapshotStore) *SnapshotService {
	return &SnapshotService{
		fetcher: fetcher,
		store:   store,
		now:     time.Now,
	}
}

// Capture fetches cfg's resource once and writes it, re-indented, as a new
// snapshot file. The body is not checked against the market schema.
func (s *SnapshotService) Capture(ctx context.Context, cfg domain.SnapshotConfig) (*domain.SnapshotResult, error) {
	if cfg.SnapshotDir == "" {
		return nil, fmt.Errorf("%w: snapshot directory is required", domain.ErrInvalidInput)
	}
	target, err := ResolveResourceURL(cfg.BaseURL, cfg.ResourcePath)
	if err != nil {
		return nil, err
	}

	logger.Section("Snapshot")
	logger.Debug("Fetching %s", target)

	body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("fetch snapshot: response from %s is not valid JSON", target)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return nil, fmt.Errorf("format snapshot: %w", err)
	}
	pretty.WriteByte('\n')

	at := s.now()
	path, err := s.store.SaveSnapshot(cfg.SnapshotDir, pretty.Bytes(), at)
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	logger.Info("Saved snapshot %s", path)

	return &domain.SnapshotResult{
		URL:        target,
		Path:       path,
		CapturedAt: at,
		Bytes:      pretty.Len(),
	}, nil
}

// ResolveResourceURL joins a base URL and a resource path.
// The base must be an absolute http or https URL.
func ResolveResourceURL(baseURL, resourcePath string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return "", fmt.Errorf("%w: base URL must be an absolute http(s) URL, got %q", domain.ErrInvalidInput, baseURL)
	}
	if resourcePath == "" {
		resourcePath = domain.DefaultResourcePath
	}
	return base.JoinPath(resourcePath).String(), nil
}
