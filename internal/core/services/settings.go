package services

import (
	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyContentPath      = "paths.content"
	keyArtifactPath     = "paths.artifact"
	keyBackupDir        = "paths.backups"
	keySnapshotDir      = "paths.snapshots"
	keyBaseURL          = "snapshot.base_url"
	keySnapshotResource = "snapshot.resource_path"
)

// SettingsService resolves pipeline settings from the project config file.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current pipeline settings. Unset keys fall back to
// defaults; backup and snapshot directories follow the artifact path.
func (s *SettingsService) Get() (*domain.PipelineSettings, error) {
	defaults := domain.DefaultPipelineSettings()

	artifact := s.getString(keyArtifactPath, defaults.Paths.Artifact)

	settings := &domain.PipelineSettings{
		Paths: domain.PathSettings{
			Content:   s.getString(keyContentPath, defaults.Paths.Content),
			Artifact:  artifact,
			Backups:   s.getString(keyBackupDir, domain.DefaultBackupDir(artifact)),
			Snapshots: s.getString(keySnapshotDir, domain.DefaultSnapshotDir(artifact)),
		},
		Snapshot: domain.SnapshotSettings{
			BaseURL:      s.getString(keyBaseURL, defaults.Snapshot.BaseURL),
			ResourcePath: s.getString(keySnapshotResource, defaults.Snapshot.ResourcePath),
		},
	}
	if s.configStore != nil {
		settings.Source = s.configStore.Path()
	}

	return settings, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if s.configStore == nil {
		return defaultVal
	}
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
