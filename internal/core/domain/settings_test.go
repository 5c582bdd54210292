package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPipelineSettings(t *testing.T) {
	s := DefaultPipelineSettings()

	assert.Equal(t, "content/market.yaml", s.Paths.Content)
	assert.Equal(t, "public/data/market.json", s.Paths.Artifact)
	assert.Equal(t, filepath.Join("public", "data", "_backups"), s.Paths.Backups)
	assert.Equal(t, filepath.Join("public", "data", "_snapshots"), s.Paths.Snapshots)
	assert.Equal(t, "http://localhost:3000", s.Snapshot.BaseURL)
	assert.Equal(t, "/data/market.json", s.Snapshot.ResourcePath)
}

func TestDefaultBackupDir_FollowsArtifact(t *testing.T) {
	assert.Equal(t, filepath.Join("site", "static", "_backups"), DefaultBackupDir("site/static/market.json"))
	assert.Equal(t, filepath.Join("site", "static", "_snapshots"), DefaultSnapshotDir("site/static/market.json"))
}
