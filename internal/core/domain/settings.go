package domain

import "path/filepath"

// Default locations, relative to the project root.
const (
	DefaultContentPath  = "content/market.yaml"
	DefaultArtifactPath = "public/data/market.json"
	DefaultBaseURL      = "http://localhost:3000"
	DefaultResourcePath = "/data/market.json"

	// BackupDirName and SnapshotDirName sit beside the artifact unless overridden.
	BackupDirName   = "_backups"
	SnapshotDirName = "_snapshots"
)

// PipelineSettings is the resolved configuration for one invocation.
type PipelineSettings struct {
	// Source is the path of the config store the settings were read from.
	Source   string
	Paths    PathSettings
	Snapshot SnapshotSettings
}

// PathSettings locates the authored content and everything written from it.
type PathSettings struct {
	Content   string
	Artifact  string
	Backups   string
	Snapshots string
}

// SnapshotSettings configures where snapshots are fetched from.
type SnapshotSettings struct {
	BaseURL      string
	ResourcePath string
}

// DefaultPipelineSettings returns the project-relative defaults.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		Paths: PathSettings{
			Content:   DefaultContentPath,
			Artifact:  DefaultArtifactPath,
			Backups:   DefaultBackupDir(DefaultArtifactPath),
			Snapshots: DefaultSnapshotDir(DefaultArtifactPath),
		},
		Snapshot: SnapshotSettings{
			BaseURL:      DefaultBaseURL,
			ResourcePath: DefaultResourcePath,
		},
	}
}

// DefaultBackupDir returns the _backups directory adjacent to artifactPath.
func DefaultBackupDir(artifactPath string) string {
	return filepath.Join(filepath.Dir(artifactPath), BackupDirName)
}

// DefaultSnapshotDir returns the _snapshots directory adjacent to artifactPath.
func DefaultSnapshotDir(artifactPath string) string {
	return filepath.Join(filepath.Dir(artifactPath), SnapshotDirName)
}
