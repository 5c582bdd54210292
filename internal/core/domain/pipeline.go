package domain

import "time"

// PublishRequest describes one publish invocation.
type PublishRequest struct {
	ContentPath  string
	ArtifactPath string
	BackupDir    string
}

// PublishResult reports what a successful publish wrote.
type PublishResult struct {
	ArtifactPath string
	// BackupPath is empty when there was no previous artifact to preserve.
	BackupPath  string
	GeneratedAt string
	KPIs        int
	Series      int
	Refs        int
}

// SnapshotConfig is the explicit configuration for one snapshot capture.
// It is built by the caller; services never read the environment.
type SnapshotConfig struct {
	BaseURL      string
	ResourcePath string
	SnapshotDir  string
}

// SnapshotResult reports a persisted snapshot.
type SnapshotResult struct {
	URL        string
	Path       string
	CapturedAt time.Time
	Bytes      int
}
