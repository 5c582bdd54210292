package driven

import (
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// SnapshotStore persists captured responses from the live site.
type SnapshotStore interface {
	// SaveSnapshot writes body into dir under a filename stamped with at.
	// It never reads, replaces or removes existing snapshots.
	SaveSnapshot(dir string, body []byte, at time.Time) (string, error)
}

// ArchiveReader lists and reads backups and snapshots.
type ArchiveReader interface {
	// List returns the archive files of kind in dir, newest first.
	// A missing directory yields an empty list.
	List(dir string, kind domain.ArchiveKind) ([]domain.ArchiveEntry, error)

	// Read returns the contents of an archived or published file.
	Read(path string) ([]byte, error)
}
