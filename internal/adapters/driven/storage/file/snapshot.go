package file

import (
	"fmt"
	"os"
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore writes snapshot files. It only ever adds files.
type SnapshotStore struct{}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// SaveSnapshot writes body to dir as market.snapshot.<timestamp>.json.
func (s *SnapshotStore) SaveSnapshot(dir string, body []byte, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}
	path, err := writeNew(dir, domain.SnapshotFilename(at), body)
	if err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
