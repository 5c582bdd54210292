package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore reads authored content and writes the published artifact.
type ArtifactStore struct{}

// NewArtifactStore creates a new artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// ReadContent returns the raw bytes of the content file.
func (s *ArtifactStore) ReadContent(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteArtifact writes data to path in one write, creating its directory.
func (s *ArtifactStore) WriteArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	return os.WriteFile(path, data, filePerm)
}
