package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure ArchiveReader implements the interface.
var _ driven.ArchiveReader = (*ArchiveReader)(nil)

// ArchiveReader lists and reads backups and snapshots.
type ArchiveReader struct{}

// NewArchiveReader creates a new archive reader.
func NewArchiveReader() *ArchiveReader {
	return &ArchiveReader{}
}

// List returns archive files of kind in dir, newest first.
func (r *ArchiveReader) List(dir string, kind domain.ArchiveKind) ([]domain.ArchiveEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.ArchiveEntry{}, nil
		}
		return nil, err
	}

	entries := make([]domain.ArchiveEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		entry, ok := domain.ParseArchiveName(de.Name(), kind)
		if !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		entry.Path = filepath.Join(dir, de.Name())
		entry.Size = info.Size()
		entries = append(entries, entry)
	}

	domain.SortNewestFirst(entries)
	return entries, nil
}

// Read returns the contents of path.
func (r *ArchiveReader) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
