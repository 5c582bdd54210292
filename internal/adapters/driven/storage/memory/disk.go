package memory

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure Disk implements the storage interfaces.
var (
	_ driven.ArtifactStore = (*Disk)(nil)
	_ driven.BackupManager = (*Disk)(nil)
	_ driven.SnapshotStore = (*Disk)(nil)
	_ driven.ArchiveReader = (*Disk)(nil)
)

// Disk is an in-memory file tree keyed by cleaned path. It records every
// mutating operation so tests can assert on ordering.
type Disk struct {
	mu    sync.RWMutex
	files map[string][]byte
	ops   []string
}

// NewDisk creates an empty in-memory disk.
func NewDisk() *Disk {
	return &Disk{
		files: make(map[string][]byte),
	}
}

// Put seeds a file.
func (d *Disk) Put(path string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[filepath.Clean(path)] = clone(data)
}

// File returns a copy of the file at path.
func (d *Disk) File(path string) ([]byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data, ok := d.files[filepath.Clean(path)]
	if !ok {
		return nil, false
	}
	return clone(data), true
}

// Paths returns every stored path, sorted.
func (d *Disk) Paths() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	paths := make([]string, 0, len(d.files))
	for p := range d.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Ops returns the journal of mutating operations, e.g. "write <path>".
func (d *Disk) Ops() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.ops...)
}

// ReadContent returns the file at path.
func (d *Disk) ReadContent(path string) ([]byte, error) {
	return d.Read(path)
}

// WriteArtifact replaces the file at path.
func (d *Disk) WriteArtifact(path string, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	path = filepath.Clean(path)
	d.files[path] = clone(data)
	d.ops = append(d.ops, "write "+path)
	return nil
}

// Preserve copies targetPath into backupDir under a stamped name.
func (d *Disk) Preserve(targetPath, backupDir string, at time.Time) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.files[filepath.Clean(targetPath)]
	if !ok {
		return "", nil
	}
	path := d.freePath(backupDir, domain.BackupFilename(at))
	d.files[path] = clone(data)
	d.ops = append(d.ops, "backup "+path)
	return path, nil
}

// SaveSnapshot stores body in dir under a stamped name.
func (d *Disk) SaveSnapshot(dir string, body []byte, at time.Time) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	path := d.freePath(dir, domain.SnapshotFilename(at))
	d.files[path] = clone(body)
	d.ops = append(d.ops, "snapshot "+path)
	return path, nil
}

// List returns archive entries of kind directly inside dir, newest first.
func (d *Disk) List(dir string, kind domain.ArchiveKind) ([]domain.ArchiveEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	dir = filepath.Clean(dir)
	entries := []domain.ArchiveEntry{}
	for p, data := range d.files {
		if filepath.Dir(p) != dir {
			continue
		}
		entry, ok := domain.ParseArchiveName(filepath.Base(p), kind)
		if !ok {
			continue
		}
		entry.Path = p
		entry.Size = int64(len(data))
		entries = append(entries, entry)
	}
	domain.SortNewestFirst(entries)
	return entries, nil
}

// Read returns the file at path.
func (d *Disk) Read(path string) ([]byte, error) {
	data, ok := d.File(path)
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

// freePath returns the first unused dir/name[-N] (caller must hold lock).
func (d *Disk) freePath(dir, name string) string {
	for i := 0; ; i++ {
		path := filepath.Join(dir, domain.SuffixedName(name, i))
		if _, taken := d.files[path]; !taken {
			return path
		}
	}
}

func clone(data []byte) []byte {
	return append([]byte(nil), data...)
}
