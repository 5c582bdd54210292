package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

func touch(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestArchiveReader_ListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "market.2024-01-01T00-00-00-000Z.json", "a")
	touch(t, dir, "market.2024-03-01T00-00-00-000Z.json", "bbb")
	touch(t, dir, "market.2024-02-01T00-00-00-000Z.json", "cc")
	touch(t, dir, "market.2024-03-01T00-00-00-000Z-1.json", "dddd")
	touch(t, dir, ".market.lock", "")
	touch(t, dir, "market.snapshot.2024-04-01T00-00-00-000Z.json", "snap")
	touch(t, dir, "notes.txt", "x")
	touch(t, dir, "market.garbage.json", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "market.2024-05-01T00-00-00-000Z.json"), 0o755))

	entries, err := NewArchiveReader().List(dir, domain.ArchiveBackups)

	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		"market.2024-03-01T00-00-00-000Z-1.json",
		"market.2024-03-01T00-00-00-000Z.json",
		"market.2024-02-01T00-00-00-000Z.json",
		"market.2024-01-01T00-00-00-000Z.json",
	}, names)
	assert.Equal(t, int64(4), entries[0].Size)
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(entries[0].Taken))
	assert.Equal(t, domain.ArchiveBackups, entries[0].Kind)
}

func TestArchiveReader_ListSnapshots(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "market.snapshot.2024-04-01T00-00-00-000Z.json", "{}")
	touch(t, dir, "market.2024-03-01T00-00-00-000Z.json", "{}")

	entries, err := NewArchiveReader().List(dir, domain.ArchiveSnapshots)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "market.snapshot.2024-04-01T00-00-00-000Z.json"), entries[0].Path)
}

func TestArchiveReader_MissingDirectory(t *testing.T) {
	entries, err := NewArchiveReader().List(filepath.Join(t.TempDir(), "nope"), domain.ArchiveSnapshots)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchiveReader_Read(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "market.json", `{"kpis":[]}`)

	data, err := NewArchiveReader().Read(filepath.Join(dir, "market.json"))

	require.NoError(t, err)
	assert.Equal(t, `{"kpis":[]}`, string(data))
}
