package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveFilenames(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)

	assert.Equal(t, "market.2024-01-02T03-04-05-006Z.json", BackupFilename(at))
	assert.Equal(t, "market.snapshot.2024-01-02T03-04-05-006Z.json", SnapshotFilename(at))
}

func TestParseArchiveKind(t *testing.T) {
	k, err := ParseArchiveKind("backups")
	require.NoError(t, err)
	assert.Equal(t, ArchiveBackups, k)
	assert.Equal(t, "market.", k.Prefix())

	k, err = ParseArchiveKind("snapshots")
	require.NoError(t, err)
	assert.Equal(t, "market.snapshot.", k.Prefix())

	_, err = ParseArchiveKind("logs")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSuffixedName(t *testing.T) {
	assert.Equal(t, "market.x.json", SuffixedName("market.x.json", 0))
	assert.Equal(t, "market.x-2.json", SuffixedName("market.x.json", 2))
}

func TestParseArchiveName(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 10, 20, 30, 123000000, time.UTC)

	tests := []struct {
		name    string
		file    string
		kind    ArchiveKind
		wantOK  bool
		wantSeq int
	}{
		{"backup", "market.2024-05-01T10-20-30-123Z.json", ArchiveBackups, true, 0},
		{"backup with suffix", "market.2024-05-01T10-20-30-123Z-3.json", ArchiveBackups, true, 3},
		{"snapshot", "market.snapshot.2024-05-01T10-20-30-123Z.json", ArchiveSnapshots, true, 0},
		{"snapshot is not a backup", "market.snapshot.2024-05-01T10-20-30-123Z.json", ArchiveBackups, false, 0},
		{"backup is not a snapshot", "market.2024-05-01T10-20-30-123Z.json", ArchiveSnapshots, false, 0},
		{"published artifact", "market.json", ArchiveBackups, false, 0},
		{"zero suffix", "market.2024-05-01T10-20-30-123Z-0.json", ArchiveBackups, false, 0},
		{"garbage suffix", "market.2024-05-01T10-20-30-123Zx.json", ArchiveBackups, false, 0},
		{"wrong extension", "market.2024-05-01T10-20-30-123Z.yaml", ArchiveBackups, false, 0},
		{"bad stamp", "market.2024-13-01T10-20-30-123Z.json", ArchiveBackups, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseArchiveName(tt.file, tt.kind)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.file, entry.Name)
			assert.Equal(t, tt.kind, entry.Kind)
			assert.Equal(t, tt.wantSeq, entry.Seq)
			assert.True(t, stamp.Equal(entry.Taken))
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	entries := []ArchiveEntry{
		{Name: "early", Taken: early},
		{Name: "late", Taken: late},
		{Name: "late-1", Taken: late, Seq: 1},
	}

	SortNewestFirst(entries)

	assert.Equal(t, "late-1", entries[0].Name)
	assert.Equal(t, "late", entries[1].Name)
	assert.Equal(t, "early", entries[2].Name)
}
