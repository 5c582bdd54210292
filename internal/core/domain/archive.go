package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ArchiveKind distinguishes the two timestamped file families.
type ArchiveKind string

// Archive kinds.
const (
	ArchiveBackups   ArchiveKind = "backups"
	ArchiveSnapshots ArchiveKind = "snapshots"
)

// Filename prefixes and extension of archived files.
const (
	BackupPrefix   = "market."
	SnapshotPrefix = "market.snapshot."
	ArchiveExt     = ".json"
)

// IsValid returns true if the kind is recognised.
func (k ArchiveKind) IsValid() bool {
	return k == ArchiveBackups || k == ArchiveSnapshots
}

// Prefix returns the filename prefix for the kind.
func (k ArchiveKind) Prefix() string {
	if k == ArchiveSnapshots {
		return SnapshotPrefix
	}
	return BackupPrefix
}

// ParseArchiveKind converts user input into an ArchiveKind.
func ParseArchiveKind(s string) (ArchiveKind, error) {
	k := ArchiveKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown archive kind %q (want backups or snapshots)", ErrInvalidInput, s)
	}
	return k, nil
}

// BackupFilename returns the backup filename for a capture at t.
func BackupFilename(t time.Time) string {
	return BackupPrefix + SafeTimestamp(t) + ArchiveExt
}

// SnapshotFilename returns the snapshot filename for a capture at t.
func SnapshotFilename(t time.Time) string {
	return SnapshotPrefix + SafeTimestamp(t) + ArchiveExt
}

// ArchiveEntry is one backup or snapshot file on disk.
type ArchiveEntry struct {
	Kind ArchiveKind
	Name string
	Path string
	// Taken is parsed back from the filename.
	Taken time.Time
	// Seq is the clash suffix N of name-N.json, 0 when absent.
	Seq  int
	Size int64
}

// SuffixedName returns name with -n inserted before its extension.
// n == 0 returns name unchanged.
func SuffixedName(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
}

// ParseArchiveName recognises market.<ts>[-N].json (backups) and
// market.snapshot.<ts>[-N].json (snapshots). Path and Size are left unset.
func ParseArchiveName(name string, kind ArchiveKind) (ArchiveEntry, bool) {
	if kind == ArchiveBackups && strings.HasPrefix(name, SnapshotPrefix) {
		return ArchiveEntry{}, false
	}
	prefix := kind.Prefix()
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ArchiveExt) {
		return ArchiveEntry{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ArchiveExt)
	if len(stamp) < safeTimestampLen {
		return ArchiveEntry{}, false
	}

	seq := 0
	if suffix := stamp[safeTimestampLen:]; suffix != "" {
		if suffix[0] != '-' {
			return ArchiveEntry{}, false
		}
		n, err := strconv.Atoi(suffix[1:])
		if err != nil || n < 1 {
			return ArchiveEntry{}, false
		}
		seq = n
	}

	taken, err := ParseSafeTimestamp(stamp[:safeTimestampLen])
	if err != nil {
		return ArchiveEntry{}, false
	}
	return ArchiveEntry{Kind: kind, Name: name, Taken: taken, Seq: seq}, true
}

// SortNewestFirst orders entries by capture time, newest first.
// Same-millisecond files were created in suffix order.
func SortNewestFirst(entries []ArchiveEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Taken.Equal(entries[j].Taken) {
			return entries[i].Taken.After(entries[j].Taken)
		}
		return entries[i].Seq > entries[j].Seq
	})
}
