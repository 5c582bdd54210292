package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantledger/marketpub/internal/adapters/driven/storage/memory"
	"github.com/verdantledger/marketpub/internal/core/domain"
)

func driftRequest() domain.DriftRequest {
	return domain.DriftRequest{
		ArtifactPath: testArtifactPath,
		SnapshotDir:  testSnapshotDir,
	}
}

func putSnapshot(t *testing.T, disk *memory.Disk, at time.Time, body string) string {
	t.Helper()
	path, err := disk.SaveSnapshot(testSnapshotDir, []byte(body), at)
	require.NoError(t, err)
	return path
}

func TestDriftService_Compare_InSyncIgnoresGeneratedAt(t *testing.T) {
	disk := memory.NewDisk()
	disk.Put(testArtifactPath, []byte(`{"generated_at":"2024-05-01T00:00:00.000Z","kpis":[{"key":"a"}]}`))
	putSnapshot(t, disk, fixedNow, "{\n  \"generated_at\": \"2024-04-01T00:00:00.000Z\",\n  \"kpis\": [{\"key\": \"a\"}]\n}\n")

	report, err := NewDriftService(disk).Compare(context.Background(), driftRequest())

	require.NoError(t, err)
	assert.True(t, report.InSync(), report.Diff)
}

func TestDriftService_Compare_IncludeGeneratedAt(t *testing.T) {
	disk := memory.NewDisk()
	disk.Put(testArtifactPath, []byte(`{"generated_at":"2024-05-01T00:00:00.000Z","kpis":[]}`))
	putSnapshot(t, disk, fixedNow, `{"generated_at":"2024-04-01T00:00:00.000Z","kpis":[]}`)

	req := driftRequest()
	req.IncludeGeneratedAt = true
	report, err := NewDriftService(disk).Compare(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, report.InSync())
	assert.Contains(t, report.Diff, "2024-04-01")
}

func TestDriftService_Compare_UsesNewestSnapshot(t *testing.T) {
	disk := memory.NewDisk()
	disk.Put(testArtifactPath, []byte(`{"kpis":[{"key":"b"}]}`))
	putSnapshot(t, disk, fixedNow.Add(-time.Hour), `{"kpis":[{"key":"a"}]}`)
	newest := putSnapshot(t, disk, fixedNow, `{"kpis":[{"key":"c"}]}`)

	report, err := NewDriftService(disk).Compare(context.Background(), driftRequest())

	require.NoError(t, err)
	assert.Equal(t, newest, report.SnapshotPath)
	assert.False(t, report.InSync())
	assert.Contains(t, report.Diff, `"b"`)
	assert.Contains(t, report.Diff, `"c"`)
	assert.Len(t, disk.Ops(), 2, "compare must not write")
}

func TestDriftService_Compare_NoSnapshots(t *testing.T) {
	disk := memory.NewDisk()
	disk.Put(testArtifactPath, []byte(`{}`))

	_, err := NewDriftService(disk).Compare(context.Background(), driftRequest())

	assert.ErrorIs(t, err, domain.ErrNoSnapshots)
}

func TestDriftService_Compare_MissingArtifact(t *testing.T) {
	disk := memory.NewDisk()
	putSnapshot(t, disk, fixedNow, `{}`)

	_, err := NewDriftService(disk).Compare(context.Background(), driftRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), testArtifactPath)
}

func TestDriftService_Compare_CorruptSnapshot(t *testing.T) {
	disk := memory.NewDisk()
	disk.Put(testArtifactPath, []byte(`{}`))
	path := putSnapshot(t, disk, fixedNow, `{not json`)

	_, err := NewDriftService(disk).Compare(context.Background(), driftRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Base(path))
}

func TestHistoryService_List(t *testing.T) {
	disk := memory.NewDisk()
	putSnapshot(t, disk, fixedNow.Add(-time.Minute), `{}`)
	putSnapshot(t, disk, fixedNow, `{"a":1}`)
	svc := NewHistoryService(disk)

	entries, err := svc.List(context.Background(), testSnapshotDir, domain.ArchiveSnapshots)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, fixedNow.Equal(entries[0].Taken))

	backups, err := svc.List(context.Background(), "public/data/_backups", domain.ArchiveBackups)
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestHistoryService_List_InvalidKind(t *testing.T) {
	_, err := NewHistoryService(memory.NewDisk()).List(context.Background(), testSnapshotDir, domain.ArchiveKind("logs"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
