package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
)

// Ensure BackupManager implements the interface.
var _ driven.BackupManager = (*BackupManager)(nil)

// BackupManager copies the current artifact aside before it is overwritten.
type BackupManager struct{}

// NewBackupManager creates a new backup manager.
func NewBackupManager() *BackupManager {
	return &BackupManager{}
}

// Preserve creates backupDir if needed and copies targetPath into it as
// market.<timestamp>.json. A missing target is not an error: the first
// publish has nothing to preserve, and "" is returned.
func (m *BackupManager) Preserve(targetPath, backupDir string, at time.Time) (string, error) {
	if err := os.MkdirAll(backupDir, dirPerm); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	src, err := os.Open(targetPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open %s: %w", targetPath, err)
	}
	defer src.Close()

	dst, path, err := createExclusive(backupDir, domain.BackupFilename(at))
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("copy %s: %w", targetPath, err)
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("sync backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close backup: %w", err)
	}

	return path, nil
}
