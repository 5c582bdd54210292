package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// maxNameAttempts bounds the numeric suffixes tried on a name clash.
	maxNameAttempts = 100
)

// createExclusive creates a new file named name in dir. If that name is
// taken it tries name-1, name-2 and so on before the extension.
func createExclusive(dir, name string) (*os.File, string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		path := filepath.Join(dir, domain.SuffixedName(name, i))

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("no free filename for %s in %s", name, dir)
}

// writeNew writes data to a freshly created file and syncs it to disk.
func writeNew(dir, name string, data []byte) (string, error) {
	f, path, err := createExclusive(dir, name)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
