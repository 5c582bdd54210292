package driven

import "time"

// BackupManager preserves the current artifact before it is overwritten.
type BackupManager interface {
	// Preserve ensures backupDir exists, then copies targetPath into it
	// byte-for-byte under a filename stamped with at. It returns the backup
	// path, or "" with a nil error when targetPath does not exist yet.
	Preserve(targetPath, backupDir string, at time.Time) (string, error)
}
