// Package file provides filesystem implementations of the storage ports.
//
// Adapters:
//   - BackupManager: Timestamped byte-for-byte copies of the previous artifact
//   - ArtifactStore: Reads authored content, writes the published artifact
//   - SnapshotStore: Append-only, timestamped snapshot files
//   - ArchiveReader: Lists and reads backups and snapshots
//
// Timestamped files are created with O_EXCL so an existing file is never
// replaced; a name clash gets a numeric suffix instead.
package file
