// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SchemaValidator: Decodes and validates authored content (no I/O)
//   - ArtifactStore: Reads content, writes the published artifact
//   - BackupManager: Preserves the current artifact before overwrite
//   - Locker: Cross-process advisory lock around backup and write
//   - RemoteFetcher: Uncached GET against the live site
//   - SnapshotStore: Append-only snapshot persistence
//   - ArchiveReader: Lists and reads backups and snapshots
//   - ConfigStore: Read-only project configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
