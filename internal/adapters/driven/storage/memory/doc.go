// Package memory provides in-memory implementations of the driven ports.
// They keep everything in maps guarded by a mutex and are used to exercise
// services without touching the filesystem.
package memory
