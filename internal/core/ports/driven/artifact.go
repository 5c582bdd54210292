package driven

// ArtifactStore reads authored content and writes the published artifact.
type ArtifactStore interface {
	// ReadContent returns the raw bytes of the authored content file.
	ReadContent(path string) ([]byte, error)

	// WriteArtifact writes data to path in a single write operation,
	// creating the parent directory if needed.
	WriteArtifact(path string, data []byte) error
}
