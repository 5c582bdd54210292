package domain

// DriftRequest selects what to compare.
type DriftRequest struct {
	ArtifactPath string
	SnapshotDir  string
	// IncludeGeneratedAt also compares the generation stamps, which
	// otherwise always differ between a fresh publish and a later capture.
	IncludeGeneratedAt bool
}

// DriftReport is the outcome of comparing the published artifact with
// the newest snapshot of the live site.
type DriftReport struct {
	ArtifactPath string
	SnapshotPath string
	// Diff is a human-readable structural diff; empty when in sync.
	Diff string
}

// InSync reports whether no drift was found.
func (r *DriftReport) InSync() bool {
	return r.Diff == ""
}
