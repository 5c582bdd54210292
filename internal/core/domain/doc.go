// Package domain defines the core business entities for marketpub.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MarketContent: Hand-authored KPIs, series and citations
//   - MarketDataArtifact: The stamped JSON file the website fetches
//   - Violation / ValidationError: Every schema problem found in one pass
//   - ArchiveEntry: A timestamped backup or snapshot file
//   - PipelineSettings: Resolved paths and snapshot endpoint
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
