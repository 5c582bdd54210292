package driven

import "github.com/verdantledger/marketpub/internal/core/domain"

// SchemaValidator structurally validates raw authored market content.
// Implementations must not touch the filesystem or network.
type SchemaValidator interface {
	// Validate decodes and checks data. On failure it returns a
	// *domain.ValidationError listing every violation found, not just the first.
	Validate(data []byte) (*domain.MarketContent, error)
}
