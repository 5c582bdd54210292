package driving

import (
	"context"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

// Publisher validates authored content and publishes it as the artifact.
type Publisher interface {
	// Publish runs validate, backup and write. On validation failure it
	// returns a *domain.ValidationError and leaves the filesystem untouched.
	Publish(ctx context.Context, req domain.PublishRequest) (*domain.PublishResult, error)

	// Check validates the content at contentPath without writing anything.
	Check(ctx context.Context, contentPath string) (*domain.MarketContent, error)
}
