package driven

import "context"

// RemoteFetcher retrieves a resource from the live deployment.
type RemoteFetcher interface {
	// Fetch issues a single uncached GET for url and returns the body.
	// Non-2xx responses yield a *domain.HTTPStatusError and no body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
