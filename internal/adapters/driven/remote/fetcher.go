// Package remote fetches published resources from the live deployment.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/verdantledger/marketpub/internal/core/domain"
	"github.com/verdantledger/marketpub/internal/core/ports/driven"
	"github.com/verdantledger/marketpub/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.RemoteFetcher = (*Fetcher)(nil)

// Fetcher issues uncached GET requests against the live site.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a fetcher. A nil client uses a plain http.Client.
// No timeout is imposed here; callers bound requests with the context.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch retrieves url, bypassing intermediate caches.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	logger.Debug("GET %s", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	logger.Debug("received %d bytes from %s", len(body), url)
	return body, nil
}
