package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantledger/marketpub/internal/core/domain"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/market.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kpis":[]}`))
	}))
	defer server.Close()

	body, err := NewFetcher(nil, "marketpub/test").Fetch(context.Background(), server.URL+"/data/market.json")

	require.NoError(t, err)
	assert.Equal(t, `{"kpis":[]}`, string(body))
	assert.Equal(t, "no-cache", gotHeaders.Get("Cache-Control"))
	assert.Equal(t, "no-cache", gotHeaders.Get("Pragma"))
	assert.Equal(t, "marketpub/test", gotHeaders.Get("User-Agent"))
}

func TestFetcher_Fetch_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	body, err := NewFetcher(nil, "").Fetch(context.Background(), server.URL+"/data/market.json")

	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, errors.Is(err, domain.ErrUnexpectedStatus))

	var statusErr *domain.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, server.URL+"/data/market.json", statusErr.URL)
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewFetcher(nil, "").Fetch(context.Background(), server.URL+"/missing.json")

	var statusErr *domain.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetcher_Fetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(nil, "").Fetch(ctx, server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetcher_Fetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewFetcher(nil, "").Fetch(context.Background(), url)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnexpectedStatus))
}
