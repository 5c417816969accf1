package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// Source yields the raw delimited text of a published sheet.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPSource fetches the sheet export over HTTP. It makes exactly one
// attempt per Fetch.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, cfg model.SourceConfig) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// URL returns the sheet export address.
func (s *HTTPSource) URL() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("url", s.url).Msg("failed to fetch catalog")
		return "", fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logx.Error().Int("status", resp.StatusCode).Str("url", s.url).Msg("catalog source returned non-2xx status")
		return "", fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logx.Error().Err(err).Str("url", s.url).Msg("failed to read catalog body")
		return "", fmt.Errorf("read catalog body: %w", err)
	}

	logx.Debug().
		Str("url", s.url).
		Int("bytes", len(body)).
		Dur("took", time.Since(start)).
		Msg("catalog fetched")
	return string(body), nil
}

// CachedSource remembers the last successful fetch for a while so that
// repeated session starts do not hit the sheet every time. Failures are
// never cached.
type CachedSource struct {
	key   string
	inner Source
	cache *expirable.LRU[string, string]
}

func NewCachedSource(key string, inner Source, cfg model.SourceConfig) *CachedSource {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1
	}
	return &CachedSource{
		key:   key,
		inner: inner,
		cache: expirable.NewLRU[string, string](size, nil, cfg.CacheTTL),
	}
}

func (s *CachedSource) Fetch(ctx context.Context) (string, error) {
	if raw, ok := s.cache.Get(s.key); ok {
		logx.Debug().Str("key", s.key).Msg("catalog served from cache")
		return raw, nil
	}
	raw, err := s.inner.Fetch(ctx)
	if err != nil {
		return "", err
	}
	s.cache.Add(s.key, raw)
	return raw, nil
}

// Invalidate forgets the cached text so the next Fetch goes to the source.
func (s *CachedSource) Invalidate() {
	s.cache.Remove(s.key)
}

// StaticSource serves fixed text. Useful for tests and offline demos.
type StaticSource string

func (s StaticSource) Fetch(context.Context) (string, error) {
	return string(s), nil
}

var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*CachedSource)(nil)
	_ Source = StaticSource("")
)
