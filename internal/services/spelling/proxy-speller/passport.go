package proxyspeller

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sync"
	"time"

	"modalcopy/internal/common/database"
	commonhttp "modalcopy/internal/common/http"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/metrics"
)

var (
	passportPrimary      = regexp.MustCompile(`passportKey=([a-zA-Z0-9]+)`)
	passportAlternatives = []*regexp.Regexp{
		regexp.MustCompile(`(?i)passportKey["']?\s*[:=]\s*["']([^"']+)["']`),
		regexp.MustCompile(`(?i)passportKey=([^&\s"']+)`),
	}
)

var searchPageHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
}

// PassportSource hands out the key the upstream speller requires. The key is
// memoized in process and shared through the cache when one is configured.
type PassportSource struct {
	client *commonhttp.Client
	url    string
	cache  Cache
	ttl    time.Duration
	logger logger.Logger

	mu   sync.Mutex
	memo *string
}

func NewPassportSource(client *commonhttp.Client, pageURL string, cache Cache, ttl time.Duration, log logger.Logger) *PassportSource {
	return &PassportSource{
		client: client,
		url:    pageURL,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

// Key returns the current key, scraping the search page on a miss. An empty
// key is a valid result when the page carries none.
func (p *PassportSource) Key(ctx context.Context) (string, error) {
	p.mu.Lock()
	if p.memo != nil {
		key := *p.memo
		p.mu.Unlock()
		return key, nil
	}
	p.mu.Unlock()

	if p.cache != nil {
		key, err := p.cache.Get(ctx, passportKey)
		switch {
		case err == nil:
			metrics.CacheOperations.WithLabelValues("passport", "hit").Inc()
			p.remember(key)
			return key, nil
		case database.IsMiss(err):
			metrics.CacheOperations.WithLabelValues("passport", "miss").Inc()
		default:
			metrics.CacheOperations.WithLabelValues("passport", "error").Inc()
			p.logger.Warn("passport cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return p.Refresh(ctx)
}

// Refresh scrapes a new key and stores it.
func (p *PassportSource) Refresh(ctx context.Context) (string, error) {
	status, body, err := p.client.Get(ctx, p.url, searchPageHeaders)
	if err != nil {
		return "", fmt.Errorf("fetch search page: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("search page returned status %d", status)
	}

	key := ExtractPassportKey(string(body))
	if key == "" {
		p.logger.Warn("passport key not found on search page", nil)
	}

	p.remember(key)
	if p.cache != nil {
		if err := p.cache.Set(ctx, passportKey, key, p.ttl); err != nil {
			metrics.CacheOperations.WithLabelValues("passport", "error").Inc()
			p.logger.Warn("passport cache write failed", map[string]interface{}{"error": err.Error()})
		} else {
			metrics.CacheOperations.WithLabelValues("passport", "store").Inc()
		}
	}
	return key, nil
}

// Invalidate forgets the current key everywhere.
func (p *PassportSource) Invalidate(ctx context.Context) {
	p.mu.Lock()
	p.memo = nil
	p.mu.Unlock()

	if p.cache != nil {
		if err := p.cache.Del(ctx, passportKey); err != nil {
			p.logger.Warn("passport cache delete failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (p *PassportSource) remember(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.memo = &key
}

// ExtractPassportKey finds the speller key in a search results page.
func ExtractPassportKey(page string) string {
	if m := passportPrimary.FindStringSubmatch(page); m != nil {
		if key, err := url.PathUnescape(m[1]); err == nil {
			return key
		}
		return m[1]
	}
	for _, re := range passportAlternatives {
		if m := re.FindStringSubmatch(page); m != nil {
			return m[1]
		}
	}
	return ""
}
