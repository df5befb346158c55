package proxyspeller

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "modalcopy/internal/common/errors"
	commonhttp "modalcopy/internal/common/http"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/metrics"
)

const (
	OperationID = "proxy-speller"
)

type Handler struct {
	config   *Config
	cache    Cache
	passport *PassportSource
	speller  *spellerClient
	logger   logger.Logger
}

// NewHandler builds the proxy. cache may be nil, which disables result and key sharing.
func NewHandler(config *Config, cache Cache, log logger.Logger) *Handler {
	scoped := log.With(map[string]interface{}{
		"operation": OperationID,
	})
	client := commonhttp.NewClient(config.Timeout)

	return &Handler{
		config:   config,
		cache:    cache,
		passport: NewPassportSource(client, config.PassportURL, cache, config.PassportTTL, scoped),
		speller:  &spellerClient{client: client, url: config.UpstreamURL, now: time.Now},
		logger:   scoped,
	}
}

// Validate enforces a non-blank text of at most MaxLength runes.
func (h *Handler) Validate(input *Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return apperrors.NewTextRequiredError()
	}
	if n := utf8.RuneCountInString(input.Text); n > h.config.MaxLength {
		return apperrors.NewTextTooLongError(h.config.MaxLength, n)
	}
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := h.Validate(input); err != nil {
		return nil, err
	}

	if out, ok := h.cached(ctx, input.Text); ok {
		return out, nil
	}

	start := time.Now()
	result, err := h.query(ctx, input.Text)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.SpellerUpstreamDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		h.logger.Error("speller request failed", map[string]interface{}{
			"error":  err.Error(),
			"length": utf8.RuneCountInString(input.Text),
		})
		if isTimeout(err) {
			return nil, apperrors.NewSpellerTimeoutError()
		}
		return nil, apperrors.NewSpellerUpstreamFailedError(err)
	}

	checked := PlainText(result.HTML)
	out := &Output{
		Success:    true,
		Original:   input.Text,
		Checked:    checked,
		Errors:     ExtractErrors(input.Text, checked, result.HTML),
		ErrorCount: result.ErrataCount,
	}

	h.logger.Info("spelling checked", map[string]interface{}{
		"errataCount": result.ErrataCount,
		"extracted":   len(out.Errors),
	})

	h.store(ctx, input.Text, out)
	return out, nil
}

// query calls the speller, refreshing the passport key once when the upstream rejects it.
func (h *Handler) query(ctx context.Context, text string) (*upstreamResult, error) {
	key, err := h.passport.Key(ctx)
	if err != nil {
		h.logger.Warn("passport key unavailable, continuing without one", map[string]interface{}{
			"error": err.Error(),
		})
		key = ""
	}

	result, err := h.speller.check(ctx, key, text)
	if err == nil || !isInvalidKey(err) {
		return result, err
	}

	h.logger.Info("passport key rejected, refreshing", nil)
	h.passport.Invalidate(ctx)

	fresh, refreshErr := h.passport.Refresh(ctx)
	if refreshErr != nil {
		return nil, errors.Join(err, apperrors.NewPassportKeyFailedError(refreshErr))
	}
	return h.speller.check(ctx, fresh, text)
}

func (h *Handler) cached(ctx context.Context, text string) (*Output, bool) {
	if h.cache == nil {
		return nil, false
	}

	var out Output
	hit, err := h.cache.GetJSON(ctx, resultKey(text), &out)
	switch {
	case err != nil:
		metrics.CacheOperations.WithLabelValues("result", "error").Inc()
		h.logger.Warn("result cache read failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	case !hit:
		metrics.CacheOperations.WithLabelValues("result", "miss").Inc()
		return nil, false
	}

	metrics.CacheOperations.WithLabelValues("result", "hit").Inc()
	return &out, true
}

func (h *Handler) store(ctx context.Context, text string, out *Output) {
	if h.cache == nil || h.config.CacheTTL <= 0 {
		return
	}
	if err := h.cache.SetJSON(ctx, resultKey(text), out, h.config.CacheTTL); err != nil {
		metrics.CacheOperations.WithLabelValues("result", "error").Inc()
		h.logger.Warn("result cache write failed", map[string]interface{}{"error": err.Error()})
		return
	}
	metrics.CacheOperations.WithLabelValues("result", "store").Inc()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
