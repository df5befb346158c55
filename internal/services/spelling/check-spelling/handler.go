package checkspelling

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	commonhttp "modalcopy/internal/common/http"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/metrics"
)

const (
	OperationID = "check-spelling"
)

// Fallback reasons.
const (
	reasonTransport    = "transport"
	reasonStatus       = "status"
	reasonDecode       = "decode"
	reasonUnsuccessful = "unsuccessful"
)

type Handler struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: commonhttp.NewClient(config.Timeout),
		logger: log.With(map[string]interface{}{
			"operation": OperationID,
		}),
	}
}

// Execute asks the spell-check service and falls back to the local rules on
// any failure. It never returns an error to the caller for service problems.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Text) == "" {
		metrics.SpellcheckRequests.WithLabelValues(SourceSkipped).Inc()
		return &Output{Errors: []SpellError{}, Checked: input.Text, Source: SourceSkipped}, nil
	}

	out, reason, err := h.callService(ctx, input.Text)
	if err == nil {
		metrics.SpellcheckRequests.WithLabelValues(SourceService).Inc()
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	h.logger.Warn("spell-check service unavailable, using local rules", map[string]interface{}{
		"reason": reason,
		"error":  err.Error(),
	})
	metrics.SpellcheckFallbacks.WithLabelValues(reason).Inc()
	metrics.SpellcheckRequests.WithLabelValues(SourceFallback).Inc()

	return &Output{
		Errors:  LocalCheck(input.Text),
		Checked: input.Text,
		Source:  SourceFallback,
	}, nil
}

func (h *Handler) callService(ctx context.Context, text string) (*Output, string, error) {
	url := strings.TrimRight(h.config.BaseURL, "/") + "/api/spell-check"

	status, body, err := h.client.PostJSON(ctx, url, serviceRequest{Text: text, Engine: h.config.Engine})
	if err != nil {
		return nil, reasonTransport, err
	}
	if status != http.StatusOK {
		return nil, reasonStatus, fmt.Errorf("spell-check service returned status %d", status)
	}

	var resp serviceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, reasonDecode, fmt.Errorf("decode response: %w", err)
	}
	if !resp.Success {
		return nil, reasonUnsuccessful, fmt.Errorf("spell-check service failed: %s", resp.Error)
	}

	errs := resp.Errors
	if errs == nil {
		errs = []SpellError{}
	}
	checked := resp.Checked
	if checked == "" {
		checked = text
	}

	return &Output{Errors: errs, Checked: checked, Source: SourceService}, "", nil
}
