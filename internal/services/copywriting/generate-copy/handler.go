package generatecopy

import (
	"context"
	"errors"
	"fmt"

	apperrors "modalcopy/internal/common/errors"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/metrics"
	"modalcopy/internal/templates"
)

const (
	OperationID = "generate-copy"
)

var (
	ErrGenerationCancelled = errors.New("GENERATION_CANCELLED")
)

type Handler struct {
	config *Config
	store  *templates.Store
	logger logger.Logger
}

func NewHandler(config *Config, store *templates.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.With(map[string]interface{}{
			"operation": OperationID,
		}),
	}
}

// Validate mirrors the form checks a client performs before asking for copy.
// The free-text modal type of the 기타 category travels in Situation.
func Validate(input *Input) error {
	if input.Situation != "" {
		return nil
	}
	if templates.Category(input.Category) == templates.CategoryOther {
		return apperrors.NewCustomTypeRequiredError()
	}
	return apperrors.NewSituationRequiredError()
}

// Execute generates one copy per tone, in tone order. It never fails on
// unknown categories or situations; those fall back to default templates.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationCancelled, err)
	}

	key := templates.NormalizeSituation(input.Situation)
	res := h.store.Resolve(templates.Category(input.Category), key)

	copies := make([]GeneratedCopy, 0, len(templates.Tones))
	for _, tone := range templates.Tones {
		tmpl := res.Templates[tone]

		body := tmpl.Body
		if input.CustomText != "" {
			body = body + " " + input.CustomText
		}
		buttonText := tmpl.ButtonText
		if buttonText == "" {
			buttonText = h.config.DefaultButtonText
		}

		copies = append(copies, GeneratedCopy{
			Tone:          string(tone),
			Title:         tmpl.Title,
			Body:          body,
			ButtonText:    buttonText,
			ClipboardText: ClipboardText(tmpl.Title, body, buttonText),
		})
	}

	metrics.CopyGenerations.WithLabelValues(string(res.Category), res.Fallback()).Inc()

	h.logger.Info("copy generated", map[string]interface{}{
		"category":     res.Category,
		"situationKey": res.Key,
		"fallback":     res.Fallback(),
		"count":        len(copies),
	})

	return &Output{
		Category:          string(res.Category),
		SituationKey:      res.Key,
		CategoryFallback:  res.CategoryFallback,
		SituationFallback: res.SituationFallback,
		Copies:            copies,
	}, nil
}

// ClipboardText is the plain-text form a client copies to the clipboard.
func ClipboardText(title, body, buttonText string) string {
	return title + "\n\n" + body + "\n\n[" + buttonText + "]"
}
