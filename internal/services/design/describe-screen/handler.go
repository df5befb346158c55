package describescreen

import (
	"context"
	"fmt"
	"strings"

	"modalcopy/internal/catalog"
	"modalcopy/internal/common/logger"
)

const (
	OperationID = "describe-screen"
)

type Handler struct {
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		catalog: cat,
		logger: log.With(map[string]interface{}{
			"operation": OperationID,
		}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	screen, found := h.catalog.Screen(input.ScreenType)

	definition := screen.Definition
	if screen.Name == catalog.OtherScreen && input.CustomDefinition != "" {
		definition = input.CustomDefinition
	}

	out := &Output{
		ScreenType:  screen.Name,
		Fallback:    !found,
		Definition:  definition,
		Constraints: append([]string{}, screen.Constraints...),
		Data:        append([]string{}, screen.Data...),
		States:      append([]string{}, screen.States...),
		Exceptions:  append([]string{}, screen.Exceptions...),
	}
	out.Markdown = Markdown(out)

	if !found {
		h.logger.Debug("unknown screen type resolved to fallback", map[string]interface{}{
			"requested": input.ScreenType,
		})
	}

	return out, nil
}

// Markdown renders the five sections, numbering every list entry.
func Markdown(out *Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 정의\n%s\n\n", out.Definition)

	section := func(title string, items []string) {
		fmt.Fprintf(&b, "## %s\n", title)
		for i, item := range items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
	}

	section("제약사항", out.Constraints)
	b.WriteString("\n")
	section("데이터", out.Data)
	b.WriteString("\n")
	section("상태", out.States)
	b.WriteString("\n")
	section("예외처리", out.Exceptions)

	return b.String()
}
