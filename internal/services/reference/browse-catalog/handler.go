package browsecatalog

import (
	"context"

	"modalcopy/internal/catalog"
	"modalcopy/internal/common/logger"
)

const (
	SymbolsOperationID = "browse-symbols"
	TipsOperationID    = "browse-tips"
	ToolsOperationID   = "browse-tools"
)

type Handler struct {
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		catalog: cat,
		logger: log.With(map[string]interface{}{
			"operation": "browse-catalog",
		}),
	}
}

// Symbols groups the palette by category in declared order. Categories
// without symbols are omitted; an unknown filter yields no groups.
func (h *Handler) Symbols(ctx context.Context, input *Input) (*SymbolsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &SymbolsOutput{
		Categories: h.catalog.SymbolCategories(),
		Groups:     make([]SymbolGroup, 0),
	}
	for _, category := range selected(out.Categories, input.Filter) {
		symbols := h.catalog.Symbols(category)
		if len(symbols) == 0 {
			continue
		}
		out.Groups = append(out.Groups, SymbolGroup{Category: category, Symbols: symbols})
		out.Count += len(symbols)
	}

	h.logger.Debug("symbols listed", map[string]interface{}{"filter": input.Filter, "count": out.Count})
	return out, nil
}

// Tips lists planning tips, optionally for one process.
func (h *Handler) Tips(ctx context.Context, input *Input) (*TipsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tips := h.catalog.Tips(input.Filter)
	h.logger.Debug("tips listed", map[string]interface{}{"filter": input.Filter, "count": len(tips)})

	return &TipsOutput{
		Processes: h.catalog.Processes(),
		Process:   input.Filter,
		Tips:      tips,
		Count:     len(tips),
	}, nil
}

// Tools groups the dashboard by category, favourites first within each group.
func (h *Handler) Tools(ctx context.Context, input *Input) (*ToolsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &ToolsOutput{
		Categories: h.catalog.ToolCategories(),
		Groups:     make([]ToolGroup, 0),
	}
	for _, category := range selected(out.Categories, input.Filter) {
		tools := h.catalog.Tools(category)
		if len(tools) == 0 {
			continue
		}
		out.Groups = append(out.Groups, ToolGroup{Category: category, Tools: tools})
		out.Count += len(tools)
	}

	h.logger.Debug("tools listed", map[string]interface{}{"filter": input.Filter, "count": out.Count})
	return out, nil
}

func selected(all []string, filter string) []string {
	if filter == "" {
		return all
	}
	for _, c := range all {
		if c == filter {
			return []string{c}
		}
	}
	return nil
}
