package aggregatechecklist

import (
	"context"
	"regexp"
	"strings"

	"modalcopy/internal/catalog"
	"modalcopy/internal/common/logger"
)

const (
	OperationID = "aggregate-checklist"
)

// listMarker matches lines that already carry numbering or a bullet.
var listMarker = regexp.MustCompile(`^(\d+[.)]|[①-⑳]|[-*•·])`)

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

	checked := make(map[string]bool, len(input.Checked))
	for _, id := range input.Checked {
		checked[id] = true
	}

	out := &Output{Included: []IncludedItem{}}
	sections := make([]string, 0)

	for _, item := range h.catalog.Checklist() {
		answer := input.Answers[item.ID]

		if item.RequiresQuestion {
			if answer == AnswerYes {
				out.TotalCount++
			}
		} else {
			out.TotalCount++
		}
		if answer == AnswerYes && checked[item.ID] {
			out.CheckedCount++
		}

		if !Relevant(item, answer) {
			continue
		}
		note := input.Notes[item.ID]
		if strings.TrimSpace(note) == "" {
			continue
		}

		lines := FormatLines(note)
		out.Included = append(out.Included, IncludedItem{ID: item.ID, Label: item.Label, Lines: lines})
		sections = append(sections, "### "+item.Label+"\n"+strings.Join(lines, "\n"))
	}

	out.Markdown = strings.Join(sections, "\n\n")
	out.Complete = out.TotalCount > 0 && out.CheckedCount == out.TotalCount

	h.logger.Debug("checklist aggregated", map[string]interface{}{
		"included":     len(out.Included),
		"checkedCount": out.CheckedCount,
		"totalCount":   out.TotalCount,
	})

	return out, nil
}

// Relevant reports whether item belongs in the document given its answer.
// Question items need an explicit yes; the rest are in unless answered no.
func Relevant(item catalog.ChecklistItem, answer Answer) bool {
	if item.RequiresQuestion {
		return answer == AnswerYes
	}
	return answer != AnswerNo
}

// FormatLines drops blank lines and bullets any line not already numbered,
// bulleted or indented.
func FormatLines(note string) []string {
	raw := strings.Split(strings.ReplaceAll(note, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") || listMarker.MatchString(line) {
			lines = append(lines, line)
			continue
		}
		lines = append(lines, "- "+line)
	}
	return lines
}
