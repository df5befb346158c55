// internal/services/design/aggregate-checklist/models.go
package aggregatechecklist

// Answer is the relevance answer for a checklist item.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

type Input struct {
	Notes   map[string]string `json:"notes"`
	Answers map[string]Answer `json:"answers"`
	Checked []string          `json:"checked"`
}

type Output struct {
	Markdown     string         `json:"markdown"`
	Included     []IncludedItem `json:"included"`
	CheckedCount int            `json:"checkedCount"`
	TotalCount   int            `json:"totalCount"`
	Complete     bool           `json:"complete"`
}

type IncludedItem struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Lines []string `json:"lines"`
}
