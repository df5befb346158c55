// internal/services/spelling/check-spelling/models.go
package checkspelling

// Result sources.
const (
	SourceService  = "service"
	SourceFallback = "fallback"
	SourceSkipped  = "skipped"
)

type Input struct {
	Text string `json:"text"`
}

type Output struct {
	Errors  []SpellError `json:"errors"`
	Checked string       `json:"checked"`
	Source  string       `json:"source"`
}

// SpellError marks a rune span [Start, End) of the submitted text.
type SpellError struct {
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Original    string   `json:"original"`
	Suggestions []string `json:"suggestions"`
	ErrorType   string   `json:"errorType"`
}

// Segment is a piece of the checked text, either plain or highlighted.
type Segment struct {
	Text       string      `json:"text"`
	IsError    bool        `json:"isError"`
	ErrorIndex int         `json:"errorIndex"`
	Error      *SpellError `json:"error,omitempty"`
}

type serviceRequest struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

type serviceResponse struct {
	Success    bool         `json:"success"`
	Errors     []SpellError `json:"errors"`
	Checked    string       `json:"checked"`
	ErrorCount int          `json:"errorCount"`
	Error      string       `json:"error,omitempty"`
}
