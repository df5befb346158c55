// internal/services/spelling/proxy-speller/models.go
package proxyspeller

type Input struct {
	Text   string `json:"text"`
	Engine string `json:"engine,omitempty"`
}

type Output struct {
	Success    bool         `json:"success"`
	Original   string       `json:"original"`
	Checked    string       `json:"checked"`
	Errors     []SpellError `json:"errors"`
	ErrorCount int          `json:"errorCount"`
}

// SpellError marks a rune span [Start, End) of the original text.
type SpellError struct {
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Original    string   `json:"original"`
	Suggestions []string `json:"suggestions"`
	ErrorType   string   `json:"errorType"`
}

type upstreamEnvelope struct {
	Message *upstreamMessage `json:"message"`
}

type upstreamMessage struct {
	Error  *string         `json:"error"`
	Result *upstreamResult `json:"result"`
}

type upstreamResult struct {
	HTML        string `json:"html"`
	ErrataCount int    `json:"errata_count"`
}
