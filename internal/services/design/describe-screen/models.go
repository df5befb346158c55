// internal/services/design/describe-screen/models.go
package describescreen

type Input struct {
	ScreenType       string `json:"screenType"`
	CustomDefinition string `json:"customDefinition"`
}

type Output struct {
	ScreenType  string   `json:"screenType"`
	Fallback    bool     `json:"fallback"`
	Definition  string   `json:"definition"`
	Constraints []string `json:"constraints"`
	Data        []string `json:"data"`
	States      []string `json:"states"`
	Exceptions  []string `json:"exceptions"`
	Markdown    string   `json:"markdown"`
}
