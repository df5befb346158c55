// internal/services/copywriting/generate-copy/models.go
package generatecopy

type Input struct {
	Category   string `json:"category"`
	Situation  string `json:"situation"`
	CustomText string `json:"customText"`
}

type Output struct {
	Category          string          `json:"category"`
	SituationKey      string          `json:"situationKey"`
	CategoryFallback  bool            `json:"categoryFallback"`
	SituationFallback bool            `json:"situationFallback"`
	Copies            []GeneratedCopy `json:"copies"`
}

type GeneratedCopy struct {
	Tone          string `json:"tone"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	ButtonText    string `json:"buttonText"`
	ClipboardText string `json:"clipboardText"`
}
