// Package templates holds the modal copy templates and resolves them by category and situation.
package templates

import (
	"strings"
	"unicode"
)

// Category is a modal category label.
type Category string

const (
	CategorySuccess     Category = "성공"
	CategoryError       Category = "오류"
	CategoryConfirm     Category = "확인"
	CategoryWarning     Category = "경고"
	CategoryInformation Category = "정보"
	CategoryOther       Category = "기타"
)

// Categories lists every category in display order. CategoryOther is the fallback.
var Categories = []Category{
	CategorySuccess,
	CategoryError,
	CategoryConfirm,
	CategoryWarning,
	CategoryInformation,
	CategoryOther,
}

// Tone is a copy variant.
type Tone string

const (
	ToneFriendly Tone = "친근한 (토스 스타일)"
	ToneFormal   Tone = "공식적"
	ToneCasual   Tone = "캐주얼"
	ToneWarm     Tone = "따뜻한"
	ToneDirect   Tone = "직설적"
)

// Tones lists every tone in generation order.
var Tones = []Tone{
	ToneFriendly,
	ToneFormal,
	ToneCasual,
	ToneWarm,
	ToneDirect,
}

// DefaultKey is the situation key every category must define.
const DefaultKey = "default"

// Template is the copy for one (category, situation, tone).
type Template struct {
	Title      string `yaml:"title" json:"title"`
	Body       string `yaml:"body" json:"body"`
	ButtonText string `yaml:"buttonText,omitempty" json:"buttonText,omitempty"`
}

// ToneSet maps each tone to its template.
type ToneSet map[Tone]Template

// CategoryInfo is what a client needs to render the category picker.
type CategoryInfo struct {
	Category   Category `json:"category"`
	Example    string   `json:"example"`
	Situations []string `json:"situations"`
	Source     string   `json:"-"`
}

// Resolution is the result of resolving a category and situation key.
type Resolution struct {
	Category          Category
	Key               string
	Templates         ToneSet
	CategoryFallback  bool
	SituationFallback bool
}

// Fallback names the fallback taken, for metrics and logs.
func (r Resolution) Fallback() string {
	switch {
	case r.CategoryFallback:
		return "category"
	case r.SituationFallback:
		return "situation"
	default:
		return "none"
	}
}

// NormalizeSituation removes every whitespace rune from raw. Whitespace here is
// the ECMAScript set: Unicode Zs plus tab, line breaks, U+2028/U+2029 and the
// byte order mark. U+0085 is kept.
func NormalizeSituation(raw string) string {
	return strings.Map(func(r rune) rune {
		if isSituationSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func isSituationSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func knownCategory(c Category) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

func knownTone(t Tone) bool {
	for _, k := range Tones {
		if k == t {
			return true
		}
	}
	return false
}
