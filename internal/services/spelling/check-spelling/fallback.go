package checkspelling

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type rule struct {
	pattern     string
	suggestions []string
	errorType   string
	// skipIf suppresses the rule when the text contains it.
	skipIf string
}

var localRules = []rule{
	{pattern: "네이보", suggestions: []string{"네이버"}, errorType: "표준어"},
	{pattern: "되요", suggestions: []string{"돼요", "되어요"}, errorType: "맞춤법"},
	{pattern: "안되", suggestions: []string{"안 돼", "안 되어"}, errorType: "띄어쓰기"},
	{pattern: "되서", suggestions: []string{"돼서", "되어서"}, errorType: "맞춤법"},
	{pattern: "안돼", suggestions: []string{"안 돼", "안 되어"}, errorType: "띄어쓰기", skipIf: "안 돼"},
}

// LocalCheck applies the built-in rules. Matches are non-overlapping per rule,
// deduplicated on span keeping the first and sorted by start.
func LocalCheck(text string) []SpellError {
	errs := make([]SpellError, 0)
	if strings.TrimSpace(text) == "" {
		return errs
	}

	for _, r := range localRules {
		if r.skipIf != "" && strings.Contains(text, r.skipIf) {
			continue
		}
		width := utf8.RuneCountInString(r.pattern)
		for _, start := range runeOccurrences(text, r.pattern) {
			errs = append(errs, SpellError{
				Start:       start,
				End:         start + width,
				Original:    r.pattern,
				Suggestions: append([]string{}, r.suggestions...),
				ErrorType:   r.errorType,
			})
		}
	}

	seen := make(map[[2]int]bool, len(errs))
	unique := errs[:0]
	for _, e := range errs {
		key := [2]int{e.Start, e.End}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, e)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Start < unique[j].Start
	})
	return unique
}

// runeOccurrences returns the rune offsets of every non-overlapping match of pattern.
func runeOccurrences(text, pattern string) []int {
	var out []int
	byteOff, runeOff := 0, 0
	for {
		i := strings.Index(text[byteOff:], pattern)
		if i < 0 {
			return out
		}
		runeOff += utf8.RuneCountInString(text[byteOff : byteOff+i])
		out = append(out, runeOff)
		runeOff += utf8.RuneCountInString(pattern)
		byteOff += i + len(pattern)
	}
}
