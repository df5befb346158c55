package checkspelling

import (
	"sort"

	apperrors "modalcopy/internal/common/errors"
)

// Align splits checked into plain and highlighted segments. Each error is
// located by its first suggestion, searching forward from the previous match;
// when the suggestion is not found its position is estimated proportionally
// from the error offset in text. Errors without suggestions are skipped.
//
// The mapping is best-effort. Segments always tile checked exactly, in order.
func Align(text, checked string, errs []SpellError) []Segment {
	checkedRunes := []rune(checked)
	textLen := len([]rune(text))
	n := len(checkedRunes)

	sorted := append([]SpellError{}, errs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	segments := make([]Segment, 0, 2*len(sorted)+1)
	last := 0

	for i := range sorted {
		e := sorted[i]
		if len(e.Suggestions) == 0 {
			continue
		}
		suggestion := []rune(e.Suggestions[0])

		start := indexRunes(checkedRunes, suggestion, last)
		if start < 0 {
			start = 0
			if textLen > 0 {
				start = e.Start * n / textLen
			}
		}
		start = clamp(start, last, n)
		end := clamp(start+len(suggestion), start, n)

		if start > last {
			segments = append(segments, Segment{Text: string(checkedRunes[last:start]), ErrorIndex: -1})
		}
		segments = append(segments, Segment{
			Text:       string(checkedRunes[start:end]),
			IsError:    true,
			ErrorIndex: i,
			Error:      &sorted[i],
		})
		last = end
	}

	if last < n {
		segments = append(segments, Segment{Text: string(checkedRunes[last:]), ErrorIndex: -1})
	}
	return segments
}

// ApplySuggestion replaces the rune span of e in text with suggestion.
func ApplySuggestion(text string, e SpellError, suggestion string) (string, error) {
	runes := []rune(text)
	if e.Start < 0 || e.End < e.Start || e.End > len(runes) {
		return "", apperrors.NewSuggestionOutOfRangeError(e.Start, e.End, len(runes))
	}
	return string(runes[:e.Start]) + suggestion + string(runes[e.End:]), nil
}

func indexRunes(hay, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
