package proxyspeller

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	markPattern = regexp.MustCompile(`<em class='(red_text|green_text|violet_text|blue_text)'>(.*?)</em>`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	wordPattern = regexp.MustCompile(`\S+`)
)

var errorTypes = map[string]string{
	"red_text":    "맞춤법",
	"green_text":  "띄어쓰기",
	"violet_text": "표준어",
	"blue_text":   "통계적교정",
}

const spacingType = "띄어쓰기"

const (
	// maxJoinedWords bounds how many following words a spacing correction may absorb.
	maxJoinedWords  = 5
	nearStartWindow = 10
	nearestWindow   = 15
)

var (
	correctionSpacing = strings.NewReplacer(" ", "", "?", "", ".", "", "!", "")
	originalSpacing   = strings.NewReplacer(" ", "", "\n", "", "\r", "", "?", "", ".", "", "!", "")
)

// PlainText turns the upstream result html into the corrected text.
func PlainText(markup string) string {
	markup = strings.ReplaceAll(markup, "<br>", "\n")
	return html.UnescapeString(tagPattern.ReplaceAllString(markup, ""))
}

type word struct {
	text       string
	start, end int
}

func splitWords(runes []rune) []word {
	s := string(runes)
	locs := wordPattern.FindAllStringIndex(s, -1)
	words := make([]word, 0, len(locs))

	runeOff, byteOff := 0, 0
	for _, loc := range locs {
		runeOff += utf8.RuneCountInString(s[byteOff:loc[0]])
		start := runeOff
		runeOff += utf8.RuneCountInString(s[loc[0]:loc[1]])
		byteOff = loc[1]
		words = append(words, word{text: s[loc[0]:loc[1]], start: start, end: runeOff})
	}
	return words
}

// ExtractErrors maps every marked correction in markup back to a span of original.
// Corrections whose original word cannot be located, or equals the correction, are dropped.
func ExtractErrors(original, checked, markup string) []SpellError {
	orig := []rune(original)
	chk := []rune(checked)
	words := splitWords(orig)

	errs := make([]SpellError, 0)
	searchFrom := 0

	for _, m := range markPattern.FindAllStringSubmatch(markup, -1) {
		errorType, ok := errorTypes[m[1]]
		if !ok {
			errorType = "기타"
		}
		corrected := strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(m[2], "")))
		correctedRunes := []rune(corrected)

		pos := indexRunes(chk, correctedRunes, searchFrom)
		if pos < 0 {
			pos = indexRunes(chk, correctedRunes, 0)
		}
		if pos < 0 {
			continue
		}
		searchFrom = pos + len(correctedRunes)

		estimated := estimateOriginalOffset(orig, chk, pos)

		var found *word
		if errorType == spacingType {
			found = joinSpacedWords(orig, words, estimated, corrected)
		}
		if found == nil {
			found = nearestWord(words, estimated)
		}

		if found == nil || found.text == corrected {
			continue
		}
		errs = append(errs, SpellError{
			Start:       found.start,
			End:         found.end,
			Original:    found.text,
			Suggestions: []string{corrected},
			ErrorType:   errorType,
		})
	}
	return errs
}

// estimateOriginalOffset walks both texts up to pos in checked, skipping
// whitespace present on only one side.
func estimateOriginalOffset(orig, chk []rune, pos int) int {
	oi, ci := 0, 0
	for ci < pos && oi < len(orig) && ci < len(chk) {
		c, o := chk[ci], orig[oi]
		switch {
		case c == o:
			oi++
			ci++
		case unicode.IsSpace(c) && !unicode.IsSpace(o):
			ci++
		case unicode.IsSpace(o) && !unicode.IsSpace(c):
			oi++
		default:
			oi++
			ci++
		}
	}
	return oi
}

func joinSpacedWords(orig []rune, words []word, estimated int, corrected string) *word {
	target := correctionSpacing.Replace(corrected)
	targetLen := utf8.RuneCountInString(target)

	first := 0
	for i, w := range words {
		if (w.start <= estimated && estimated < w.end) || abs(w.start-estimated) < nearStartWindow {
			first = i
			break
		}
	}

	for i := first; i < len(words); i++ {
		last := i + maxJoinedWords + 1
		if last > len(words) {
			last = len(words)
		}
		for j := i + 1; j < last; j++ {
			actual := string(orig[words[i].start:words[j].end])
			squeezed := originalSpacing.Replace(actual)
			if squeezed == target {
				return &word{text: strings.TrimSpace(actual), start: words[i].start, end: words[j].end}
			}
			if utf8.RuneCountInString(squeezed) > targetLen+2 {
				break
			}
		}
	}
	return nil
}

func nearestWord(words []word, estimated int) *word {
	best := -1
	bestDistance := 0
	for i, w := range words {
		d := abs(w.start - estimated)
		if best < 0 || d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 || bestDistance >= nearestWindow {
		return nil
	}
	w := words[best]
	return &w
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
