package checkspelling

import (
	"errors"
	"strings"
	"testing"

	apperrors "modalcopy/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ==========================
// Align
// ==========================

func TestAlign_FoundSuggestion(t *testing.T) {
	text := "회원가입이 안되요"
	checked := "회원가입이 안 돼요"
	errs := []SpellError{{Start: 6, End: 9, Original: "안되요", Suggestions: []string{"안 돼요"}, ErrorType: "띄어쓰기"}}

	segs := Align(text, checked, errs)

	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Text: "회원가입이 ", ErrorIndex: -1}, segs[0])
	assert.Equal(t, "안 돼요", segs[1].Text)
	assert.True(t, segs[1].IsError)
	assert.Equal(t, 0, segs[1].ErrorIndex)
	require.NotNil(t, segs[1].Error)
	assert.Equal(t, "안되요", segs[1].Error.Original)
}

func TestAlign_EstimatesMissingSuggestion(t *testing.T) {
	segs := Align("abcd", "abcdef", []SpellError{{Start: 2, End: 3, Suggestions: []string{"zz"}}})

	require.Len(t, segs, 3)
	assert.Equal(t, "abc", segs[0].Text)
	assert.Equal(t, "de", segs[1].Text)
	assert.True(t, segs[1].IsError)
	assert.Equal(t, "f", segs[2].Text)
}

func TestAlign_SkipsErrorsWithoutSuggestions(t *testing.T) {
	segs := Align("안되요", "안되요", []SpellError{{Start: 0, End: 3}})

	require.Len(t, segs, 1)
	assert.False(t, segs[0].IsError)
	assert.Equal(t, "안되요", segs[0].Text)
}

func TestAlign_SortsErrorsByStart(t *testing.T) {
	text := "되서 네이보"
	checked := "돼서 네이버"
	errs := []SpellError{
		{Start: 3, End: 6, Original: "네이보", Suggestions: []string{"네이버"}},
		{Start: 0, End: 2, Original: "되서", Suggestions: []string{"돼서"}},
	}

	segs := Align(text, checked, errs)

	require.Len(t, segs, 3)
	assert.Equal(t, "돼서", segs[0].Text)
	assert.Equal(t, 0, segs[0].ErrorIndex)
	assert.Equal(t, "되서", segs[0].Error.Original)
	assert.Equal(t, " ", segs[1].Text)
	assert.Equal(t, "네이버", segs[2].Text)
	assert.Equal(t, 1, segs[2].ErrorIndex)
	// input order is untouched
	assert.Equal(t, "네이보", errs[0].Original)
}

func TestAlign_SegmentsTileChecked(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		checked string
		errs    []SpellError
	}{
		{"empty checked", "abc", "", []SpellError{{Start: 1, End: 2, Suggestions: []string{"x"}}}},
		{"empty text", "", "abc", []SpellError{{Start: 0, End: 0, Suggestions: []string{"zz"}}}},
		{"estimate past end", "ab", "abc", []SpellError{{Start: 5, End: 6, Suggestions: []string{"zz"}}}},
		{"estimate behind previous match", "aaaa", "xyxy", []SpellError{
			{Start: 0, End: 1, Suggestions: []string{"xyx"}},
			{Start: 1, End: 2, Suggestions: []string{"q"}},
		}},
		{"suggestion longer than rest", "되요", "돼", []SpellError{{Start: 0, End: 2, Suggestions: []string{"돼요요"}}}},
		{"no errors", "안녕", "안녕", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Align(tt.text, tt.checked, tt.errs)
			assert.Equal(t, tt.checked, joinSegments(segs))
		})
	}
}

// ==========================
// ApplySuggestion
// ==========================

func TestApplySuggestion(t *testing.T) {
	e := SpellError{Start: 6, End: 9, Original: "안되요", Suggestions: []string{"안 돼요"}}

	got, err := ApplySuggestion("회원가입이 안되요", e, "안 돼요")
	require.NoError(t, err)
	assert.Equal(t, "회원가입이 안 돼요", got)
}

func TestApplySuggestion_EmptySpanInserts(t *testing.T) {
	got, err := ApplySuggestion("ab", SpellError{Start: 1, End: 1}, "-")
	require.NoError(t, err)
	assert.Equal(t, "a-b", got)
}

func TestApplySuggestion_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		e    SpellError
	}{
		{"negative start", SpellError{Start: -1, End: 1}},
		{"end before start", SpellError{Start: 2, End: 1}},
		{"end past text", SpellError{Start: 0, End: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplySuggestion("안되요", tt.e, "x")
			require.Error(t, err)
			var stdErr *apperrors.StandardError
			require.True(t, errors.As(err, &stdErr))
			assert.Equal(t, apperrors.ErrCodeSuggestionOutOfRange, stdErr.Code)
		})
	}
}

func TestApplySuggestion_AfterLocalCheck(t *testing.T) {
	text := "그건 안돼"
	errs := LocalCheck(text)
	require.Len(t, errs, 1)

	got, err := ApplySuggestion(text, errs[0], errs[0].Suggestions[0])
	require.NoError(t, err)
	assert.Equal(t, "그건 안 돼", got)
	assert.Empty(t, LocalCheck(got))
}
