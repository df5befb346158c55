package proxyspeller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"plain", "안녕하세요", "안녕하세요"},
		{"marks removed", "회원가입이 <em class='red_text'>안 돼요</em>", "회원가입이 안 돼요"},
		{"line breaks", "첫 줄<br>둘째 줄", "첫 줄\n둘째 줄"},
		{"entities", "a &amp; b &lt;c&gt; &quot;d&quot;", `a & b <c> "d"`},
		{"nested tags", "<span><em class='green_text'>할 수</em></span> 있다", "할 수 있다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.markup))
		})
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		original string
		markup   string
		want     []SpellError
	}{
		{
			name:     "spelling correction maps to nearest word",
			original: "회원가입이 안되요",
			markup:   "회원가입이 <em class='red_text'>안 돼요</em>",
			want: []SpellError{
				{Start: 6, End: 9, Original: "안되요", Suggestions: []string{"안 돼요"}, ErrorType: "맞춤법"},
			},
		},
		{
			name:     "spacing split of a single word",
			original: "할수 있다",
			markup:   "<em class='green_text'>할 수</em> 있다",
			want: []SpellError{
				{Start: 0, End: 2, Original: "할수", Suggestions: []string{"할 수"}, ErrorType: "띄어쓰기"},
			},
		},
		{
			name:     "spacing merge joins words",
			original: "맞 춤법 검사",
			markup:   "<em class='green_text'>맞춤법</em> 검사",
			want: []SpellError{
				{Start: 0, End: 4, Original: "맞 춤법", Suggestions: []string{"맞춤법"}, ErrorType: "띄어쓰기"},
			},
		},
		{
			name:     "offsets survive inserted spaces",
			original: "할수있어 되요",
			markup:   "<em class='green_text'>할 수 있어</em> <em class='red_text'>돼요</em>",
			want: []SpellError{
				{Start: 0, End: 4, Original: "할수있어", Suggestions: []string{"할 수 있어"}, ErrorType: "띄어쓰기"},
				{Start: 5, End: 7, Original: "되요", Suggestions: []string{"돼요"}, ErrorType: "맞춤법"},
			},
		},
		{
			name:     "line breaks",
			original: "첫 줄\n되요",
			markup:   "첫 줄<br><em class='red_text'>돼요</em>",
			want: []SpellError{
				{Start: 4, End: 6, Original: "되요", Suggestions: []string{"돼요"}, ErrorType: "맞춤법"},
			},
		},
		{
			name:     "standard and statistical types",
			original: "네이보 검색 어떻해",
			markup:   "<em class='violet_text'>네이버</em> 검색 <em class='blue_text'>어떡해</em>",
			want: []SpellError{
				{Start: 0, End: 3, Original: "네이보", Suggestions: []string{"네이버"}, ErrorType: "표준어"},
				{Start: 7, End: 10, Original: "어떻해", Suggestions: []string{"어떡해"}, ErrorType: "통계적교정"},
			},
		},
		{
			name:     "unchanged word is dropped",
			original: "그냥 있다",
			markup:   "그냥 <em class='blue_text'>있다</em>",
			want:     []SpellError{},
		},
		{
			name:     "no marks",
			original: "안녕하세요",
			markup:   "안녕하세요",
			want:     []SpellError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractErrors(tt.original, PlainText(tt.markup), tt.markup)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractErrors_SpansIndexOriginal(t *testing.T) {
	original := "😀 회원가입이 안되요"
	markup := "😀 회원가입이 <em class='red_text'>안 돼요</em>"

	errs := ExtractErrors(original, PlainText(markup), markup)

	runes := []rune(original)
	for _, e := range errs {
		assert.Equal(t, e.Original, string(runes[e.Start:e.End]))
	}
	assert.Len(t, errs, 1)
}

func TestSplitWords(t *testing.T) {
	got := splitWords([]rune("가나  다\n라마"))
	assert.Equal(t, []word{
		{text: "가나", start: 0, end: 2},
		{text: "다", start: 4, end: 5},
		{text: "라마", start: 6, end: 8},
	}, got)
}
