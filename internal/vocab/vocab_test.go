package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := Default()
	require.NotNil(t, v)
	assert.Positive(t, v.Version)
	assert.NotEmpty(t, v.Fillers)
	assert.NotEmpty(t, v.Stopwords)

	for _, f := range v.Fillers {
		assert.NotNil(t, f.Pattern(), "filler %q has no compiled pattern", f.Phrase)
		assert.False(t, v.IsStopword(f.Phrase), "filler %q is also a stopword", f.Phrase)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing version", "fillers:\n  - phrase: very\n    intensity: 1\n"},
		{"empty phrase", "version: 1\nfillers:\n  - phrase: ' '\n    intensity: 1\n"},
		{"intensity too high", "version: 1\nfillers:\n  - phrase: very\n    intensity: 4\n"},
		{"intensity zero", "version: 1\nfillers:\n  - phrase: very\n"},
		{"duplicate", "version: 1\nfillers:\n  - phrase: very\n    intensity: 1\n  - phrase: VERY\n    intensity: 2\n"},
		{"not yaml", "version: [1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_NormalizesPhrases(t *testing.T) {
	v, err := Parse([]byte("version: 1\nfillers:\n  - phrase: '  Could   You '\n    intensity: 1\nstopwords: [The]\n"))
	require.NoError(t, err)
	assert.Equal(t, "could you", v.Fillers[0].Phrase)
	assert.True(t, v.IsStopword("the"))
	assert.False(t, v.IsFillerWord("could you"), "multi-word phrases are not filler words")
}

func TestFillersIn(t *testing.T) {
	v := Default()

	found := v.FillersIn("Could you please write a VERY detailed summary")
	assert.True(t, found["could you"])
	assert.True(t, found["please"])
	assert.True(t, found["very"])
	assert.True(t, found["detailed"])
	assert.False(t, found["really"])

	assert.Empty(t, v.FillersIn("adjust the justification"), "fillers must match whole words")
}

func TestKeywords(t *testing.T) {
	v := Default()

	tests := []struct {
		text string
		want []string
	}{
		{"Please write a very detailed explanation about machine learning", []string{"write", "explanation", "machine", "learning"}},
		{"Write about AI", []string{"write", "ai"}},
		{"I want you to list the the items", []string{"list", "items"}},
		{"the and of", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Keywords(tt.text))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"Don't", "use", "in-depth", "docs", "42"}, Tokens("Don't use in-depth docs, 42!"))
	assert.Equal(t, []string{"hello", "world"}, Words("  HELLO   World "))
	assert.Equal(t, 0, TokenCount("  ...  "))
	assert.Equal(t, 3, TokenCount("one two\nthree"))
}

func TestIsAcronym(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"AI", true},
		{"ML", true},
		{"LLMs", true},
		{"A", false},
		{"Ai", false},
		{"ai", false},
		{"TOOLONGX", false},
	}

	for _, tt := range tests {
		if got := IsAcronym(tt.tok); got != tt.want {
			t.Errorf("IsAcronym(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}

	assert.Equal(t, "llm", Initials("LLMs"))
}

func TestAbbreviations(t *testing.T) {
	v := Default()

	tests := []struct {
		name string
		a, b string
		want map[string]bool
	}{
		{"acronym in second", "Write about artificial intelligence", "Write about AI",
			map[string]bool{"ai": true, "artificial": true, "intelligence": true}},
		{"acronym in first", "Explain LLMs", "Explain large language models",
			map[string]bool{"llms": true, "large": true, "language": true, "models": true}},
		{"stopwords break a run", "Write about AI", "write about an idea",
			map[string]bool{}},
		{"no acronym", "Write a story", "Write a poem", map[string]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Abbreviations(tt.a, tt.b))
		})
	}
}

func TestExpansionIndex(t *testing.T) {
	v := Default()
	words := Words("write about the machine learning model")
	assert.Equal(t, 3, v.ExpansionIndex(words, "ml"))
	assert.Equal(t, -1, v.ExpansionIndex(words, "ab"))
	assert.Equal(t, -1, v.ExpansionIndex(words[:1], "ml"))
}
