// Package vocab holds the word lists shared by prompt rewriting and scoring.
//
// The filler list drives both the precise rewrite rules and the redundancy
// component of the scorer, so the two always agree on what counts as
// padding.
package vocab

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var vocabularyYAML []byte

// MaxIntensity is the highest rule intensity a filler may carry.
const MaxIntensity = 3

var defaultVocabulary = mustParse(vocabularyYAML)

// Filler is a hedging, politeness, or intensifier phrase that carries no
// essential content.
type Filler struct {
	// Phrase is the lowercase word or word sequence to match
	Phrase string `yaml:"phrase"`

	// Intensity is the precise-style level (1-3) at which the phrase is removed
	Intensity int `yaml:"intensity"`

	pattern *regexp.Regexp
}

// Pattern returns the case-insensitive, word-bounded matcher for the phrase
func (f Filler) Pattern() *regexp.Regexp {
	return f.pattern
}

// Vocabulary is the versioned stopword and filler table
type Vocabulary struct {
	Version   int      `yaml:"version"`
	Fillers   []Filler `yaml:"fillers"`
	Stopwords []string `yaml:"stopwords"`

	stopwords   map[string]bool
	fillerWords map[string]bool
}

// Default returns the embedded vocabulary. It is read-only.
func Default() *Vocabulary {
	return defaultVocabulary
}

// Parse decodes and validates a vocabulary document
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if v.Version <= 0 {
		return nil, fmt.Errorf("vocabulary version must be positive, got %d", v.Version)
	}

	v.stopwords = make(map[string]bool, len(v.Stopwords))
	for _, w := range v.Stopwords {
		v.stopwords[strings.ToLower(strings.TrimSpace(w))] = true
	}

	v.fillerWords = make(map[string]bool)
	seen := make(map[string]bool, len(v.Fillers))
	for i := range v.Fillers {
		f := &v.Fillers[i]
		f.Phrase = strings.ToLower(strings.Join(strings.Fields(f.Phrase), " "))
		if f.Phrase == "" {
			return nil, fmt.Errorf("filler %d has an empty phrase", i)
		}
		if seen[f.Phrase] {
			return nil, fmt.Errorf("duplicate filler %q", f.Phrase)
		}
		seen[f.Phrase] = true
		if f.Intensity < 1 || f.Intensity > MaxIntensity {
			return nil, fmt.Errorf("filler %q: intensity %d out of range 1-%d", f.Phrase, f.Intensity, MaxIntensity)
		}
		f.pattern = PhrasePattern(f.Phrase)
		if !strings.Contains(f.Phrase, " ") {
			v.fillerWords[f.Phrase] = true
		}
	}

	return &v, nil
}

func mustParse(data []byte) *Vocabulary {
	v, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("vocab: embedded vocabulary is invalid: %v", err))
	}
	return v
}

// PhrasePattern compiles a case-insensitive matcher for a literal word
// sequence. Words may be separated by any run of whitespace in the text.
func PhrasePattern(phrase string) *regexp.Regexp {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
}

// IsStopword reports whether the lowercase token is a stopword
func (v *Vocabulary) IsStopword(word string) bool {
	return v.stopwords[word]
}

// IsFillerWord reports whether the lowercase token is a single-word filler
func (v *Vocabulary) IsFillerWord(word string) bool {
	return v.fillerWords[word]
}

// FillersIn returns the set of filler phrases present in text
func (v *Vocabulary) FillersIn(text string) map[string]bool {
	found := make(map[string]bool)
	for _, f := range v.Fillers {
		if f.pattern.MatchString(text) {
			found[f.Phrase] = true
		}
	}
	return found
}

// StripFillers removes every filler phrase from text
func (v *Vocabulary) StripFillers(text string) string {
	for _, f := range v.Fillers {
		text = f.pattern.ReplaceAllString(text, " ")
	}
	return text
}

// Keywords returns the content-bearing tokens of text in order of first
// appearance, lowercased. Filler phrases and stopwords are excluded.
func (v *Vocabulary) Keywords(text string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, tok := range Words(v.StripFillers(text)) {
		if v.IsStopword(tok) || v.IsFillerWord(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}
