package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// MinIntensity and MaxIntensity bound rule intensities. Variant n of a
// rewrite applies every rule with intensity <= n.
const (
	MinIntensity = 1
	MaxIntensity = 3
)

// Kind distinguishes literal phrase rules from token-class rules
type Kind int

const (
	// KindLiteral matches a word or word sequence, case-insensitively
	KindLiteral Kind = iota
	// KindTokenClass matches a regular expression such as a number pattern
	KindTokenClass
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindTokenClass:
		return "token-class"
	default:
		return "unknown"
	}
}

// Rule pairs a match pattern with its replacement
type Rule struct {
	// Match is a literal word or phrase. Exactly one of Match and Regex is set.
	Match string `yaml:"match"`

	// Regex is a token-class pattern; Replace may reference its groups
	Regex string `yaml:"regex"`

	// Replace is the substitution text. Empty removes the match.
	Replace string `yaml:"replace"`

	// Styles lists the pipelines this rule belongs to
	Styles []Style `yaml:"styles"`

	// Intensity is the first variant level (1-3) that applies this rule
	Intensity int `yaml:"intensity"`

	// Origin records where the rule was declared (rule table or vocabulary)
	Origin string `yaml:"-"`

	compiled *regexp.Regexp
}

// Compile validates the rule and compiles its pattern
func (r *Rule) Compile() error {
	switch {
	case r.Match != "" && r.Regex != "":
		return fmt.Errorf("rule %q: match and regex are mutually exclusive", r.Name())
	case r.Match == "" && r.Regex == "":
		return fmt.Errorf("rule has neither match nor regex")
	}

	if r.Intensity < MinIntensity || r.Intensity > MaxIntensity {
		return fmt.Errorf("rule %q: intensity %d out of range %d-%d", r.Name(), r.Intensity, MinIntensity, MaxIntensity)
	}
	if len(r.Styles) == 0 {
		return fmt.Errorf("rule %q: no styles", r.Name())
	}
	for _, s := range r.Styles {
		if !s.Valid() {
			return fmt.Errorf("rule %q: invalid style %d", r.Name(), int(s))
		}
	}

	if r.Kind() == KindLiteral {
		r.Match = normalizePhrase(r.Match)
		re, err := regexp.Compile(`(?i)\b` + phraseExpr(r.Match) + `\b`)
		if err != nil {
			return fmt.Errorf("rule %q: %w", r.Name(), err)
		}
		r.compiled = re
		return nil
	}

	re, err := regexp.Compile(`(?i)` + r.Regex)
	if err != nil {
		return fmt.Errorf("rule %q: %w", r.Name(), err)
	}
	r.compiled = re
	return nil
}

// Kind returns whether the rule is literal or a token class
func (r Rule) Kind() Kind {
	if r.Regex != "" {
		return KindTokenClass
	}
	return KindLiteral
}

// Name identifies the rule by its pattern
func (r Rule) Name() string {
	if r.Regex != "" {
		return r.Regex
	}
	return r.Match
}

// Pattern returns the compiled matcher, nil before Compile
func (r Rule) Pattern() *regexp.Regexp {
	return r.compiled
}

// AppliesTo reports whether the rule runs for style at the given variant level
func (r Rule) AppliesTo(style Style, intensity int) bool {
	if r.Intensity > intensity {
		return false
	}
	for _, s := range r.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// Frame wraps a rewritten prompt with fixed text at one style and level
type Frame struct {
	Style     Style  `yaml:"style"`
	Intensity int    `yaml:"intensity"`
	Prefix    string `yaml:"prefix"`
	Suffix    string `yaml:"suffix"`

	// Append is a closing sentence added after the rewritten prompt
	Append string `yaml:"append"`
}

func normalizePhrase(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

// phraseExpr turns a literal phrase into a regular expression that allows
// any whitespace between words
func phraseExpr(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}
