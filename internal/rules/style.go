package rules

import (
	"fmt"
	"strings"
)

// Style selects which rewrite pipeline applies to a prompt
type Style int

const (
	// StyleUnknown is the zero value and never valid
	StyleUnknown Style = iota
	// StyleCreative embellishes plain wording with evocative synonyms
	StyleCreative
	// StylePrecise strips filler and collapses redundant phrasing
	StylePrecise
	// StyleFast swaps long or formal vocabulary for shorter words
	StyleFast
)

// Styles returns every valid style in declaration order
func Styles() []Style {
	return []Style{StyleCreative, StylePrecise, StyleFast}
}

func (s Style) String() string {
	switch s {
	case StyleCreative:
		return "creative"
	case StylePrecise:
		return "precise"
	case StyleFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared styles
func (s Style) Valid() bool {
	switch s {
	case StyleCreative, StylePrecise, StyleFast:
		return true
	default:
		return false
	}
}

// LookupStyle maps an exact style tag to its Style
func LookupStyle(tag string) (Style, bool) {
	for _, s := range Styles() {
		if s.String() == tag {
			return s, true
		}
	}
	return StyleUnknown, false
}

// StyleNames returns the tags of every valid style
func StyleNames() []string {
	names := make([]string, 0, len(Styles()))
	for _, s := range Styles() {
		names = append(names, s.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid style %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Style) UnmarshalText(text []byte) error {
	style, ok := LookupStyle(string(text))
	if !ok {
		return fmt.Errorf("unknown style %q (expected one of %s)", text, strings.Join(StyleNames(), ", "))
	}
	*s = style
	return nil
}
