package vocab

import (
	"regexp"
	"strings"
	"unicode"
)

// tokenPattern matches words, numbers, and hyphen or apostrophe compounds
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’\-][\p{L}\p{N}]+)*`)

// Tokens splits text into word tokens, preserving case
func Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Words splits text into lowercase word tokens
func Words(text string) []string {
	tokens := Tokens(text)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}

// TokenCount returns the number of word tokens in text
func TokenCount(text string) int {
	return len(tokenPattern.FindAllStringIndex(text, -1))
}

// IsAcronym reports whether tok looks like an abbreviation such as "AI" or
// "LLMs": two to six letters, all uppercase apart from an optional plural s.
func IsAcronym(tok string) bool {
	tok = strings.TrimSuffix(tok, "s")
	if len(tok) < 2 || len(tok) > 6 {
		return false
	}
	for _, r := range tok {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Initials returns the lowercase letters an acronym spells
func Initials(acronym string) string {
	return strings.ToLower(strings.TrimSuffix(acronym, "s"))
}
