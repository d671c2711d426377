package vocab

import "strings"

// Abbreviations returns the lowercase words of a and b that stand for one
// another through an acronym. "AI" in one text and "artificial
// intelligence" in the other put "ai", "artificial" and "intelligence" in
// the set. Matching runs in both directions.
func (v *Vocabulary) Abbreviations(a, b string) map[string]bool {
	found := make(map[string]bool)
	v.matchAcronyms(found, a, b)
	v.matchAcronyms(found, b, a)
	return found
}

func (v *Vocabulary) matchAcronyms(found map[string]bool, from, to string) {
	var words []string
	for _, tok := range Tokens(from) {
		if !IsAcronym(tok) {
			continue
		}
		if words == nil {
			words = Words(to)
		}
		initials := Initials(tok)
		i := v.ExpansionIndex(words, initials)
		if i < 0 {
			continue
		}
		found[strings.ToLower(tok)] = true
		for _, w := range words[i : i+len(initials)] {
			found[w] = true
		}
	}
}

// ExpansionIndex returns the index of the first run of non-stopwords in
// words whose initials spell initials, or -1
func (v *Vocabulary) ExpansionIndex(words []string, initials string) int {
	n := len(initials)
	for i := 0; i+n <= len(words); i++ {
		match := true
		for j := 0; j < n; j++ {
			w := words[i+j]
			if v.IsStopword(w) || w[0] != initials[j] {
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
