// Package analyzer computes descriptive statistics for prompts, shown
// alongside variants and scores.
package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pthm/promptopt/internal/vocab"
)

// Metrics contains computed metrics about one prompt
type Metrics struct {
	Characters      int      `json:"characters"`
	Words           int      `json:"words"`
	EstimatedTokens int      `json:"estimated_tokens"`
	Keywords        []string `json:"keywords"`
	Fillers         []string `json:"fillers"`
}

// Comparison describes how a rewrite differs from its original
type Comparison struct {
	Before         *Metrics `json:"before"`
	After          *Metrics `json:"after"`
	TokenChange    int      `json:"token_change"`
	KeywordsLost   []string `json:"keywords_lost"`
	KeywordsAdded  []string `json:"keywords_added"`
	FillersRemoved []string `json:"fillers_removed"`
}

// ComputeMetrics computes metrics for a prompt
func ComputeMetrics(text string) *Metrics {
	v := vocab.Default()
	text = strings.TrimSpace(text)
	chars := utf8.RuneCountInString(text)

	m := &Metrics{
		Characters: chars,
		Words:      vocab.TokenCount(text),
		// Estimate tokens (rough: ~4 chars per token)
		EstimatedTokens: chars / 4,
		Keywords:        v.Keywords(text),
		Fillers:         sortedKeys(v.FillersIn(text)),
	}
	if m.Keywords == nil {
		m.Keywords = []string{}
	}
	return m
}

// Compare computes metrics for both prompts and the differences between
// them
func Compare(raw, improved string) *Comparison {
	c := &Comparison{
		Before: ComputeMetrics(raw),
		After:  ComputeMetrics(improved),
	}
	c.TokenChange = c.After.EstimatedTokens - c.Before.EstimatedTokens

	// an acronym and its spelled-out words count as the same keyword
	abbreviated := vocab.Default().Abbreviations(raw, improved)
	c.KeywordsLost = difference(c.Before.Keywords, c.After.Keywords, abbreviated)
	c.KeywordsAdded = difference(c.After.Keywords, c.Before.Keywords, abbreviated)
	c.FillersRemoved = difference(c.Before.Fillers, c.After.Fillers, nil)
	return c
}

// difference returns the items of a missing from b and skip, in a's order
func difference(a, b []string, skip map[string]bool) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	out := []string{}
	for _, s := range a {
		if !in[s] && !skip[s] {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
