package optimizer

import (
	"math"
	"strings"

	"github.com/pthm/promptopt/internal/vocab"
)

// Component weights. They sum to 1.
const (
	LengthWeight     = 0.30
	KeywordWeight    = 0.45
	RedundancyWeight = 0.25
)

// Components is the breakdown behind a score. Every field is in [0, 1].
type Components struct {
	LengthEfficiency    float64 `json:"length_efficiency"`
	KeywordPreservation float64 `json:"keyword_preservation"`
	RedundancyReduction float64 `json:"redundancy_reduction"`
	Score               float64 `json:"score"`
}

// Score rates improved against raw on a 0.0-1.0 scale
func Score(raw, improved string) float64 {
	return Evaluate(raw, improved).Score
}

// Evaluate computes the score and its components. Blank inputs
// short-circuit: both blank scores 1, exactly one blank scores 0.
func Evaluate(raw, improved string) Components {
	rawBlank := strings.TrimSpace(raw) == ""
	improvedBlank := strings.TrimSpace(improved) == ""

	switch {
	case rawBlank && improvedBlank:
		return uniform(1)
	case rawBlank, improvedBlank:
		return uniform(0)
	}

	v := vocab.Default()
	c := Components{
		LengthEfficiency:    lengthEfficiency(vocab.TokenCount(raw), vocab.TokenCount(improved)),
		KeywordPreservation: keywordPreservation(v, raw, improved),
		RedundancyReduction: redundancyReduction(v, raw, improved),
	}

	total := LengthWeight*c.LengthEfficiency +
		KeywordWeight*c.KeywordPreservation +
		RedundancyWeight*c.RedundancyReduction
	c.Score = round3(clamp(total))
	return c
}

func uniform(x float64) Components {
	return Components{
		LengthEfficiency:    x,
		KeywordPreservation: x,
		RedundancyReduction: x,
		Score:               x,
	}
}

// lengthEfficiency peaks for rewrites between 40% and 90% of the original
// length and decays exponentially once the rewrite grows past it
func lengthEfficiency(rawTokens, improvedTokens int) float64 {
	ratio := float64(improvedTokens) / math.Max(float64(rawTokens), 1)

	var eff float64
	switch {
	case ratio < 0.4:
		eff = 0.6 + ratio
	case ratio <= 0.9:
		eff = 1.0
	case ratio <= 1.0:
		eff = 1.0 - (ratio - 0.9)
	default:
		eff = 0.9 * math.Exp(-(ratio - 1))
	}
	return clamp(eff)
}

// keywordPreservation is the share of raw keywords that survive in
// improved, counting acronyms as preserving the words they abbreviate
func keywordPreservation(v *vocab.Vocabulary, raw, improved string) float64 {
	rawKeywords := v.Keywords(raw)
	if len(rawKeywords) == 0 {
		return 1
	}

	// "AI" in one text keeps "artificial intelligence" from the other
	preserved := v.Abbreviations(raw, improved)
	for _, kw := range v.Keywords(improved) {
		preserved[kw] = true
	}

	kept := 0
	for _, kw := range rawKeywords {
		if preserved[kw] {
			kept++
		}
	}
	return float64(kept) / float64(len(rawKeywords))
}

// redundancyReduction is the share of the original's filler phrases that
// the rewrite dropped. Without filler in the original it is neutral.
func redundancyReduction(v *vocab.Vocabulary, raw, improved string) float64 {
	rawFillers := v.FillersIn(raw)
	if len(rawFillers) == 0 {
		return 1
	}

	improvedFillers := v.FillersIn(improved)
	removed := 0
	for f := range rawFillers {
		if !improvedFillers[f] {
			removed++
		}
	}
	return float64(removed) / float64(len(rawFillers))
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
