package reporter

import (
	"github.com/pthm/promptopt/internal/analyzer"
	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/rules"
	"github.com/pthm/promptopt/internal/tools"
)

// Reporter defines the interface for outputting command results
type Reporter interface {
	// ReportVariants outputs the variants generated for a prompt
	ReportVariants(r VariantReport) error

	// ReportScore outputs a score and its breakdown
	ReportScore(r ScoreReport) error

	// ReportTools outputs the tool catalog
	ReportTools(list []tools.Tool) error
}

// VariantReport is the result of optimizing one prompt
type VariantReport struct {
	Prompt   string
	Style    rules.Style
	Variants []string
	// Scores holds each variant's score against Prompt when requested
	Scores []float64
}

// ScoreReport is the result of scoring one rewrite
type ScoreReport struct {
	Raw        string
	Improved   string
	Components optimizer.Components
	// Comparison is set for verbose output
	Comparison *analyzer.Comparison
}

// Best returns the index of the highest scoring variant, or -1 without
// scores. Ties go to the earlier variant.
func (r VariantReport) Best() int {
	best := -1
	for i, s := range r.Scores {
		if best < 0 || s > r.Scores[best] {
			best = i
		}
	}
	return best
}
