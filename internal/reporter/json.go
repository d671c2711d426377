package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/promptopt/internal/analyzer"
	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/tools"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONVariants represents optimize output
type JSONVariants struct {
	Prompt   string    `json:"prompt"`
	Style    string    `json:"style"`
	Variants []string  `json:"variants"`
	Scores   []float64 `json:"scores,omitempty"`
}

// JSONScore represents score output
type JSONScore struct {
	Score      float64              `json:"score"`
	Components optimizer.Components `json:"components"`
	Comparison *analyzer.Comparison `json:"comparison,omitempty"`
}

// JSONTool represents one entry of the tool catalog
type JSONTool struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Parameters  []tools.Param `json:"parameters"`
}

// ReportVariants outputs variants as JSON
func (r *JSONReporter) ReportVariants(rep VariantReport) error {
	return r.encode(JSONVariants{
		Prompt:   rep.Prompt,
		Style:    rep.Style.String(),
		Variants: rep.Variants,
		Scores:   rep.Scores,
	})
}

// ReportScore outputs a score as JSON
func (r *JSONReporter) ReportScore(rep ScoreReport) error {
	return r.encode(JSONScore{
		Score:      rep.Components.Score,
		Components: rep.Components,
		Comparison: rep.Comparison,
	})
}

// ReportTools outputs the tool catalog as JSON
func (r *JSONReporter) ReportTools(list []tools.Tool) error {
	out := make([]JSONTool, 0, len(list))
	for _, t := range list {
		out = append(out, JSONTool{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Params(),
		})
	}
	return r.encode(map[string]any{"tools": out})
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
