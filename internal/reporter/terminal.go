package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/promptopt/internal/tools"
	"github.com/pthm/promptopt/internal/ui"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
	s *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, s: u.Styles}
}

// ReportVariants prints the original prompt and each variant, marking the
// best scoring one when scores are present
func (r *TerminalReporter) ReportVariants(rep VariantReport) error {
	fmt.Fprintln(r.w, r.s.Header.Render(fmt.Sprintf("%s variants", titleCase(rep.Style.String()))))
	fmt.Fprintf(r.w, "  %s %s\n", r.s.Muted.Render("original:"), rep.Prompt)
	fmt.Fprintln(r.w)

	best := rep.Best()
	for i, v := range rep.Variants {
		label := r.s.Label.Render(fmt.Sprintf("%d.", i+1))
		fmt.Fprintf(r.w, "  %s %s", label, r.s.Prompt.Render(v))
		if i < len(rep.Scores) {
			fmt.Fprintf(r.w, " %s", r.s.Score(rep.Scores[i]).Render(fmt.Sprintf("(%.3f)", rep.Scores[i])))
			if i == best {
				fmt.Fprintf(r.w, " %s", r.s.Success.Render(r.s.IconSuccess+" best"))
			}
		}
		fmt.Fprintln(r.w)
	}
	return nil
}

// ReportScore prints the score, and the breakdown when it was computed
func (r *TerminalReporter) ReportScore(rep ScoreReport) error {
	c := rep.Components
	fmt.Fprintf(r.w, "Effectiveness score: %s\n", r.s.Score(c.Score).Render(fmt.Sprintf("%.3f", c.Score)))

	if rep.Comparison == nil {
		return nil
	}

	fmt.Fprintln(r.w, r.s.Separator.Render("─────────────────────────────────────"))
	r.component("length efficiency", c.LengthEfficiency)
	r.component("keyword preservation", c.KeywordPreservation)
	r.component("redundancy reduction", c.RedundancyReduction)

	cmp := rep.Comparison
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  %s %d %s %d (%+d)\n",
		r.s.Muted.Render("est. tokens:"), cmp.Before.EstimatedTokens, r.s.IconArrow, cmp.After.EstimatedTokens, cmp.TokenChange)
	fmt.Fprintf(r.w, "  %s %d %s %d\n",
		r.s.Muted.Render("words:      "), cmp.Before.Words, r.s.IconArrow, cmp.After.Words)
	r.list("fillers removed", cmp.FillersRemoved)
	r.list("keywords lost", cmp.KeywordsLost)
	r.list("keywords added", cmp.KeywordsAdded)
	return nil
}

// ReportTools prints each tool with its parameters
func (r *TerminalReporter) ReportTools(list []tools.Tool) error {
	for i, t := range list {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s  %s\n", r.s.Header.Render(t.Name()), r.s.Muted.Render(t.Description()))
		for _, p := range t.Params() {
			line := fmt.Sprintf("  %s  %s", r.s.Label.Render(p.Name), p.Description)
			if len(p.Enum) > 0 {
				line += r.s.Muted.Render(fmt.Sprintf(" [%s]", strings.Join(p.Enum, "|")))
			}
			fmt.Fprintln(r.w, line)
		}
	}
	return nil
}

func (r *TerminalReporter) component(name string, v float64) {
	fmt.Fprintf(r.w, "  %-22s %s\n", name, r.s.Score(v).Render(fmt.Sprintf("%.3f", v)))
}

func (r *TerminalReporter) list(name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(r.w, "  %s %s\n", r.s.Muted.Render(name+":"), strings.Join(items, ", "))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
