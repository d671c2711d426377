package cmd

import (
	"fmt"
	"strings"

	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/reporter"
	"github.com/pthm/promptopt/internal/rules"
	"github.com/pthm/promptopt/internal/ui"
	"github.com/spf13/cobra"
)

type demoCase struct {
	raw         string
	improved    string
	description string
}

const (
	demoOptimizePrompt    = "Please write a very detailed explanation about machine learning and artificial intelligence"
	demoIntegrationPrompt = "Please write a very detailed explanation about machine learning"
)

var demoScoreCases = []demoCase{
	{
		raw:         "Please write a very detailed explanation about machine learning",
		improved:    "Write an explanation about machine learning",
		description: "Improved (shorter, removes redundant words)",
	},
	{
		raw:         "Write about AI",
		improved:    "Please write a very detailed and comprehensive explanation about artificial intelligence",
		description: "Worse (longer, adds redundant words)",
	},
	{
		raw:         "Write about artificial intelligence and machine learning",
		improved:    "Write about AI and ML",
		description: "Similar (shorter but maintains keywords)",
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through optimizing and scoring sample prompts",
	Long: `Run the optimizer over a sample prompt in every style, score three
reference rewrites, then optimize a prompt and score each variant.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	RootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	u := GetUI(cmd)
	rep := newReporter(cmd, u)

	section(u, "Prompt optimization")
	for _, style := range rules.Styles() {
		variants, err := optimizer.Optimize(demoOptimizePrompt, style)
		if err != nil {
			return err
		}
		if err := rep.ReportVariants(reporter.VariantReport{
			Prompt:   demoOptimizePrompt,
			Style:    style,
			Variants: variants,
		}); err != nil {
			return err
		}
		blank(u)
	}

	section(u, "Prompt scoring")
	for _, c := range demoScoreCases {
		if !u.IsJSON() {
			fmt.Fprintf(u.Writer, "%s %s\n", u.Styles.Muted.Render("original:"), c.raw)
			fmt.Fprintf(u.Writer, "%s %s\n", u.Styles.Muted.Render("improved:"), c.improved)
		}
		if err := rep.ReportScore(reporter.ScoreReport{
			Raw:        c.raw,
			Improved:   c.improved,
			Components: optimizer.Evaluate(c.raw, c.improved),
		}); err != nil {
			return err
		}
		if !u.IsJSON() {
			fmt.Fprintln(u.Writer, u.Styles.Subheader.Render(c.description))
		}
		blank(u)
	}

	section(u, "Optimize, then score")
	for _, style := range rules.Styles() {
		variants, err := optimizer.Optimize(demoIntegrationPrompt, style)
		if err != nil {
			return err
		}
		scores := make([]float64, len(variants))
		for i, v := range variants {
			scores[i] = optimizer.Score(demoIntegrationPrompt, v)
		}
		if err := rep.ReportVariants(reporter.VariantReport{
			Prompt:   demoIntegrationPrompt,
			Style:    style,
			Variants: variants,
			Scores:   scores,
		}); err != nil {
			return err
		}
		blank(u)
	}

	if !u.IsJSON() {
		fmt.Fprintln(u.Writer, u.Styles.Success.Render(u.Styles.IconSuccess+" Demo complete"))
	}
	return nil
}

func section(u *ui.UI, title string) {
	if u.IsJSON() {
		return
	}
	fmt.Fprintln(u.Writer, u.Styles.Header.Render(strings.ToUpper(title)))
	fmt.Fprintln(u.Writer, u.Styles.Separator.Render(strings.Repeat("=", 50)))
}

func blank(u *ui.UI) {
	if !u.IsJSON() {
		fmt.Fprintln(u.Writer)
	}
}
