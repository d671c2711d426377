package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/promptopt/internal/analyzer"
	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/parser"
	"github.com/pthm/promptopt/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	optimizeStyle string
	optimizeFile  string
	optimizeScore bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [prompt]",
	Short: "Generate three variants of a prompt",
	Long: `Rewrite a prompt into three variants for a style, from the lightest
touch to the most aggressive rewrite.

The prompt comes from the arguments or from --file. Markdown files may
set a default style in their frontmatter.

Examples:
  promptopt optimize --style precise "Please write a very detailed summary"
  promptopt optimize --file prompt.md --score
  promptopt optimize -s fast -f json "Could you elaborate on the results"`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeStyle, "style", "s", "", "Optimization style (creative, precise, fast)")
	optimizeCmd.Flags().StringVarP(&optimizeFile, "file", "F", "", "Read the prompt from a file (.md, .yaml, .json, or text)")
	optimizeCmd.Flags().BoolVar(&optimizeScore, "score", false, "Score each variant against the original")
	RootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	prompt, fileStyle, err := resolvePrompt(args)
	if err != nil {
		return err
	}

	u := GetUI(cmd)

	tag := optimizeStyle
	switch {
	case tag == "":
		tag = fileStyle
	case fileStyle != "" && fileStyle != tag:
		u.Warn("--style %s overrides the %s style set in %s", tag, fileStyle, optimizeFile)
	}
	if tag == "" {
		return errors.New("a style is required (--style creative|precise|fast)")
	}
	style, err := optimizer.ParseStyle(tag)
	if err != nil {
		return err
	}

	variants, err := optimizer.Optimize(prompt, style)
	if err != nil {
		return err
	}

	rep := reporter.VariantReport{
		Prompt:   prompt,
		Style:    style,
		Variants: variants,
	}
	if optimizeScore || verbose {
		for _, v := range variants {
			rep.Scores = append(rep.Scores, optimizer.Score(prompt, v))
		}
	}

	if err := newReporter(cmd, u).ReportVariants(rep); err != nil {
		return err
	}

	if verbose && !u.IsJSON() {
		if best := rep.Best(); best >= 0 {
			fmt.Fprintln(u.Writer)
			return newReporter(cmd, u).ReportScore(reporter.ScoreReport{
				Raw:        prompt,
				Improved:   variants[best],
				Components: optimizer.Evaluate(prompt, variants[best]),
				Comparison: analyzer.Compare(prompt, variants[best]),
			})
		}
	}
	return nil
}

// resolvePrompt returns the prompt from --file or the arguments, plus the
// style the file declares
func resolvePrompt(args []string) (string, string, error) {
	if optimizeFile != "" {
		if len(args) > 0 {
			return "", "", errors.New("pass a prompt as arguments or --file, not both")
		}
		pf, err := parser.Parse(optimizeFile)
		if err != nil {
			return "", "", err
		}
		return pf.Prompt, pf.Style, nil
	}

	if len(args) == 0 {
		return "", "", errors.New("no prompt given (pass it as an argument or use --file)")
	}
	return strings.Join(args, " "), "", nil
}
