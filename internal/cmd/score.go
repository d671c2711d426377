package cmd

import (
	"errors"

	"github.com/pthm/promptopt/internal/analyzer"
	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/parser"
	"github.com/pthm/promptopt/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	scoreRawFile      string
	scoreImprovedFile string
)

var scoreCmd = &cobra.Command{
	Use:   "score [raw] [improved]",
	Short: "Score a rewritten prompt against its original",
	Long: `Rate how well an improved prompt rewrites the original, from 0.0 to 1.0.

The score weighs length efficiency, how many of the original's keywords
survive, and how much filler was removed. Use --verbose for the
breakdown and before/after metrics.

Prompts come from the arguments or from files. A YAML, JSON or markdown
file passed to --raw-file may carry the improved prompt too.

Examples:
  promptopt score "Please write a very detailed summary" "Write a summary"
  promptopt score --raw-file before.txt --improved-file after.txt -v
  promptopt score --raw-file pair.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreRawFile, "raw-file", "", "Read the original prompt from a file")
	scoreCmd.Flags().StringVar(&scoreImprovedFile, "improved-file", "", "Read the improved prompt from a file")
	RootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	raw, improved, err := resolvePair(args)
	if err != nil {
		return err
	}

	rep := reporter.ScoreReport{
		Raw:        raw,
		Improved:   improved,
		Components: optimizer.Evaluate(raw, improved),
	}
	if verbose {
		rep.Comparison = analyzer.Compare(raw, improved)
	}

	u := GetUI(cmd)
	return newReporter(cmd, u).ReportScore(rep)
}

// resolvePair fills the original and the rewrite from the file flags
// first, then from the arguments in order
func resolvePair(args []string) (string, string, error) {
	var raw, improved *string

	if scoreRawFile != "" {
		pf, err := parser.Parse(scoreRawFile)
		if err != nil {
			return "", "", err
		}
		raw = &pf.Prompt
		if pf.Improved != "" {
			improved = &pf.Improved
		}
	}
	if scoreImprovedFile != "" {
		pf, err := parser.Parse(scoreImprovedFile)
		if err != nil {
			return "", "", err
		}
		improved = &pf.Prompt
	}

	rest := args
	if raw == nil && len(rest) > 0 {
		raw = &rest[0]
		rest = rest[1:]
	}
	if improved == nil && len(rest) > 0 {
		improved = &rest[0]
		rest = rest[1:]
	}

	switch {
	case raw == nil || improved == nil:
		return "", "", errors.New("score needs an original and an improved prompt")
	case len(rest) > 0:
		return "", "", errors.New("too many prompts given")
	}
	return *raw, *improved, nil
}
