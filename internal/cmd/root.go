package cmd

import (
	"fmt"
	"os"

	"github.com/pthm/promptopt/internal/logger"
	"github.com/pthm/promptopt/internal/reporter"
	"github.com/pthm/promptopt/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	format   string
	logLevel string
	logJSON  bool
)

// RootCmd is the promptopt command tree
var RootCmd = &cobra.Command{
	Use:   "promptopt",
	Short: "Rewrite and score prompts",
	Long: `promptopt rewrites a prompt into three variants for a chosen style
(creative, precise or fast) and scores how well a rewrite improves on
its original.

Everything is rule-based and deterministic: the same prompt and style
always produce the same variants. The same operations are available to
tool-using clients over MCP (stdio) or a JSON HTTP API via "serve".`,
	SilenceUsage:      true,
	PersistentPreRunE: validateGlobalFlags,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

func validateGlobalFlags(cmd *cobra.Command, args []string) error {
	switch format {
	case "terminal", "json":
	default:
		return fmt.Errorf("unknown format %q (expected terminal or json)", format)
	}
	if _, err := logger.ParseLevel(logLevel); err != nil {
		return err
	}
	return nil
}

// GetUI returns a UI bound to the command's output streams
func GetUI(cmd *cobra.Command) *ui.UI {
	return ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
}

// newReporter picks the reporter for the --format flag
func newReporter(cmd *cobra.Command, u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(cmd.OutOrStdout())
	}
	return reporter.NewTerminalReporter(cmd.OutOrStdout(), u)
}

// newLogger builds the stderr logger for long-running commands
func newLogger(level string, asJSON bool) logger.Logger {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		lvl = logger.InfoLevel
	}
	return logger.New(&logger.Config{
		Level:      lvl,
		Output:     os.Stderr,
		JSON:       asJSON,
		TimeFormat: "15:04:05",
	})
}
