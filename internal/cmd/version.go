package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pthm/promptopt/internal/rules"
	"github.com/pthm/promptopt/internal/version"
	"github.com/pthm/promptopt/internal/vocab"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the build version and the versions of the embedded vocabulary
and rewrite rule tables. Variants and scores for a prompt only change when
one of the table versions does.`,
	RunE: runVersion,
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

// versionInfo is the --format json shape of the version command
type versionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Date       string `json:"date"`
	Vocabulary int    `json:"vocabulary_version"`
	Rules      int    `json:"rules_version"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionInfo{
		Version:    version.Version,
		Commit:     version.Commit,
		Date:       version.Date,
		Vocabulary: vocab.Default().Version,
		Rules:      rules.Default().Version(),
	}

	out := cmd.OutOrStdout()
	if GetUI(cmd).IsJSON() {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintln(out, version.Info())
	fmt.Fprintf(out, "vocabulary v%d, rules v%d\n", info.Vocabulary, info.Rules)
	return nil
}
