package cmd

import (
	"github.com/pthm/promptopt/internal/tools"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed by serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := GetUI(cmd)
		return newReporter(cmd, u).ReportTools(tools.DefaultRegistry().Tools())
	},
}

func init() {
	RootCmd.AddCommand(toolsCmd)
}
