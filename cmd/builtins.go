package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chrisf1337/chrish/core"
)

// builtinsCmd shows the commands the shell handles in-process rather
// than by launching a program.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the shell's builtin commands.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := color.New(color.FgCyan, color.Bold)

		for _, v := range core.BuiltinNames {
			fmt.Fprintln(cmd.OutOrStdout(), name.Sprint(v))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
