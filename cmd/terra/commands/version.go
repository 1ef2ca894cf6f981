package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Terra/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Terra version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
