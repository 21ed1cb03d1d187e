// -- cmd/version.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version, overridable at link time via
// -ldflags "-X github.com/xkilldash9x/reqlens-cli/cmd.Version=...".
var Version = "0.4.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the reqlens version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "reqlens %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
