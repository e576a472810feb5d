package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/saadjs/healthlog/cmd/healthlog.version=...".
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "healthlog %s (%s)\n", version, commit)
}
