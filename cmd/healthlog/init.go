package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/config"
	"github.com/saadjs/healthlog/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the healthlog store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized healthlog store at %s\n", storeLocation(s.cfg))
			if s.cfg.Storage.Driver == config.DriverSQLite {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema version %d\n", db.SchemaVersion())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
