package healthlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/clock"
)

var (
	dbPath     string
	configPath string
	userID     string
)

// appClock is swapped by tests to pin the calendar day.
var appClock clock.Clock = clock.Real{}

var rootCmd = &cobra.Command{
	Use:   "healthlog",
	Short: "healthlog tracks water, meals and fasting from your terminal",
	Long:  "healthlog is a local-first daily health ledger: water intake, meals with macros, and intermittent fasting, reset every calendar day.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (selects the sqlite driver)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User id entries are recorded for")
}
