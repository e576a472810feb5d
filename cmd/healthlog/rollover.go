package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/clock"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Start a new day if the calendar day has changed",
	Long:  "rollover compares the stored last-reset day with today and, when they differ, prunes water and meal entries per rollover.policy and records today. Every other command does this implicitly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(s *session) error {
			before, err := s.rollover.State(s.ctx)
			if err != nil {
				return err
			}
			rolled, err := s.rollover.Check(s.ctx)
			if err != nil {
				return err
			}
			today := clock.Today(appClock)
			if rolled {
				fmt.Fprintf(cmd.OutOrStdout(), "Rolled over to %s (was %s, policy %s)\n", today, before, s.cfg.Rollover.Policy)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Already current for %s\n", today)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rolloverCmd)
}
