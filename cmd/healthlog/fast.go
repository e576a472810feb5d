package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/service"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Track intermittent fasting",
}

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fasting session now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			started, err := s.ledger.StartFasting(s.ctx, s.user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started fasting at %s (id %s)\n", started.StartTime.Format("2006-01-02 15:04"), started.ID)
			return nil
		})
	},
}

var fastStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the current fasting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			ended, err := s.ledger.EndFasting(s.ctx, s.user)
			if err != nil {
				return err
			}
			minutes := 0
			if ended.DurationMin != nil {
				minutes = *ended.DurationMin
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ended fast after %s\n", service.FormatFastingTime(minutes))
			return nil
		})
	},
}

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fasting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			open, ok := s.ledger.OpenFasting(s.user)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not fasting")
				return nil
			}
			minutes := service.CurrentFastingDuration(s.ledger, s.user)
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting since %s: %s\n", open.StartTime.Format("2006-01-02 15:04"), service.FormatFastingTime(minutes))

			profile, hasProfile, err := s.ledger.Profile(s.ctx)
			if err != nil {
				return err
			}
			if goal := service.FastingGoalMinutes(profile.FastingProtocol); hasProfile && goal > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s (%s) | %d%%\n",
					service.FormatFastingTime(goal), profile.FastingProtocol.Type, service.ProgressPercent(float64(minutes), float64(goal)))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd, fastStopCmd, fastStatusCmd)
}
