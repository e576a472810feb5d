package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/service"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log and review water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Log a glass of water",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parsePositiveInt("amount", args[0])
		if err != nil {
			return err
		}
		return withLedger(cmd, func(s *session) error {
			e, err := s.ledger.AddWater(s.ctx, s.user, ml)
			if err != nil {
				return err
			}
			goal, err := waterGoal(s)
			if err != nil {
				return err
			}
			total := service.TodayWaterTotal(s.ledger.Water(s.user), e.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d ml water (id %s)\n", e.AmountML, e.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d / %d ml (%d%%)\n", total, goal, service.ProgressPercent(float64(total), float64(goal)))
			return nil
		})
	},
}

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's water entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			entries := service.TodayEntries(s.ledger.Water(s.user), clock.Today(appClock))
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tML")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", e.ID, e.Timestamp.Format("15:04"), e.AmountML)
			}
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a water entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			removed, err := s.ledger.RemoveWater(s.ctx, s.user, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("water entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed water entry %s\n", args[0])
			return nil
		})
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show the daily water goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			goal, err := waterGoal(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal: %d ml\n", goal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterListCmd, waterRemoveCmd, waterGoalCmd)
}

func waterGoal(s *session) (int, error) {
	profile, ok, err := s.ledger.Profile(s.ctx)
	if err != nil {
		return 0, err
	}
	if !ok || profile.CurrentWeightKg <= 0 {
		return service.DefaultWaterGoalML, nil
	}
	return service.WaterGoalML(profile.CurrentWeightKg), nil
}
