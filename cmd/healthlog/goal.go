package healthlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie goal and show derived goals",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: "Set the daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := parsePositiveInt("calorie goal", args[0])
		if err != nil {
			return err
		}
		return withLedger(cmd, func(s *session) error {
			if err := s.ledger.SetCalorieGoal(s.ctx, kcal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set calorie goal to %d kcal\n", kcal)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show calorie, water, fasting and macro goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			settings, err := s.ledger.Settings(s.ctx)
			if err != nil {
				return err
			}
			water, err := waterGoal(s)
			if err != nil {
				return err
			}
			profile, hasProfile, err := s.ledger.Profile(s.ctx)
			if err != nil {
				return err
			}
			kcal := service.CalorieGoal(settings)
			targets := service.TargetsFor(kcal)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Calories: %d kcal\n", kcal)
			fmt.Fprintf(out, "Macros: P %dg | C %dg | F %dg\n", targets.ProteinG, targets.CarbsG, targets.FatG)
			fmt.Fprintf(out, "Water: %d ml\n", water)
			if minutes := service.FastingGoalMinutes(profile.FastingProtocol); hasProfile && minutes > 0 {
				fmt.Fprintf(out, "Fasting: %s (%s)\n", service.FormatFastingTime(minutes), profile.FastingProtocol.Type)
			} else {
				fmt.Fprintln(out, "Fasting: not set")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)
}
