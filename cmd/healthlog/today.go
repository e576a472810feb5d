package healthlog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/service"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's water, calories, macros and fasting progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			status, err := service.TodaySummary(s.ctx, s.ledger, s.user)
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal today json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printToday(cmd.OutOrStdout(), status)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}

func printToday(w io.Writer, status *service.TodayStatus) {
	fmt.Fprintf(w, "Date: %s\n", status.Date)
	if status.HasProfile {
		fmt.Fprintf(w, "Profile: %s (%s)\n", status.Profile.Name, status.Profile.Goal)
	} else {
		fmt.Fprintln(w, "Profile: not set (run `healthlog profile set`)")
	}
	fmt.Fprintf(w, "Water: %d / %d ml (%d%%)\n", status.WaterML, status.WaterGoalML, status.WaterProgress)
	fmt.Fprintf(w, "Calories: %d / %d kcal (%d%%) | remaining %d\n", status.Calories, status.CalorieGoal, status.CalorieProgress, status.RemainingCalories)
	m := status.Macros
	fmt.Fprintf(w, "Macros: P %.1fg (%d%%) | C %.1fg (%d%%) | F %.1fg (%d%%)\n",
		m.Protein.Grams, m.Protein.Percent, m.Carbs.Grams, m.Carbs.Percent, m.Fat.Grams, m.Fat.Percent)
	switch {
	case status.Fasting && status.FastingGoalMinutes > 0:
		fmt.Fprintf(w, "Fasting: %s / %s (%d%%)\n",
			service.FormatFastingTime(status.FastingMinutes), service.FormatFastingTime(status.FastingGoalMinutes), status.FastingProgress)
	case status.Fasting:
		fmt.Fprintf(w, "Fasting: %s\n", service.FormatFastingTime(status.FastingMinutes))
	default:
		fmt.Fprintln(w, "Fasting: not fasting")
	}
	for _, g := range status.Meals {
		if len(g.Entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s: %d kcal\n", g.Meal, g.Calories)
		for _, e := range g.Entries {
			fmt.Fprintf(w, "  %s\t%s\t%d kcal\n", e.ID, e.FoodName, e.Calories)
		}
	}
}
