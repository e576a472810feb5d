package healthlog

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/food"
	"github.com/saadjs/healthlog/internal/service"
)

var macrosJSON bool

type macrosReport struct {
	Breakdown       service.MacroBreakdown   `json:"breakdown"`
	Targets         service.MacroTargets     `json:"targets"`
	Logged          food.MealAnalysis        `json:"logged_share"`
	Calories        int                      `json:"calories"`
	CalorieGoal     int                      `json:"calorie_goal"`
	Recommendations []service.Recommendation `json:"recommendations"`
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Analyze today's macronutrients against the calorie goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			settings, err := s.ledger.Settings(s.ctx)
			if err != nil {
				return err
			}
			entries := service.TodayEntries(s.ledger.Calories(s.user), clock.Today(appClock))
			meals := make([]food.MealMacros, 0, len(entries))
			calories := 0
			for _, e := range entries {
				calories += e.Calories
				m := food.MealMacros{Calories: float64(e.Calories)}
				if e.Nutrition != nil {
					m.ProteinG, m.CarbsG, m.FatG = e.Nutrition.ProteinG, e.Nutrition.CarbsG, e.Nutrition.FatG
				}
				meals = append(meals, m)
			}

			goal := service.CalorieGoal(settings)
			report := macrosReport{
				Breakdown:   service.BreakdownMacros(entries),
				Targets:     service.TargetsFor(goal),
				Logged:      food.AnalyzeMeals(meals),
				Calories:    calories,
				CalorieGoal: goal,
			}
			report.Recommendations = service.Recommend(report.Breakdown, report.Targets, calories, goal)

			if macrosJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal macros json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			b := report.Breakdown
			fmt.Fprintf(out, "Calories: %d / %d kcal\n", calories, goal)
			fmt.Fprintln(out, "MACRO\tGRAMS\tTARGET\tKCAL\tSHARE")
			fmt.Fprintf(out, "protein\t%.1f\t%d\t%.0f\t%d%%\n", b.Protein.Grams, report.Targets.ProteinG, b.Protein.Calories, b.Protein.Percent)
			fmt.Fprintf(out, "carbs\t%.1f\t%d\t%.0f\t%d%%\n", b.Carbs.Grams, report.Targets.CarbsG, b.Carbs.Calories, b.Carbs.Percent)
			fmt.Fprintf(out, "fat\t%.1f\t%d\t%.0f\t%d%%\n", b.Fat.Grams, report.Targets.FatG, b.Fat.Calories, b.Fat.Percent)
			fmt.Fprintf(out, "Share of logged calories: P %d%% | C %d%% | F %d%%\n",
				report.Logged.Protein.Percent, report.Logged.Carbs.Percent, report.Logged.Fat.Percent)
			fmt.Fprintln(out, "Recommendations:")
			for _, r := range report.Recommendations {
				fmt.Fprintf(out, "- %s\n", r)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(macrosCmd)
	macrosCmd.Flags().BoolVar(&macrosJSON, "json", false, "Output as JSON")
}
