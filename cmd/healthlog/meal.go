package healthlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/food"
	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/model"
	"github.com/saadjs/healthlog/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and edit calorie entries",
}

var (
	mealName    string
	mealKcal    int
	mealSlot    string
	mealFood    string
	mealGrams   float64
	mealPortion string
	mealProtein float64
	mealCarbs   float64
	mealFat     float64
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal by name and calories, or from the food catalog",
	Example: `  healthlog meal add --name "Salada" --kcal 120 --meal lunch
  healthlog meal add --food frango-peito --grams 150 --meal dinner
  healthlog meal add --food 7891000100103 --portion "1 copo (240ml)" --meal breakfast`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := mealInput(cmd)
		if err != nil {
			return err
		}
		return withLedger(cmd, func(s *session) error {
			e, err := s.ledger.AddCalories(s.ctx, s.user, in)
			if err != nil {
				return err
			}
			total := service.TodayCalorieTotal(s.ledger.Calories(s.user), e.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %d kcal to %s (id %s)\n", e.FoodName, e.Calories, e.Meal, e.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d kcal\n", total)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's meals by slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			entries := service.TodayEntries(s.ledger.Calories(s.user), clock.Today(appClock))
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tMEAL\tFOOD\tKCAL\tP\tC\tF")
			for _, g := range service.GroupByMeal(entries) {
				for _, e := range g.Entries {
					var p, c, f float64
					if e.Nutrition != nil {
						p, c, f = e.Nutrition.ProteinG, e.Nutrition.CarbsG, e.Nutrition.FatG
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\n", e.ID, e.Meal, e.FoodName, e.Calories, p, c, f)
				}
			}
			return nil
		})
	},
}

var (
	editKcal int
	editName string
)

var mealEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the calories or name of a meal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("kcal") {
			return fmt.Errorf("--kcal is required")
		}
		return withLedger(cmd, func(s *session) error {
			updated, err := s.ledger.UpdateCalories(s.ctx, s.user, args[0], ledger.CaloriePatch{
				Calories: editKcal,
				FoodName: editName,
			})
			if err != nil {
				return err
			}
			if !updated {
				return fmt.Errorf("meal entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal entry %s\n", args[0])
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a meal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			removed, err := s.ledger.RemoveCalories(s.ctx, s.user, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("meal entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed meal entry %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealEditCmd, mealRemoveCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Food name (defaults to the catalog name with --food)")
	mealAddCmd.Flags().IntVar(&mealKcal, "kcal", 0, "Calories (defaults to the scaled catalog value with --food)")
	mealAddCmd.Flags().StringVar(&mealSlot, "meal", "", "Meal slot: breakfast, lunch, snack or dinner")
	mealAddCmd.Flags().StringVar(&mealFood, "food", "", "Catalog food id or barcode")
	mealAddCmd.Flags().Float64Var(&mealGrams, "grams", 100, "Grams eaten of --food")
	mealAddCmd.Flags().StringVar(&mealPortion, "portion", "", "Named common portion of --food instead of --grams")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams")

	mealEditCmd.Flags().IntVar(&editKcal, "kcal", 0, "New calories")
	mealEditCmd.Flags().StringVar(&editName, "name", "", "New food name (unchanged when empty)")
}

func mealInput(cmd *cobra.Command) (ledger.CalorieInput, error) {
	in := ledger.CalorieInput{
		FoodName: mealName,
		Calories: mealKcal,
		Meal:     model.MealSlot(strings.ToLower(strings.TrimSpace(mealSlot))),
	}
	if in.Meal == "" {
		return in, fmt.Errorf("--meal is required (breakfast, lunch, snack or dinner)")
	}
	if mealFood == "" {
		if !cmd.Flags().Changed("kcal") {
			return in, fmt.Errorf("--kcal is required without --food")
		}
		if mealProtein != 0 || mealCarbs != 0 || mealFat != 0 {
			in.Nutrition = &model.NutritionDetail{ProteinG: mealProtein, CarbsG: mealCarbs, FatG: mealFat}
		}
		return in, nil
	}

	item, ok := resolveFood(mealFood)
	if !ok {
		return in, fmt.Errorf("food %q not found in catalog", mealFood)
	}
	grams := mealGrams
	if mealPortion != "" {
		p, ok := food.Portion(item, mealPortion)
		if !ok {
			return in, fmt.Errorf("portion %q not found for %s", mealPortion, item.Name)
		}
		grams = p.Grams
	}
	if grams <= 0 {
		return in, fmt.Errorf("--grams must be > 0")
	}
	n := food.ScaleNutrition(item, grams)
	detail := n.Detail(grams)
	in.Nutrition = &detail
	if strings.TrimSpace(in.FoodName) == "" {
		in.FoodName = item.Name
	}
	if !cmd.Flags().Changed("kcal") {
		in.Calories = n.Calories
	}
	return in, nil
}

// resolveFood accepts a catalog id or a barcode.
func resolveFood(ref string) (model.FoodItem, bool) {
	if item, ok := food.ByID(ref); ok {
		return item, true
	}
	return food.LookupByCode(ref)
}
