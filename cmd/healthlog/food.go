package healthlog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/food"
	"github.com/saadjs/healthlog/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the built-in food reference",
}

var foodJSON bool

var foodSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search foods by name, brand or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := food.Search(strings.Join(args, " "))
		if foodJSON {
			return printJSON(cmd.OutOrStdout(), items, "food search")
		}
		printFoodTable(cmd.OutOrStdout(), items)
		return nil
	},
}

var foodCodeCmd = &cobra.Command{
	Use:   "code <barcode>",
	Short: "Look up a food by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := food.LookupByCode(strings.TrimSpace(args[0]))
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No food found for barcode %s\n", args[0])
			return nil
		}
		if foodJSON {
			return printJSON(cmd.OutOrStdout(), item, "food code")
		}
		printFoodTable(cmd.OutOrStdout(), []model.FoodItem{item})
		return nil
	},
}

var (
	showGrams   float64
	showPortion string
)

var foodShowCmd = &cobra.Command{
	Use:   "show <id|barcode>",
	Short: "Show nutrition for a portion of a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := resolveFood(args[0])
		if !ok {
			return fmt.Errorf("food %q not found in catalog", args[0])
		}
		grams := showGrams
		if showPortion != "" {
			p, ok := food.Portion(item, showPortion)
			if !ok {
				return fmt.Errorf("portion %q not found for %s", showPortion, item.Name)
			}
			grams = p.Grams
		}
		if grams <= 0 {
			return fmt.Errorf("--grams must be > 0")
		}
		n := food.ScaleNutrition(item, grams)
		if foodJSON {
			return printJSON(cmd.OutOrStdout(), n, "food show")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s) - %.0fg\n", item.Name, item.Category, grams)
		fmt.Fprintf(out, "Calories: %d kcal\n", n.Calories)
		fmt.Fprintf(out, "Protein: %.1fg | Carbs: %.1fg | Fat: %.1fg\n", n.ProteinG, n.CarbsG, n.FatG)
		fmt.Fprintf(out, "Fiber: %.1fg | Sugar: %.1fg | Sodium: %dmg\n", n.FiberG, n.SugarG, n.SodiumMg)
		fmt.Fprintln(out, "Portions:")
		for _, p := range item.CommonPortions {
			fmt.Fprintf(out, "- %s (%.0fg)\n", p.Name, p.Grams)
		}
		return nil
	},
}

var (
	suggestGoal     string
	suggestCategory string
)

var foodSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest foods for a weight goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			goal := model.Goal(strings.ToLower(strings.TrimSpace(suggestGoal)))
			if goal == "" {
				profile, ok, err := s.ledger.Profile(s.ctx)
				if err != nil {
					return err
				}
				goal = model.GoalMaintain
				if ok {
					goal = profile.Goal
				}
			}
			if !goal.Valid() {
				return fmt.Errorf("invalid --goal %q (expected reduce, maintain or gain)", suggestGoal)
			}
			items := food.Suggest(goal, model.FoodCategory(strings.ToLower(strings.TrimSpace(suggestCategory))))
			if foodJSON {
				return printJSON(cmd.OutOrStdout(), items, "food suggest")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suggestions for %s:\n", goal)
			printFoodTable(cmd.OutOrStdout(), items)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodCodeCmd, foodShowCmd, foodSuggestCmd)
	foodCmd.PersistentFlags().BoolVar(&foodJSON, "json", false, "Output as JSON")

	foodShowCmd.Flags().Float64Var(&showGrams, "grams", 100, "Grams to scale to")
	foodShowCmd.Flags().StringVar(&showPortion, "portion", "", "Named common portion instead of --grams")

	foodSuggestCmd.Flags().StringVar(&suggestGoal, "goal", "", "reduce, maintain or gain (default: profile goal)")
	foodSuggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Restrict to one food category")
}

func printFoodTable(w io.Writer, items []model.FoodItem) {
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tKCAL/100g\tP\tC\tF")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", item.ID, item.Name, item.Category, item.Calories, item.ProteinG, item.CarbsG, item.FatG)
	}
}

func printJSON(w io.Writer, v any, what string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s json: %w", what, err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}
