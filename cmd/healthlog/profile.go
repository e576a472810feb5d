package healthlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/model"
	"github.com/saadjs/healthlog/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile that drives water and fasting goals",
}

var (
	profileName         string
	profileAge          int
	profileGender       string
	profileHeight       float64
	profileWeight       float64
	profileTarget       float64
	profileGoal         string
	profileProtocol     string
	profileFastingHours int
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Example: `  healthlog profile set --name Ana --weight 70 --goal reduce --protocol 16:8
  healthlog profile set --protocol custom --fasting-hours 14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			p, _, err := s.ledger.Profile(s.ctx)
			if err != nil {
				return err
			}
			if p.Goal == "" {
				p.Goal = model.GoalMaintain
			}
			if err := applyProfileFlags(cmd, &p); err != nil {
				return err
			}
			saved, err := s.ledger.SaveProfile(s.ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", saved.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal: %d ml\n", service.WaterGoalML(saved.CurrentWeightKg))
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(cmd, func(s *session) error {
			p, ok, err := s.ledger.Profile(s.ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "No profile configured (run `healthlog profile set`)")
				return nil
			}
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			if p.Age > 0 {
				fmt.Fprintf(out, "Age: %d\n", p.Age)
			}
			if p.Gender != "" {
				fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			}
			if p.HeightM > 0 {
				fmt.Fprintf(out, "Height: %.2f m\n", p.HeightM)
			}
			fmt.Fprintf(out, "Weight: %.1f kg", p.CurrentWeightKg)
			if p.TargetWeightKg > 0 {
				fmt.Fprintf(out, " (target %.1f kg)", p.TargetWeightKg)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			if p.FastingProtocol.Type != "" {
				fmt.Fprintf(out, "Fasting protocol: %s (%dh fasting / %dh eating)\n",
					p.FastingProtocol.Type, p.FastingProtocol.FastingHours, p.FastingProtocol.EatingHours)
			}
			fmt.Fprintf(out, "Since: %s\n", p.CreatedAt.Format("2006-01-02"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	f := profileSetCmd.Flags()
	f.StringVar(&profileName, "name", "", "Display name")
	f.IntVar(&profileAge, "age", 0, "Age in years")
	f.StringVar(&profileGender, "gender", "", "male or female")
	f.Float64Var(&profileHeight, "height", 0, "Height in meters")
	f.Float64Var(&profileWeight, "weight", 0, "Current weight in kg")
	f.Float64Var(&profileTarget, "target", 0, "Target weight in kg")
	f.StringVar(&profileGoal, "goal", "", "reduce, maintain or gain")
	f.StringVar(&profileProtocol, "protocol", "", "Fasting protocol: 16:8, 18:6, 20:4 or custom")
	f.IntVar(&profileFastingHours, "fasting-hours", 0, "Fasting hours for the custom protocol")
}

// applyProfileFlags copies only the flags the user passed onto p.
func applyProfileFlags(cmd *cobra.Command, p *model.UserProfile) error {
	f := cmd.Flags()
	if f.Changed("name") {
		p.Name = profileName
	}
	if f.Changed("age") {
		p.Age = profileAge
	}
	if f.Changed("gender") {
		g := model.Gender(strings.ToLower(strings.TrimSpace(profileGender)))
		if g != model.GenderMale && g != model.GenderFemale {
			return fmt.Errorf("invalid --gender %q (expected male or female)", profileGender)
		}
		p.Gender = g
	}
	if f.Changed("height") {
		p.HeightM = profileHeight
	}
	if f.Changed("weight") {
		p.CurrentWeightKg = profileWeight
	}
	if f.Changed("target") {
		p.TargetWeightKg = profileTarget
	}
	if f.Changed("goal") {
		p.Goal = model.Goal(strings.ToLower(strings.TrimSpace(profileGoal)))
	}
	if f.Changed("protocol") || f.Changed("fasting-hours") {
		value := profileProtocol
		if value == "" {
			value = "custom"
		}
		protocol, err := service.ParseProtocol(value, profileFastingHours)
		if err != nil {
			return err
		}
		p.FastingProtocol = protocol
	}
	return nil
}
