package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/model"
)

const (
	waterMLPerKg = 35

	// DefaultWaterGoalML applies until a profile with a weight exists.
	DefaultWaterGoalML = 2000
)

var protocolFastingHours = map[string]int{
	"16:8": 16,
	"18:6": 18,
	"20:4": 20,
}

// WaterGoalML is 35 ml per kg of body weight, rounded.
func WaterGoalML(weightKg float64) int {
	return int(math.Round(weightKg * waterMLPerKg))
}

// CalorieGoal is the stored override, or the fixed default.
func CalorieGoal(s model.Settings) int {
	if s.CalorieGoal > 0 {
		return s.CalorieGoal
	}
	return ledger.DefaultCalorieGoal
}

func FastingGoalMinutes(p model.FastingProtocol) int {
	hours := p.FastingHours
	if hours <= 0 {
		hours = protocolFastingHours[p.Type]
	}
	return hours * 60
}

// ParseProtocol accepts "16:8", "18:6", "20:4", or "custom" together with
// the custom fasting hours.
func ParseProtocol(value string, customHours int) (model.FastingProtocol, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if hours, ok := protocolFastingHours[value]; ok {
		return model.FastingProtocol{Type: value, FastingHours: hours, EatingHours: 24 - hours}, nil
	}
	if value != "custom" {
		return model.FastingProtocol{}, fmt.Errorf("unknown fasting protocol %q (expected 16:8, 18:6, 20:4 or custom)", value)
	}
	if customHours <= 0 || customHours >= 24 {
		return model.FastingProtocol{}, fmt.Errorf("custom fasting hours must be between 1 and 23")
	}
	return model.FastingProtocol{Type: value, FastingHours: customHours, EatingHours: 24 - customHours}, nil
}

// ProgressPercent is round(current/goal*100) clamped to [0, 100], and 0
// for a non-positive goal.
func ProgressPercent(current, goal float64) int {
	if goal <= 0 {
		return 0
	}
	p := math.Round(current / goal * 100)
	switch {
	case math.IsNaN(p) || p <= 0:
		return 0
	case p >= 100:
		return 100
	}
	return int(p)
}
