package model

import (
	"slices"
	"time"
)

// DefaultUserID is the only user a local ledger serves today.
const DefaultUserID = "local"

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealSnack     MealSlot = "snack"
	MealDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in the order a day is displayed.
var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealSnack, MealDinner}

func (m MealSlot) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
		return true
	}
	return false
}

type WaterEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AmountML  int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
}

type NutritionDetail struct {
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	FiberG   float64 `json:"fiber"`
	Grams    float64 `json:"grams"`
}

type CalorieEntry struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	FoodName  string           `json:"foodName"`
	Calories  int              `json:"calories"`
	Meal      MealSlot         `json:"meal"`
	Timestamp time.Time        `json:"timestamp"`
	Date      string           `json:"date"`
	Nutrition *NutritionDetail `json:"nutritionData,omitempty"`
}

type FastingSession struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	DurationMin *int       `json:"duration,omitempty"`
	Date        string     `json:"date"`
}

func (s FastingSession) Open() bool {
	return s.EndTime == nil
}

type Settings struct {
	CalorieGoal int `json:"calorieGoal"`
}

type Goal string

const (
	GoalReduce   Goal = "reduce"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalReduce, GoalMaintain, GoalGain:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type FastingProtocol struct {
	Type         string `json:"type"`
	FastingHours int    `json:"fastingHours"`
	EatingHours  int    `json:"eatingHours"`
}

type UserProfile struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          Gender          `json:"gender"`
	HeightM         float64         `json:"height"`
	CurrentWeightKg float64         `json:"currentWeight"`
	TargetWeightKg  float64         `json:"targetWeight"`
	Goal            Goal            `json:"goal"`
	FastingProtocol FastingProtocol `json:"fastingProtocol"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carbohydrate"
	CategoryFat       FoodCategory = "fat"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"
	CategoryDrink     FoodCategory = "drink"
	CategorySweet     FoodCategory = "sweet"
	CategoryProcessed FoodCategory = "processed"
)

type Portion struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

// FoodItem values are per 100g. Optional fields are nil when the catalog
// has no figure for them.
type FoodItem struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Brand          string       `json:"brand,omitempty"`
	Barcode        string       `json:"barcode,omitempty"`
	Calories       float64      `json:"calories"`
	ProteinG       float64      `json:"protein"`
	CarbsG         float64      `json:"carbs"`
	FatG           float64      `json:"fat"`
	FiberG         *float64     `json:"fiber,omitempty"`
	SugarG         *float64     `json:"sugar,omitempty"`
	SodiumMg       *float64     `json:"sodium,omitempty"`
	Category       FoodCategory `json:"category"`
	CommonPortions []Portion    `json:"commonPortions"`
}

// Day returns the calendar-day key the record is filed under.
func (e WaterEntry) Day() string { return e.Date }

func (e CalorieEntry) Day() string { return e.Date }

func (s FastingSession) Day() string { return s.Date }

// Clone methods return copies that share no pointers or slices with the
// receiver.

func (e WaterEntry) Clone() WaterEntry { return e }

func (e CalorieEntry) Clone() CalorieEntry {
	if e.Nutrition != nil {
		n := *e.Nutrition
		e.Nutrition = &n
	}
	return e
}

func (s FastingSession) Clone() FastingSession {
	if s.EndTime != nil {
		end := *s.EndTime
		s.EndTime = &end
	}
	if s.DurationMin != nil {
		d := *s.DurationMin
		s.DurationMin = &d
	}
	return s
}

func (f FoodItem) Clone() FoodItem {
	f.FiberG = clonePtr(f.FiberG)
	f.SugarG = clonePtr(f.SugarG)
	f.SodiumMg = clonePtr(f.SodiumMg)
	f.CommonPortions = slices.Clone(f.CommonPortions)
	return f
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
