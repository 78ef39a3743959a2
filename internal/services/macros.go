package services

import (
	"fmt"
	"math"

	"github.com/macromatch/backend/internal/models"
)

const (
	lbsPerKg     = 2.20462
	cmPerInch    = 2.54
	assumedAge   = 30 // profiles carry no age; Mifflin-St Jeor needs one
	kcalPerPound = 3500.0

	defaultTimelineWeeks = 12.0
	bulkDailySurplusCap  = 500.0
	cutDailyDeficitCap   = 750.0

	// DefaultMealsPerDay is the assumed meal count when dividing a daily
	// budget into per-meal targets.
	DefaultMealsPerDay = 3
)

// activityMultipliers maps activity level to its TDEE multiplier. Unrecognized
// levels fall back to moderate.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// macroSplit is a protein-per-pound floor plus the protein/carb/fat shares of
// total calories for one goal.
type macroSplit struct {
	proteinPerLb float64
	proteinRatio float64
	carbRatio    float64
	fatRatio     float64
}

var goalSplits = map[models.Goal]macroSplit{
	models.GoalBulk:     {proteinPerLb: 1.0, proteinRatio: 0.30, carbRatio: 0.45, fatRatio: 0.25},
	models.GoalCut:      {proteinPerLb: 1.2, proteinRatio: 0.35, carbRatio: 0.35, fatRatio: 0.30},
	models.GoalMaintain: {proteinPerLb: 0.8, proteinRatio: 0.25, carbRatio: 0.45, fatRatio: 0.30},
}

// ComputeBMR derives basal metabolic rate (kcal/day) from the profile via the
// Mifflin-St Jeor equation on metric-converted weight and height, assuming age
// 30. Gender "other" averages the male and female formulas.
func ComputeBMR(profile models.UserProfile) (float64, error) {
	if profile.CurrentWeightLbs <= 0 || profile.HeightInches <= 0 {
		return 0, fmt.Errorf("bmr requires positive weight and height, got %.1f lbs / %.1f in",
			profile.CurrentWeightLbs, profile.HeightInches)
	}

	kg := profile.CurrentWeightLbs / lbsPerKg
	cm := profile.HeightInches * cmPerInch
	base := 10*kg + 6.25*cm - 5*assumedAge

	switch profile.Gender {
	case models.GenderMale:
		return base + 5, nil
	case models.GenderFemale:
		return base - 161, nil
	default:
		return ((base + 5) + (base - 161)) / 2, nil
	}
}

// ComputeTDEE scales BMR by the activity multiplier for the profile's level.
func ComputeTDEE(profile models.UserProfile) (float64, error) {
	bmr, err := ComputeBMR(profile)
	if err != nil {
		return 0, err
	}
	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivityModerate]
	}
	return bmr * mult, nil
}

// ComputeDailyCalories adjusts TDEE toward the goal weight. The weekly
// adjustment is the total weight delta spread over the timeline at 3500 kcal
// per pound; the resulting daily adjustment is capped at +500 for a bulk and
// -750 for a cut. Maintain returns TDEE unchanged. A non-positive timeline
// defaults to 12 weeks.
func ComputeDailyCalories(tdee float64, goal models.Goal, currentWeightLbs, goalWeightLbs, timelineWeeks float64) float64 {
	if goal == models.GoalMaintain {
		return tdee
	}

	weeks := timelineWeeks
	if weeks <= 0 {
		weeks = defaultTimelineWeeks
	}
	dailyAdjustment := math.Abs(goalWeightLbs-currentWeightLbs) * kcalPerPound / weeks / 7

	switch goal {
	case models.GoalBulk:
		return tdee + math.Min(dailyAdjustment, bulkDailySurplusCap)
	case models.GoalCut:
		return math.Max(0, tdee-math.Min(dailyAdjustment, cutDailyDeficitCap))
	default:
		return tdee
	}
}

// ComputeMacros splits a daily calorie budget into macro grams. Protein is a
// floor of max(weight*perLb, calories*proteinRatio/4), fat comes from its
// ratio, and carbs absorb the remainder, floored at zero. Keto and carnivore
// eating styles override the ratios but not the protein-per-pound floor.
// Protein and fat have firmer physiological minimums, so they are fixed first
// and carbs take the rounding slack.
func ComputeMacros(calories float64, goal models.Goal, weightLbs float64, style models.EatingStyle) models.MacroTargets {
	if calories < 0 {
		calories = 0
	}
	if weightLbs < 0 {
		weightLbs = 0
	}

	split, ok := goalSplits[goal]
	if !ok {
		split = goalSplits[models.GoalMaintain]
	}
	switch style {
	case models.EatingStyleKeto:
		split.proteinRatio, split.carbRatio, split.fatRatio = 0.25, 0.05, 0.70
	case models.EatingStyleCarnivore:
		split.proteinRatio, split.carbRatio, split.fatRatio = 0.35, 0, 0.65
	}

	protein := math.Max(weightLbs*split.proteinPerLb, calories*split.proteinRatio/4)
	fat := calories * split.fatRatio / 9
	carbs := math.Max(0, (calories-protein*4-fat*9)/4)

	return models.MacroTargets{
		Calories:     roundNonNegative(calories),
		ProteinGrams: roundNonNegative(protein),
		CarbsGrams:   roundNonNegative(carbs),
		FatGrams:     roundNonNegative(fat),
	}
}

// ComputeDailyTargets runs the full pipeline from profile to a daily macro
// budget.
func ComputeDailyTargets(profile models.UserProfile) (models.MacroTargets, error) {
	tdee, err := ComputeTDEE(profile)
	if err != nil {
		return models.MacroTargets{}, err
	}
	calories := ComputeDailyCalories(tdee, profile.Goal, profile.CurrentWeightLbs, profile.GoalWeightLbs, profile.TimelineWeeks)
	return ComputeMacros(calories, profile.Goal, profile.CurrentWeightLbs, profile.EatingStyle), nil
}

// ComputePerMealTargets divides a daily budget across the given meal count.
// Each field divides and rounds independently, which introduces a small
// accepted drift when multiplied back out. Non-positive meal counts default
// to 3.
func ComputePerMealTargets(daily models.MacroTargets, mealsPerDay int) models.MacroTargets {
	if mealsPerDay <= 0 {
		mealsPerDay = DefaultMealsPerDay
	}
	n := float64(mealsPerDay)
	return models.MacroTargets{
		Calories:     roundNonNegative(float64(daily.Calories) / n),
		ProteinGrams: roundNonNegative(float64(daily.ProteinGrams) / n),
		CarbsGrams:   roundNonNegative(float64(daily.CarbsGrams) / n),
		FatGrams:     roundNonNegative(float64(daily.FatGrams) / n),
	}
}

func roundNonNegative(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
