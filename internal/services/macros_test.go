package services

import (
	"math"
	"testing"

	"github.com/macromatch/backend/internal/models"
)

func baseProfile() models.UserProfile {
	return models.UserProfile{
		Gender:           models.GenderMale,
		HeightInches:     70,
		CurrentWeightLbs: 180,
		GoalWeightLbs:    170,
		Goal:             models.GoalMaintain,
		ActivityLevel:    models.ActivityModerate,
		TimelineWeeks:    12,
		EatingStyle:      models.EatingStyleNone,
	}
}

func TestComputeBMR_MifflinStJeor(t *testing.T) {
	profile := baseProfile()

	// 10*81.65kg + 6.25*177.8cm - 5*30 + 5
	male, err := ComputeBMR(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(male-1782.7) > 1 {
		t.Fatalf("male BMR = %.1f, want ~1782.7", male)
	}

	profile.Gender = models.GenderFemale
	female, err := ComputeBMR(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(female-(male-166)) > 0.001 {
		t.Fatalf("female BMR = %.1f, want male-166 = %.1f", female, male-166)
	}

	profile.Gender = models.GenderOther
	other, err := ComputeBMR(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(other-(male+female)/2) > 0.001 {
		t.Fatalf("other BMR = %.1f, want mean of male/female %.1f", other, (male+female)/2)
	}
}

func TestComputeBMR_RejectsNonPositiveInputs(t *testing.T) {
	profile := baseProfile()
	profile.CurrentWeightLbs = 0
	if _, err := ComputeBMR(profile); err == nil {
		t.Fatalf("expected error for zero weight")
	}

	profile = baseProfile()
	profile.HeightInches = -5
	if _, err := ComputeBMR(profile); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestComputeTDEE_Multipliers(t *testing.T) {
	profile := baseProfile()
	bmr, err := ComputeBMR(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		level models.ActivityLevel
		mult  float64
	}{
		{models.ActivitySedentary, 1.2},
		{models.ActivityLight, 1.375},
		{models.ActivityModerate, 1.55},
		{models.ActivityActive, 1.725},
		{models.ActivityVeryActive, 1.9},
		{models.ActivityLevel("couch"), 1.55}, // unrecognized falls back to moderate
	}
	for _, tc := range cases {
		profile.ActivityLevel = tc.level
		tdee, err := ComputeTDEE(profile)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.level, err)
		}
		if math.Abs(tdee-bmr*tc.mult) > 0.001 {
			t.Errorf("%s: TDEE = %.1f, want %.1f", tc.level, tdee, bmr*tc.mult)
		}
	}
}

func TestComputeDailyCalories(t *testing.T) {
	const tdee = 2500.0

	if got := ComputeDailyCalories(tdee, models.GoalMaintain, 180, 170, 12); got != tdee {
		t.Fatalf("maintain = %.1f, want TDEE %.1f", got, tdee)
	}

	// 10 lbs over 10 weeks: 10*3500/10/7 = 500/day deficit.
	if got := ComputeDailyCalories(tdee, models.GoalCut, 180, 170, 10); got != tdee-500 {
		t.Fatalf("cut = %.1f, want %.1f", got, tdee-500)
	}

	// Aggressive cut is capped at -750/day.
	if got := ComputeDailyCalories(tdee, models.GoalCut, 200, 150, 4); got != tdee-750 {
		t.Fatalf("capped cut = %.1f, want %.1f", got, tdee-750)
	}

	// Aggressive bulk is capped at +500/day.
	if got := ComputeDailyCalories(tdee, models.GoalBulk, 150, 200, 4); got != tdee+500 {
		t.Fatalf("capped bulk = %.1f, want %.1f", got, tdee+500)
	}

	// Non-positive timeline defaults to 12 weeks: 12*3500/12/7 = 500/day.
	if got := ComputeDailyCalories(tdee, models.GoalCut, 182, 170, 0); got != tdee-500 {
		t.Fatalf("default timeline cut = %.1f, want %.1f", got, tdee-500)
	}
}

func TestComputeMacros_GoalSplits(t *testing.T) {
	// Bulk at 2800 kcal, 180 lbs: ratio protein 210g beats the 180g floor.
	bulk := ComputeMacros(2800, models.GoalBulk, 180, models.EatingStyleNone)
	if bulk.ProteinGrams != 210 {
		t.Fatalf("bulk protein = %d, want 210", bulk.ProteinGrams)
	}
	if bulk.FatGrams != 78 {
		t.Fatalf("bulk fat = %d, want 78", bulk.FatGrams)
	}

	// Maintain at 2000 kcal, 200 lbs: the 0.8 g/lb floor (160g) beats the
	// 25% ratio (125g).
	maintain := ComputeMacros(2000, models.GoalMaintain, 200, models.EatingStyleNone)
	if maintain.ProteinGrams != 160 {
		t.Fatalf("maintain protein floor = %d, want 160", maintain.ProteinGrams)
	}
}

func TestComputeMacros_EatingStyleOverrides(t *testing.T) {
	keto := ComputeMacros(2000, models.GoalCut, 150, models.EatingStyleKeto)
	// Keto fat share is 70%: 2000*0.70/9.
	if keto.FatGrams != 156 {
		t.Fatalf("keto fat = %d, want 156", keto.FatGrams)
	}
	if keto.CarbsGrams > 30 {
		t.Fatalf("keto carbs = %d, want low carb residual", keto.CarbsGrams)
	}

	carnivore := ComputeMacros(2000, models.GoalCut, 150, models.EatingStyleCarnivore)
	if carnivore.CarbsGrams != 0 {
		t.Fatalf("carnivore carbs = %d, want 0", carnivore.CarbsGrams)
	}
}

func TestComputeMacros_CalorieIdentity(t *testing.T) {
	// protein*4 + carbs*4 + fat*9 stays within rounding tolerance (three
	// independently rounded gram fields) of the input calories.
	cases := []struct {
		calories float64
		goal     models.Goal
		weight   float64
		style    models.EatingStyle
	}{
		{2800, models.GoalBulk, 180, models.EatingStyleNone},
		{1800, models.GoalCut, 160, models.EatingStyleNone},
		{2200, models.GoalMaintain, 170, models.EatingStyleNone},
		{2000, models.GoalCut, 120, models.EatingStyleKeto},
	}
	for _, tc := range cases {
		m := ComputeMacros(tc.calories, tc.goal, tc.weight, tc.style)
		sum := m.ProteinGrams*4 + m.CarbsGrams*4 + m.FatGrams*9
		if math.Abs(float64(sum)-tc.calories) > 8 {
			t.Errorf("%s/%s at %.0f kcal: macro sum %d off by more than 8", tc.goal, tc.style, tc.calories, sum)
		}
	}
}

func TestComputeMacros_ClampsNegatives(t *testing.T) {
	m := ComputeMacros(-500, models.GoalBulk, -10, models.EatingStyleNone)
	if m.Calories != 0 || m.ProteinGrams != 0 || m.CarbsGrams != 0 || m.FatGrams != 0 {
		t.Fatalf("expected all-zero targets for negative input, got %+v", m)
	}
}

func TestComputePerMealTargets_Roundtrip(t *testing.T) {
	daily := models.MacroTargets{Calories: 2100, ProteinGrams: 166, CarbsGrams: 214, FatGrams: 62}

	for _, meals := range []int{2, 3, 4} {
		per := ComputePerMealTargets(daily, meals)
		tolerance := meals - 1
		checks := []struct {
			name           string
			daily, perMeal int
		}{
			{"calories", daily.Calories, per.Calories},
			{"protein", daily.ProteinGrams, per.ProteinGrams},
			{"carbs", daily.CarbsGrams, per.CarbsGrams},
			{"fat", daily.FatGrams, per.FatGrams},
		}
		for _, c := range checks {
			diff := c.perMeal*meals - c.daily
			if diff < -tolerance || diff > tolerance {
				t.Errorf("%d meals: %s %d*%d drifts %d from daily %d", meals, c.name, c.perMeal, meals, diff, c.daily)
			}
		}
	}
}

func TestComputePerMealTargets_DefaultsToThreeMeals(t *testing.T) {
	daily := models.MacroTargets{Calories: 2100, ProteinGrams: 150, CarbsGrams: 210, FatGrams: 60}
	if got := ComputePerMealTargets(daily, 0); got != ComputePerMealTargets(daily, 3) {
		t.Fatalf("zero meals should default to 3, got %+v", got)
	}
}

func TestComputeDailyTargets_PropagatesProfileError(t *testing.T) {
	profile := baseProfile()
	profile.HeightInches = 0
	if _, err := ComputeDailyTargets(profile); err == nil {
		t.Fatalf("expected error for invalid profile")
	}
}
