package services

import (
	"math"
	"sort"
	"strings"

	"github.com/macromatch/backend/internal/models"
)

// Tier thresholds for the recommended-for-you view. Meals below
// tierFloorScore are dropped from all tiers.
const (
	tierTopScore   = 85
	tierGreatScore = 70
	tierFloorScore = 50

	// DefaultMinScore is the cutoff for the general-purpose ranking entry
	// point.
	DefaultMinScore = 50
)

// meatKeywords disqualify a meal for vegetarian/vegan users when found in the
// meal's name or tags.
var meatKeywords = []string{"chicken", "beef", "pork", "steak", "turkey", "ham", "bacon", "fish"}

const ketoCarbLimitGrams = 30

// excludedByDiet reports whether a declared dietary preference rules the meal
// out: vegetarian/vegan excludes meat-keyword meals, keto/low-carb excludes
// anything over 30g carbs. Keyword checks are substring containment, same
// semantics as preference matching.
func excludedByDiet(meal models.Meal, dietaryPreferences []string) bool {
	haystack := strings.ToLower(meal.Name + " " + strings.Join(meal.Tags, " "))
	for _, pref := range dietaryPreferences {
		p := strings.ToLower(strings.TrimSpace(pref))
		switch {
		case strings.Contains(p, "vegetarian") || strings.Contains(p, "vegan"):
			for _, kw := range meatKeywords {
				if strings.Contains(haystack, kw) {
					return true
				}
			}
		case strings.Contains(p, "keto") || strings.Contains(p, "low-carb") || strings.Contains(p, "low carb"):
			if meal.CarbsGrams > ketoCarbLimitGrams {
				return true
			}
		}
	}
	return false
}

// filterCatalog removes meals that violate an allergy or dietary restriction.
// This pass is the authoritative enforcement of allergy safety, independent of
// the scorer's internal check.
func filterCatalog(catalog []models.Meal, prefs models.PreferenceProfile) []models.Meal {
	out := make([]models.Meal, 0, len(catalog))
	for _, meal := range catalog {
		if _, hit := mealAllergenHit(meal, prefs.Allergies); hit {
			continue
		}
		if excludedByDiet(meal, prefs.DietaryPreferences) {
			continue
		}
		out = append(out, meal)
	}
	return out
}

// scoreAndSort scores every surviving meal and sorts descending by match
// score. The sort is stable: ties keep catalog order, and that input order is
// the documented tiebreak.
func scoreAndSort(catalog []models.Meal, target models.MacroTargets, prefs models.PreferenceProfile) []models.ScoredMeal {
	scored := make([]models.ScoredMeal, 0, len(catalog))
	for _, meal := range filterCatalog(catalog, prefs) {
		scored = append(scored, models.ScoredMeal{
			Meal:  meal,
			Match: ScoreMeal(meal, target, prefs),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Match.Score > scored[j].Match.Score
	})
	return scored
}

// Rank filters, scores, and sorts a catalog against per-meal targets, then
// drops meals below minScore. A non-positive minScore falls back to the
// default of 50.
func Rank(catalog []models.Meal, target models.MacroTargets, prefs models.PreferenceProfile, minScore int) []models.ScoredMeal {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	scored := scoreAndSort(catalog, target, prefs)
	out := make([]models.ScoredMeal, 0, len(scored))
	for _, s := range scored {
		if s.Match.Score >= minScore {
			out = append(out, s)
		}
	}
	return out
}

// Recommend filters, scores, and sorts a catalog, then partitions the full
// sorted set into display tiers: top picks (>=85), great options ([70,85)),
// other options ([50,70)). Meals below 50 appear only in All.
func Recommend(catalog []models.Meal, target models.MacroTargets, prefs models.PreferenceProfile) models.RankedRecommendations {
	scored := scoreAndSort(catalog, target, prefs)
	recs := models.RankedRecommendations{
		TopPicks:     []models.ScoredMeal{},
		GreatOptions: []models.ScoredMeal{},
		OtherOptions: []models.ScoredMeal{},
		All:          scored,
	}
	for _, s := range scored {
		switch {
		case s.Match.Score >= tierTopScore:
			recs.TopPicks = append(recs.TopPicks, s)
		case s.Match.Score >= tierGreatScore:
			recs.GreatOptions = append(recs.GreatOptions, s)
		case s.Match.Score >= tierFloorScore:
			recs.OtherOptions = append(recs.OtherOptions, s)
		}
	}
	return recs
}

// ComputeDailyFit summarizes how a chosen meal fits the remaining daily
// budget: what is left after eating it, whether it overshoots calories,
// whether it meaningfully contributes protein (>=30% of the pre-subtraction
// budget), and each macro's percent of the daily total.
func ComputeDailyFit(meal models.Meal, dailyBudget models.MacroTargets) models.DailyFit {
	remaining := models.MacroRemaining{
		Calories:     dailyBudget.Calories - meal.Calories,
		ProteinGrams: dailyBudget.ProteinGrams - meal.ProteinGrams,
		CarbsGrams:   dailyBudget.CarbsGrams - meal.CarbsGrams,
		FatGrams:     dailyBudget.FatGrams - meal.FatGrams,
	}
	return models.DailyFit{
		Remaining:      remaining,
		IsOverCalories: remaining.Calories < 0,
		MeetsProtein:   float64(meal.ProteinGrams) >= 0.3*float64(dailyBudget.ProteinGrams),
		PercentOfDaily: models.MacroPercents{
			Calories: percentOfDaily(meal.Calories, remaining.Calories),
			Protein:  percentOfDaily(meal.ProteinGrams, remaining.ProteinGrams),
			Carbs:    percentOfDaily(meal.CarbsGrams, remaining.CarbsGrams),
			Fat:      percentOfDaily(meal.FatGrams, remaining.FatGrams),
		},
	}
}

// percentOfDaily is meal/(remaining+meal)*100 rounded to an int; the
// denominator is the pre-subtraction budget. Zero budget yields zero.
func percentOfDaily(mealValue, remainingValue int) int {
	total := remainingValue + mealValue
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(mealValue) / float64(total) * 100))
}
