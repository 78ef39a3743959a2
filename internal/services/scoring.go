package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/macromatch/backend/internal/models"
)

// Sub-score weights. Protein is weighted heaviest: the product cares more
// about protein sufficiency than exact calorie matching.
const (
	weightCalories     = 0.30
	weightProtein      = 0.35
	weightMacroBalance = 0.20
	weightPreferences  = 0.15
)

// ScoreMeal combines calorie fit, protein fit, macro balance, and preference
// fit into a single 0-100 match score with a rating and ordered reasons.
// Reasons accumulate in the fixed order calories, protein, macro balance,
// preferences; callers typically surface only the first of each list.
func ScoreMeal(meal models.Meal, target models.MacroTargets, prefs models.PreferenceProfile) models.MatchResult {
	var reasons models.Reasons

	calScore := scoreCalories(meal, target, &reasons)
	proteinScore := scoreProtein(meal, target, &reasons)
	balanceScore := scoreMacroBalance(meal, &reasons)

	prefMatch := EvaluatePreferences(meal, prefs)
	prefScore := float64(prefMatch.Score)
	if prefMatch.HasAllergen {
		// Ranking excludes allergen hits before scoring; this zero is a
		// safety net for direct callers.
		reasons.Negative = append(reasons.Negative,
			fmt.Sprintf("Contains an allergen you avoid (%s)", prefMatch.AllergenTriggered))
	} else {
		if len(prefMatch.MatchedLikes) > 0 {
			reasons.Positive = append(reasons.Positive,
				fmt.Sprintf("Matches your tastes: %s", strings.Join(prefMatch.MatchedLikes, ", ")))
		}
		if len(prefMatch.MatchedDislikes) > 0 {
			reasons.Negative = append(reasons.Negative,
				fmt.Sprintf("Includes things you dislike: %s", strings.Join(prefMatch.MatchedDislikes, ", ")))
		}
	}

	total := calScore*weightCalories +
		proteinScore*weightProtein +
		balanceScore*weightMacroBalance +
		prefScore*weightPreferences
	score := clampScore(int(math.Round(total)))

	return models.MatchResult{
		Score:  score,
		Rating: RatingForScore(score),
		Breakdown: models.ScoreBreakdown{
			Calories:     clampScore(int(math.Round(calScore))),
			Protein:      clampScore(int(math.Round(proteinScore))),
			MacroBalance: clampScore(int(math.Round(balanceScore))),
			Preferences:  clampScore(prefMatch.Score),
		},
		Reasons: reasons,
		MatchInfo: models.MatchInfo{
			MatchedLikes:      prefMatch.MatchedLikes,
			MatchedDislikes:   prefMatch.MatchedDislikes,
			HasAllergen:       prefMatch.HasAllergen,
			AllergenTriggered: prefMatch.AllergenTriggered,
		},
	}
}

// RatingForScore maps a 0-100 match score to its display label.
func RatingForScore(score int) models.Rating {
	switch {
	case score >= 90:
		return models.RatingExcellent
	case score >= 80:
		return models.RatingGreat
	case score >= 70:
		return models.RatingGood
	case score >= 60:
		return models.RatingOkay
	default:
		return models.RatingPoor
	}
}

// scoreCalories grades the meal's calories against the per-meal target with a
// piecewise decay over the absolute percent difference. The reason text uses
// the signed difference for over/under direction.
func scoreCalories(meal models.Meal, target models.MacroTargets, reasons *models.Reasons) float64 {
	if target.Calories <= 0 {
		return 50
	}

	diff := meal.Calories - target.Calories
	pctDiff := math.Abs(float64(diff)) / float64(target.Calories)
	over := diff > 0

	direction := func(overWord, underWord string) string {
		if over {
			return overWord
		}
		return underWord
	}

	switch {
	case pctDiff <= 0.20:
		reasons.Positive = append(reasons.Positive,
			fmt.Sprintf("Fits your calorie target (%d cal)", meal.Calories))
		return 100
	case pctDiff <= 0.35:
		if pctDiff > 0.30 {
			reasons.Negative = append(reasons.Negative,
				fmt.Sprintf("A bit %s your calorie target", direction("over", "under")))
		}
		return 85 - (pctDiff-0.20)*50
	case pctDiff <= 0.50:
		reasons.Negative = append(reasons.Negative,
			fmt.Sprintf("%s your calorie target by about %d%%",
				direction("Over", "Under"), int(math.Round(pctDiff*100))))
		return 70 - (pctDiff-0.35)*60
	default:
		reasons.Negative = append(reasons.Negative,
			fmt.Sprintf("%s calorie than your target", direction("Higher", "Lower")))
		return math.Max(40, 60-(pctDiff-0.50)*40)
	}
}

// scoreProtein grades protein against target. Meeting or exceeding the target
// is a perfect sub-score; shortfalls decay by percent deficit. Scored more
// generously than calories on purpose.
func scoreProtein(meal models.Meal, target models.MacroTargets, reasons *models.Reasons) float64 {
	deficit := target.ProteinGrams - meal.ProteinGrams
	if deficit <= 0 {
		reasons.Positive = append(reasons.Positive,
			fmt.Sprintf("Protein hits your target (%dg)", meal.ProteinGrams))
		return 100
	}

	pctDiff := float64(deficit) / float64(target.ProteinGrams)
	switch {
	case pctDiff <= 0.15:
		reasons.Positive = append(reasons.Positive,
			fmt.Sprintf("Protein close to your target (%dg)", meal.ProteinGrams))
		return 95
	case pctDiff <= 0.25:
		reasons.Positive = append(reasons.Positive,
			fmt.Sprintf("%dg of protein", meal.ProteinGrams))
		return 85
	case pctDiff <= 0.40:
		if pctDiff > 0.35 {
			reasons.Negative = append(reasons.Negative, "Protein a bit below your target")
		}
		return 70
	default:
		reasons.Negative = append(reasons.Negative, "Lower protein than your target")
		return math.Max(45, 65-pctDiff*40)
	}
}

// scoreMacroBalance awards band points for each macro's share of total macro
// calories: 40 for protein in [20%,40%], 30 for carbs in [25%,55%], 30 for
// fat in [20%,40%]. A meal with no macro calories defaults to 50.
func scoreMacroBalance(meal models.Meal, reasons *models.Reasons) float64 {
	total := float64(meal.ProteinGrams*4 + meal.CarbsGrams*4 + meal.FatGrams*9)
	if total == 0 {
		return 50
	}

	proteinPct := float64(meal.ProteinGrams*4) / total
	carbPct := float64(meal.CarbsGrams*4) / total
	fatPct := float64(meal.FatGrams*9) / total

	score := 0.0
	if proteinPct >= 0.20 && proteinPct <= 0.40 {
		score += 40
	}
	if carbPct >= 0.25 && carbPct <= 0.55 {
		score += 30
	}
	if fatPct >= 0.20 && fatPct <= 0.40 {
		score += 30
	}

	if score >= 80 {
		reasons.Positive = append(reasons.Positive, "Well-balanced macros")
	}
	// Fat check takes priority when both excesses apply.
	if fatPct > 0.45 {
		reasons.Negative = append(reasons.Negative, "High in fat for its size")
	} else if carbPct > 0.60 {
		reasons.Negative = append(reasons.Negative, "High in carbs for its size")
	}
	return score
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
