package services

import (
	"strings"

	"github.com/macromatch/backend/internal/models"
)

const preferenceBaseScore = 80

// allergenSynonyms maps a declared allergy to the keywords that trigger it in
// a meal's allergen tag string. Allergies not in the table match on their own
// name only.
var allergenSynonyms = map[string][]string{
	"dairy":     {"dairy", "milk", "cheese", "cream", "butter"},
	"gluten":    {"gluten", "wheat", "bread", "bun"},
	"peanut":    {"peanut"},
	"tree nut":  {"tree nut", "almond", "cashew", "walnut", "pecan", "pistachio", "hazelnut"},
	"shellfish": {"shellfish", "shrimp", "crab", "lobster", "oyster"},
	"fish":      {"fish", "salmon", "tuna", "cod", "anchovy"},
	"egg":       {"egg"},
	"soy":       {"soy", "tofu", "edamame"},
	"sesame":    {"sesame", "tahini"},
}

// PreferenceMatch is the outcome of evaluating one meal against a user's
// preference profile.
type PreferenceMatch struct {
	Score             int
	MatchedLikes      []string
	MatchedDislikes   []string
	HasAllergen       bool
	AllergenTriggered string
}

// allergenKeywords resolves a declared allergy to its trigger keywords.
func allergenKeywords(allergy string) []string {
	key := strings.ToLower(strings.TrimSpace(allergy))
	if key == "" {
		return nil
	}
	if kws, ok := allergenSynonyms[key]; ok {
		return kws
	}
	return []string{key}
}

// mealAllergenHit returns the first declared allergy whose keywords appear in
// the meal's allergen tag string.
func mealAllergenHit(meal models.Meal, allergies []string) (string, bool) {
	tags := strings.ToLower(meal.AllergenTags)
	if tags == "" {
		return "", false
	}
	for _, allergy := range allergies {
		for _, kw := range allergenKeywords(allergy) {
			if strings.Contains(tags, kw) {
				return allergy, true
			}
		}
	}
	return "", false
}

// mealTextBlob builds the lowercase haystack preference tags are matched
// against: name + description + tags.
func mealTextBlob(meal models.Meal) string {
	parts := make([]string, 0, 2+len(meal.Tags))
	parts = append(parts, meal.Name, meal.Description)
	parts = append(parts, meal.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// EvaluatePreferences scores a meal against a preference profile. An allergy
// hit disqualifies immediately with score 0, before any taste scoring.
// Otherwise the score starts at a generous 80 and moves +/-10 per matched
// like/dislike tag, clamped to [0,100].
//
// Matching is case-insensitive substring containment, not word-boundary
// matching, so a tag that happens to be a substring of an unrelated word will
// match ("ham" matches "Hamburger").
func EvaluatePreferences(meal models.Meal, prefs models.PreferenceProfile) PreferenceMatch {
	if allergy, hit := mealAllergenHit(meal, prefs.Allergies); hit {
		return PreferenceMatch{
			Score:             0,
			HasAllergen:       true,
			AllergenTriggered: allergy,
		}
	}

	blob := mealTextBlob(meal)
	result := PreferenceMatch{Score: preferenceBaseScore}

	for _, tag := range prefs.FoodLikes.All() {
		needle := strings.ToLower(strings.TrimSpace(tag))
		if needle == "" {
			continue
		}
		if strings.Contains(blob, needle) {
			result.Score += 10
			result.MatchedLikes = append(result.MatchedLikes, tag)
		}
	}
	for _, tag := range prefs.FoodDislikes.All() {
		needle := strings.ToLower(strings.TrimSpace(tag))
		if needle == "" {
			continue
		}
		if strings.Contains(blob, needle) {
			result.Score -= 10
			result.MatchedDislikes = append(result.MatchedDislikes, tag)
		}
	}

	if result.Score > 100 {
		result.Score = 100
	}
	if result.Score < 0 {
		result.Score = 0
	}
	return result
}
