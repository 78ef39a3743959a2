package models

// Rating is the human-readable label derived from a match score.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGreat     Rating = "Great"
	RatingGood      Rating = "Good"
	RatingOkay      Rating = "Okay"
	RatingPoor      Rating = "Poor"
)

// ScoreBreakdown exposes the four weighted sub-scores (each 0–100) behind a
// match score.
type ScoreBreakdown struct {
	Calories     int `json:"calories"`
	Protein      int `json:"protein"`
	MacroBalance int `json:"macro_balance"`
	Preferences  int `json:"preferences"`
}

// Reasons holds the explanation strings for a score, ordered calories →
// protein → macro balance → preferences. Callers typically surface only the
// first entry of each list.
type Reasons struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// MatchInfo records which preference tags matched a meal and whether an
// allergy disqualified it.
type MatchInfo struct {
	MatchedLikes      []string `json:"matched_likes"`
	MatchedDislikes   []string `json:"matched_dislikes"`
	HasAllergen       bool     `json:"has_allergen"`
	AllergenTriggered string   `json:"allergen_triggered,omitempty"`
}

// MatchResult is the full scoring outcome for one (meal, targets, preferences)
// triple. It is a derived view computed on demand, never persisted.
type MatchResult struct {
	Score     int            `json:"score"` // 0–100
	Rating    Rating         `json:"rating"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reasons   Reasons        `json:"reasons"`
	MatchInfo MatchInfo      `json:"match_info"`
}

// ScoredMeal pairs a meal with its match result for ranking output.
type ScoredMeal struct {
	Meal  Meal        `json:"meal"`
	Match MatchResult `json:"match"`
}

// RankedRecommendations partitions a scored, descending-sorted catalog into
// display tiers. All holds the full sorted list including meals below the
// tiering floor; the three tiers cover scores >=50 only.
type RankedRecommendations struct {
	TopPicks     []ScoredMeal `json:"top_picks"`     // score >= 85
	GreatOptions []ScoredMeal `json:"great_options"` // 70 <= score < 85
	OtherOptions []ScoredMeal `json:"other_options"` // 50 <= score < 70
	All          []ScoredMeal `json:"all"`
}

// MacroRemaining mirrors MacroTargets but may go negative after subtracting a
// chosen meal from the remaining daily budget.
type MacroRemaining struct {
	Calories     int `json:"calories"`
	ProteinGrams int `json:"protein_grams"`
	CarbsGrams   int `json:"carbs_grams"`
	FatGrams     int `json:"fat_grams"`
}

// MacroPercents is a meal's percent contribution to the daily budget, one
// rounded percentage per field.
type MacroPercents struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// DailyFit summarizes how one chosen meal fits the user's remaining daily
// budget. A presentation helper, not part of ranking.
type DailyFit struct {
	Remaining      MacroRemaining `json:"remaining"`
	IsOverCalories bool           `json:"is_over_calories"`
	MeetsProtein   bool           `json:"meets_protein"`
	PercentOfDaily MacroPercents  `json:"percent_of_daily"`
}
