package models

// Meal is a single menu item with its nutrition facts. Sourced from the meal
// catalog; never mutated by the scoring engine. Description, AllergenTags and
// Tags are optional — a missing field degrades to empty rather than failing.
type Meal struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Restaurant   string   `json:"restaurant"`
	Calories     int      `json:"calories"`
	ProteinGrams int      `json:"protein_grams"`
	CarbsGrams   int      `json:"carbs_grams"`
	FatGrams     int      `json:"fat_grams"`
	Description  string   `json:"description,omitempty"`
	AllergenTags string   `json:"allergen_tags,omitempty"` // comma-separated
	Tags         []string `json:"tags,omitempty"`
}

// MacroTargets is a calorie/macro budget, either daily (one per user) or
// per-meal (daily divided by meal count). All fields are non-negative.
type MacroTargets struct {
	Calories     int `json:"calories"`
	ProteinGrams int `json:"protein_grams"`
	CarbsGrams   int `json:"carbs_grams"`
	FatGrams     int `json:"fat_grams"`
}
