package models

// Gender is used only for the BMR formula selection.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal is the user's fitness goal.
type Goal string

const (
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
)

// ActivityLevel feeds the TDEE multiplier lookup.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// EatingStyle overrides the macro ratio split for special diets.
type EatingStyle string

const (
	EatingStyleNone       EatingStyle = "none"
	EatingStyleKeto       EatingStyle = "keto"
	EatingStyleCarnivore  EatingStyle = "carnivore"
	EatingStyleGlutenFree EatingStyle = "gluten_free"
	EatingStyleVegan      EatingStyle = "vegan"
)

// UserProfile is the physiological profile collected during onboarding.
// Constructed and validated outside this core; treated as immutable here.
type UserProfile struct {
	Gender           Gender        `json:"gender"`
	HeightInches     float64       `json:"height_inches"`
	CurrentWeightLbs float64       `json:"current_weight_lbs"`
	GoalWeightLbs    float64       `json:"goal_weight_lbs"`
	Goal             Goal          `json:"goal"`
	ActivityLevel    ActivityLevel `json:"activity_level"`
	TimelineWeeks    float64       `json:"timeline_weeks"`
	EatingStyle      EatingStyle   `json:"eating_style"`
}

// FoodTags groups the five free-text tag categories a user can like or dislike.
type FoodTags struct {
	Cuisines []string `json:"cuisines"`
	Entrees  []string `json:"entrees"`
	Proteins []string `json:"proteins"`
	Sides    []string `json:"sides"`
	Flavors  []string `json:"flavors"`
}

// All returns every tag across the five categories in a fixed order.
func (t FoodTags) All() []string {
	out := make([]string, 0, len(t.Cuisines)+len(t.Entrees)+len(t.Proteins)+len(t.Sides)+len(t.Flavors))
	out = append(out, t.Cuisines...)
	out = append(out, t.Entrees...)
	out = append(out, t.Proteins...)
	out = append(out, t.Sides...)
	out = append(out, t.Flavors...)
	return out
}

// PreferenceProfile captures taste preferences, allergies, and dietary
// restrictions. Tags are free text; matching against meals is case-insensitive
// substring containment.
type PreferenceProfile struct {
	FoodLikes          FoodTags `json:"food_likes"`
	FoodDislikes       FoodTags `json:"food_dislikes"`
	Allergies          []string `json:"allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
}
