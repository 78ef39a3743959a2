package database

import (
	"context"
	"fmt"

	"github.com/macromatch/backend/internal/models"
)

// SeedMeals is the built-in demo catalog used when the store is empty and
// seeding is enabled. IDs are stable so re-seeding is idempotent.
var SeedMeals = []models.Meal{
	{
		ID: "chipotle-chicken-bowl", Name: "Chicken Burrito Bowl", Restaurant: "Chipotle",
		Calories: 665, ProteinGrams: 51, CarbsGrams: 58, FatGrams: 24,
		Description:  "Grilled chicken, white rice, black beans, fajita veggies, salsa",
		AllergenTags: "",
		Tags:         []string{"mexican", "bowl", "grilled"},
	},
	{
		ID: "chipotle-steak-salad", Name: "Steak Salad", Restaurant: "Chipotle",
		Calories: 480, ProteinGrams: 38, CarbsGrams: 22, FatGrams: 26,
		Description:  "Steak, supergreens, fajita veggies, cheese, guacamole",
		AllergenTags: "dairy",
		Tags:         []string{"mexican", "salad", "low-carb"},
	},
	{
		ID: "sweetgreen-harvest-bowl", Name: "Harvest Bowl", Restaurant: "Sweetgreen",
		Calories: 675, ProteinGrams: 30, CarbsGrams: 78, FatGrams: 28,
		Description:  "Roasted chicken, sweet potatoes, apples, goat cheese, wild rice, balsamic vinaigrette",
		AllergenTags: "dairy",
		Tags:         []string{"bowl", "seasonal"},
	},
	{
		ID: "sweetgreen-kale-caesar", Name: "Kale Caesar", Restaurant: "Sweetgreen",
		Calories: 430, ProteinGrams: 34, CarbsGrams: 22, FatGrams: 24,
		Description:  "Roasted chicken, chopped kale, parmesan crisps, caesar dressing",
		AllergenTags: "dairy, egg, fish",
		Tags:         []string{"salad", "caesar"},
	},
	{
		ID: "cava-greens-grains", Name: "Greens and Grains Bowl", Restaurant: "Cava",
		Calories: 610, ProteinGrams: 36, CarbsGrams: 55, FatGrams: 27,
		Description:  "Grilled chicken, saffron rice, arugula, hummus, tzatziki, pita crisps",
		AllergenTags: "dairy, gluten, sesame",
		Tags:         []string{"mediterranean", "bowl"},
	},
	{
		ID: "cava-spicy-lamb-bowl", Name: "Spicy Lamb Bowl", Restaurant: "Cava",
		Calories: 740, ProteinGrams: 40, CarbsGrams: 52, FatGrams: 40,
		Description:  "Braised lamb, brown rice, harissa, crazy feta, pickled onions",
		AllergenTags: "dairy",
		Tags:         []string{"mediterranean", "spicy", "bowl"},
	},
	{
		ID: "chickfila-grilled-sandwich", Name: "Grilled Chicken Sandwich", Restaurant: "Chick-fil-A",
		Calories: 390, ProteinGrams: 28, CarbsGrams: 44, FatGrams: 12,
		Description:  "Grilled chicken breast on a multigrain bun with lettuce and tomato",
		AllergenTags: "gluten, wheat, milk",
		Tags:         []string{"sandwich", "grilled"},
	},
	{
		ID: "chickfila-market-salad", Name: "Grilled Market Salad", Restaurant: "Chick-fil-A",
		Calories: 330, ProteinGrams: 27, CarbsGrams: 26, FatGrams: 14,
		Description:  "Grilled chicken, mixed greens, blue cheese, apples, berries, granola",
		AllergenTags: "dairy, tree nut, gluten",
		Tags:         []string{"salad", "fruit"},
	},
	{
		ID: "panera-turkey-avocado-blt", Name: "Turkey Avocado BLT", Restaurant: "Panera",
		Calories: 670, ProteinGrams: 34, CarbsGrams: 58, FatGrams: 33,
		Description:  "Roasted turkey, bacon, avocado, lettuce, tomato on sourdough",
		AllergenTags: "gluten, wheat, egg",
		Tags:         []string{"sandwich"},
	},
	{
		ID: "panera-med-bowl", Name: "Mediterranean Bowl", Restaurant: "Panera",
		Calories: 510, ProteinGrams: 15, CarbsGrams: 63, FatGrams: 23,
		Description:  "Cilantro lime brown rice, quinoa, hummus, greek olives, feta, tomatoes",
		AllergenTags: "dairy, sesame",
		Tags:         []string{"mediterranean", "bowl", "vegetarian"},
	},
	{
		ID: "fiveguys-hamburger", Name: "Hamburger", Restaurant: "Five Guys",
		Calories: 840, ProteinGrams: 39, CarbsGrams: 40, FatGrams: 55,
		Description:  "Two beef patties on a toasted sesame seed bun",
		AllergenTags: "gluten, wheat, sesame, soy",
		Tags:         []string{"burger", "beef"},
	},
	{
		ID: "poke-ahi-bowl", Name: "Ahi Tuna Poke Bowl", Restaurant: "Island Poke",
		Calories: 550, ProteinGrams: 42, CarbsGrams: 62, FatGrams: 13,
		Description:  "Ahi tuna, sushi rice, edamame, cucumber, ponzu",
		AllergenTags: "fish, soy, sesame",
		Tags:         []string{"poke", "bowl", "fish"},
	},
	{
		ID: "sweetgreen-shroomami", Name: "Shroomami Bowl", Restaurant: "Sweetgreen",
		Calories: 605, ProteinGrams: 22, CarbsGrams: 66, FatGrams: 29,
		Description:  "Warm portobello mix, organic tofu, wild rice, kale, miso sesame ginger dressing",
		AllergenTags: "soy, sesame, gluten",
		Tags:         []string{"bowl", "vegan", "vegetarian"},
	},
	{
		ID: "chipotle-carnitas-bowl", Name: "Carnitas Keto Bowl", Restaurant: "Chipotle",
		Calories: 590, ProteinGrams: 33, CarbsGrams: 14, FatGrams: 42,
		Description:  "Seared pork carnitas, supergreens, tomatillo salsa, cheese, guacamole",
		AllergenTags: "dairy",
		Tags:         []string{"mexican", "keto", "low-carb"},
	},
}

// EnsureSeeded upserts the demo catalog when the store has no meals yet.
// Returns the number of meals written, zero when the catalog already has data.
func (s *CatalogStore) EnsureSeeded(ctx context.Context) (int, error) {
	total, err := s.CountMeals(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}
	upserted, err := s.UpsertMeals(ctx, SeedMeals)
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return upserted, nil
}
