package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/macromatch/backend/internal/models"
)

// CatalogStore persists the meal catalog as (:Meal) nodes linked to
// (:Restaurant) nodes.
type CatalogStore struct {
	client *Neo4jClient
}

// NewCatalogStore creates a catalog store on top of the Neo4j client.
func NewCatalogStore(client *Neo4jClient) *CatalogStore {
	return &CatalogStore{client: client}
}

const mealReturnClause = `
	RETURN m.id AS id,
		   m.name AS name,
		   r.name AS restaurant,
		   m.calories AS calories,
		   m.protein_grams AS protein_grams,
		   m.carbs_grams AS carbs_grams,
		   m.fat_grams AS fat_grams,
		   m.description AS description,
		   m.allergen_tags AS allergen_tags,
		   m.tags AS tags
`

// UpsertMeals writes a batch of meals in one UNWIND query, creating the
// restaurant nodes as needed. Meals without an id get one minted here.
func (s *CatalogStore) UpsertMeals(ctx context.Context, meals []models.Meal) (int, error) {
	if len(meals) == 0 {
		return 0, nil
	}

	rows := make([]map[string]interface{}, 0, len(meals))
	for _, meal := range meals {
		id := meal.ID
		if id == "" {
			id = uuid.NewString()
		}
		rows = append(rows, map[string]interface{}{
			"id":            id,
			"name":          meal.Name,
			"restaurant":    meal.Restaurant,
			"calories":      meal.Calories,
			"protein_grams": meal.ProteinGrams,
			"carbs_grams":   meal.CarbsGrams,
			"fat_grams":     meal.FatGrams,
			"description":   meal.Description,
			"allergen_tags": meal.AllergenTags,
			"tags":          meal.Tags,
		})
	}

	query := `
		UNWIND $rows AS row
		MERGE (r:Restaurant {name: row.restaurant})
		MERGE (m:Meal {id: row.id})
		SET m.name = row.name,
			m.calories = row.calories,
			m.protein_grams = row.protein_grams,
			m.carbs_grams = row.carbs_grams,
			m.fat_grams = row.fat_grams,
			m.description = row.description,
			m.allergen_tags = row.allergen_tags,
			m.tags = row.tags
		MERGE (r)-[:SERVES]->(m)
		RETURN count(m) AS upserted
	`

	results, err := s.client.ExecuteWriteWithResult(ctx, query, map[string]interface{}{"rows": rows})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert meals: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	upserted, _ := results[0]["upserted"].(int64)
	return int(upserted), nil
}

// AllMeals returns the full catalog.
func (s *CatalogStore) AllMeals(ctx context.Context) ([]models.Meal, error) {
	query := `
		MATCH (r:Restaurant)-[:SERVES]->(m:Meal)
	` + mealReturnClause + `
		ORDER BY r.name, m.name
	`
	results, err := s.client.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal catalog: %w", err)
	}
	return mealsFromRecords(results), nil
}

// MealsByRestaurant returns one restaurant's menu. Name matching is
// case-insensitive.
func (s *CatalogStore) MealsByRestaurant(ctx context.Context, restaurant string) ([]models.Meal, error) {
	query := `
		MATCH (r:Restaurant)-[:SERVES]->(m:Meal)
		WHERE toLower(r.name) = toLower($restaurant)
	` + mealReturnClause + `
		ORDER BY m.name
	`
	params := map[string]interface{}{"restaurant": restaurant}
	results, err := s.client.ExecuteRead(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to load meals for restaurant %s: %w", restaurant, err)
	}
	return mealsFromRecords(results), nil
}

// MealByID fetches a single meal.
func (s *CatalogStore) MealByID(ctx context.Context, id string) (models.Meal, error) {
	query := `
		MATCH (r:Restaurant)-[:SERVES]->(m:Meal {id: $id})
	` + mealReturnClause
	params := map[string]interface{}{"id": id}
	results, err := s.client.ExecuteRead(ctx, query, params)
	if err != nil {
		return models.Meal{}, fmt.Errorf("failed to load meal %s: %w", id, err)
	}
	if len(results) == 0 {
		return models.Meal{}, fmt.Errorf("meal %s not found", id)
	}
	return mealFromRecord(results[0]), nil
}

// CountMeals returns the catalog size, used to decide whether seeding is
// needed.
func (s *CatalogStore) CountMeals(ctx context.Context) (int, error) {
	results, err := s.client.ExecuteRead(ctx, `MATCH (m:Meal) RETURN count(m) AS total`, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	total, _ := results[0]["total"].(int64)
	return int(total), nil
}

// mealsFromRecords converts query records to meals. Missing optional fields
// degrade to empty values rather than failing the batch.
func mealsFromRecords(records []map[string]interface{}) []models.Meal {
	meals := make([]models.Meal, 0, len(records))
	for _, record := range records {
		meals = append(meals, mealFromRecord(record))
	}
	return meals
}

func mealFromRecord(record map[string]interface{}) models.Meal {
	return models.Meal{
		ID:           stringValue(record["id"]),
		Name:         stringValue(record["name"]),
		Restaurant:   stringValue(record["restaurant"]),
		Calories:     intValue(record["calories"]),
		ProteinGrams: intValue(record["protein_grams"]),
		CarbsGrams:   intValue(record["carbs_grams"]),
		FatGrams:     intValue(record["fat_grams"]),
		Description:  stringValue(record["description"]),
		AllergenTags: stringValue(record["allergen_tags"]),
		Tags:         stringSliceValue(record["tags"]),
	}
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func intValue(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func stringSliceValue(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
