package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/macromatch/backend/internal/models"
)

type fakeCatalog struct {
	meals []models.Meal
	err   error
}

func (f *fakeCatalog) AllMeals(ctx context.Context) ([]models.Meal, error) {
	return f.meals, f.err
}

func (f *fakeCatalog) MealsByRestaurant(ctx context.Context, restaurant string) ([]models.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Meal
	for _, m := range f.meals {
		if strings.EqualFold(m.Restaurant, restaurant) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCatalog) MealByID(ctx context.Context, id string) (models.Meal, error) {
	if f.err != nil {
		return models.Meal{}, f.err
	}
	for _, m := range f.meals {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Meal{}, errors.New("not found")
}

func newTestService(meals []models.Meal, err error) *RecommendationService {
	return NewRecommendationService(&fakeCatalog{meals: meals, err: err}, zap.NewNop().Sugar())
}

func TestTargetsForProfile(t *testing.T) {
	svc := newTestService(nil, nil)
	daily, perMeal, err := svc.TargetsForProfile(baseProfile(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if daily.Calories <= 0 || daily.ProteinGrams <= 0 {
		t.Fatalf("implausible daily targets: %+v", daily)
	}
	if perMeal.Calories >= daily.Calories {
		t.Fatalf("per-meal calories %d should be below daily %d", perMeal.Calories, daily.Calories)
	}

	if _, _, err := svc.TargetsForProfile(models.UserProfile{}, 3); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}

func TestRecommendForUser(t *testing.T) {
	meals := []models.Meal{
		{ID: "a", Name: "Chicken Bowl", Restaurant: "Bowls", Calories: 620, ProteinGrams: 48, CarbsGrams: 60, FatGrams: 21},
		{ID: "b", Name: "Fries", Restaurant: "Burgers", Calories: 500, ProteinGrams: 6, CarbsGrams: 63, FatGrams: 25},
	}
	svc := newTestService(meals, nil)

	recs, perMeal, err := svc.RecommendForUser(context.Background(), baseProfile(), models.PreferenceProfile{}, RecommendOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perMeal.Calories <= 0 {
		t.Fatalf("missing per-meal targets")
	}
	if len(recs.All) != 2 {
		t.Fatalf("expected both meals scored, got %d", len(recs.All))
	}

	// Restaurant scoping narrows the catalog.
	recs, _, err = svc.RecommendForUser(context.Background(), baseProfile(), models.PreferenceProfile{}, RecommendOptions{Restaurant: "Bowls"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs.All) != 1 || recs.All[0].Meal.ID != "a" {
		t.Fatalf("expected only the Bowls meal, got %+v", recs.All)
	}
}

func TestRecommendForUser_CatalogError(t *testing.T) {
	svc := newTestService(nil, errors.New("connection reset"))
	_, _, err := svc.RecommendForUser(context.Background(), baseProfile(), models.PreferenceProfile{}, RecommendOptions{})
	if err == nil {
		t.Fatalf("expected catalog error to propagate")
	}
}

func TestScoreMealByID(t *testing.T) {
	meals := []models.Meal{
		{ID: "a", Name: "Chicken Bowl", Restaurant: "Bowls", Calories: 620, ProteinGrams: 48, CarbsGrams: 60, FatGrams: 21},
	}
	svc := newTestService(meals, nil)
	target := models.MacroTargets{Calories: 600, ProteinGrams: 45}

	scored, err := svc.ScoreMealByID(context.Background(), "a", target, models.PreferenceProfile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scored.Match.Score <= 0 {
		t.Fatalf("expected a positive score, got %d", scored.Match.Score)
	}

	if _, err := svc.ScoreMealByID(context.Background(), "missing", target, models.PreferenceProfile{}); err == nil {
		t.Fatalf("expected error for unknown meal id")
	}
}
