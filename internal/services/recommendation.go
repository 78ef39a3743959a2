package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/macromatch/backend/internal/models"
)

// MealCatalog supplies the meals available for recommendation. Implemented by
// the Neo4j-backed store; tests use an in-memory slice.
type MealCatalog interface {
	AllMeals(ctx context.Context) ([]models.Meal, error)
	MealsByRestaurant(ctx context.Context, restaurant string) ([]models.Meal, error)
	MealByID(ctx context.Context, id string) (models.Meal, error)
}

// RecommendationService ties the catalog store to the scoring engine for the
// HTTP layer.
type RecommendationService struct {
	catalog MealCatalog
	log     *zap.SugaredLogger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(catalog MealCatalog, log *zap.SugaredLogger) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		log:     log,
	}
}

// TargetsForProfile computes the daily macro budget for a profile and its
// per-meal split.
func (s *RecommendationService) TargetsForProfile(profile models.UserProfile, mealsPerDay int) (daily, perMeal models.MacroTargets, err error) {
	daily, err = ComputeDailyTargets(profile)
	if err != nil {
		return models.MacroTargets{}, models.MacroTargets{}, fmt.Errorf("compute daily targets: %w", err)
	}
	perMeal = ComputePerMealTargets(daily, mealsPerDay)
	return daily, perMeal, nil
}

// RecommendOptions narrows a recommendation request.
type RecommendOptions struct {
	Restaurant  string // empty means the whole catalog
	MealsPerDay int    // <=0 defaults to 3
}

// RecommendForUser loads the catalog, derives per-meal targets from the
// profile, and returns the tiered recommendations plus the targets the meals
// were scored against.
func (s *RecommendationService) RecommendForUser(ctx context.Context, profile models.UserProfile, prefs models.PreferenceProfile, opts RecommendOptions) (models.RankedRecommendations, models.MacroTargets, error) {
	_, perMeal, err := s.TargetsForProfile(profile, opts.MealsPerDay)
	if err != nil {
		return models.RankedRecommendations{}, models.MacroTargets{}, err
	}

	meals, err := s.loadMeals(ctx, opts.Restaurant)
	if err != nil {
		return models.RankedRecommendations{}, models.MacroTargets{}, err
	}

	recs := Recommend(meals, perMeal, prefs)
	s.log.Infow("generated recommendations",
		"restaurant", opts.Restaurant,
		"catalog_size", len(meals),
		"scored", len(recs.All),
		"top_picks", len(recs.TopPicks))
	return recs, perMeal, nil
}

// RankForUser is the flat ranking entry point: sorted scored meals at or
// above minScore, no tiering.
func (s *RecommendationService) RankForUser(ctx context.Context, profile models.UserProfile, prefs models.PreferenceProfile, opts RecommendOptions, minScore int) ([]models.ScoredMeal, models.MacroTargets, error) {
	_, perMeal, err := s.TargetsForProfile(profile, opts.MealsPerDay)
	if err != nil {
		return nil, models.MacroTargets{}, err
	}
	meals, err := s.loadMeals(ctx, opts.Restaurant)
	if err != nil {
		return nil, models.MacroTargets{}, err
	}
	return Rank(meals, perMeal, prefs, minScore), perMeal, nil
}

// ScoreMealByID scores one stored meal against explicit targets, for menu
// detail views.
func (s *RecommendationService) ScoreMealByID(ctx context.Context, id string, target models.MacroTargets, prefs models.PreferenceProfile) (models.ScoredMeal, error) {
	meal, err := s.catalog.MealByID(ctx, id)
	if err != nil {
		return models.ScoredMeal{}, fmt.Errorf("load meal %s: %w", id, err)
	}
	return models.ScoredMeal{Meal: meal, Match: ScoreMeal(meal, target, prefs)}, nil
}

func (s *RecommendationService) loadMeals(ctx context.Context, restaurant string) ([]models.Meal, error) {
	if restaurant != "" {
		meals, err := s.catalog.MealsByRestaurant(ctx, restaurant)
		if err != nil {
			return nil, fmt.Errorf("load meals for %s: %w", restaurant, err)
		}
		return meals, nil
	}
	meals, err := s.catalog.AllMeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return meals, nil
}
