package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macromatch/backend/internal/models"
	"github.com/macromatch/backend/internal/services"
)

// APIHandler handles all API requests.
type APIHandler struct {
	recommendationService *services.RecommendationService
	catalog               services.MealCatalog
	health                func(ctx context.Context) error
	log                   *zap.SugaredLogger
}

// NewAPIHandler creates a new API handler. healthCheck probes the backing
// store for the health endpoint.
func NewAPIHandler(recommendationService *services.RecommendationService, catalog services.MealCatalog, healthCheck func(ctx context.Context) error, log *zap.SugaredLogger) *APIHandler {
	return &APIHandler{
		recommendationService: recommendationService,
		catalog:               catalog,
		health:                healthCheck,
		log:                   log,
	}
}

// SetupRoutes configures all API routes.
func (h *APIHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/targets", h.ComputeTargets)
		api.POST("/recommendations", h.GetRecommendations)
		api.POST("/rankings", h.GetRankings)
		api.POST("/score", h.ScoreMeal)
		api.POST("/daily-fit", h.GetDailyFit)
		api.GET("/meals", h.ListMeals)
		api.GET("/meals/:id", h.GetMeal)
		api.GET("/restaurants/:name/meals", h.ListRestaurantMeals)
		api.GET("/health", h.Health)
	}
}

// TargetsRequest carries a profile plus the meal count to split the day over.
type TargetsRequest struct {
	Profile     models.UserProfile `json:"profile" binding:"required"`
	MealsPerDay int                `json:"meals_per_day"`
}

// ComputeTargets returns the daily macro budget for a profile and its
// per-meal split.
func (h *APIHandler) ComputeTargets(c *gin.Context) {
	var req TargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid targets request: " + err.Error()})
		return
	}

	daily, perMeal, err := h.recommendationService.TargetsForProfile(req.Profile, req.MealsPerDay)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily":    daily,
		"per_meal": perMeal,
	})
}

// RecommendationsRequest asks for tiered recommendations over the stored
// catalog, optionally scoped to one restaurant.
type RecommendationsRequest struct {
	Profile     models.UserProfile       `json:"profile" binding:"required"`
	Preferences models.PreferenceProfile `json:"preferences"`
	Restaurant  string                   `json:"restaurant"`
	MealsPerDay int                      `json:"meals_per_day"`
}

// GetRecommendations returns the tiered "recommended for you" view.
func (h *APIHandler) GetRecommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendations request: " + err.Error()})
		return
	}

	recs, perMeal, err := h.recommendationService.RecommendForUser(c.Request.Context(), req.Profile, req.Preferences, services.RecommendOptions{
		Restaurant:  req.Restaurant,
		MealsPerDay: req.MealsPerDay,
	})
	if err != nil {
		h.log.Errorw("recommendations failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"per_meal_targets": perMeal,
		"recommendations":  recs,
	})
}

// GetRankings returns the flat ranked list at or above min_score
// (?min_score=, default 50).
func (h *APIHandler) GetRankings(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rankings request: " + err.Error()})
		return
	}

	minScore := services.DefaultMinScore
	if raw := c.Query("min_score"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			minScore = parsed
		}
	}

	ranked, perMeal, err := h.recommendationService.RankForUser(c.Request.Context(), req.Profile, req.Preferences, services.RecommendOptions{
		Restaurant:  req.Restaurant,
		MealsPerDay: req.MealsPerDay,
	}, minScore)
	if err != nil {
		h.log.Errorw("ranking failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"min_score":        minScore,
		"per_meal_targets": perMeal,
		"meals":            ranked,
	})
}

// ScoreRequest scores one meal against explicit targets. Either an inline
// meal or a stored meal id must be given.
type ScoreRequest struct {
	Meal        *models.Meal             `json:"meal"`
	MealID      string                   `json:"meal_id"`
	Targets     models.MacroTargets      `json:"targets" binding:"required"`
	Preferences models.PreferenceProfile `json:"preferences"`
}

// ScoreMeal scores a single meal, for menu detail views.
func (h *APIHandler) ScoreMeal(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid score request: " + err.Error()})
		return
	}

	if req.Meal != nil {
		c.JSON(http.StatusOK, models.ScoredMeal{
			Meal:  *req.Meal,
			Match: services.ScoreMeal(*req.Meal, req.Targets, req.Preferences),
		})
		return
	}

	if req.MealID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either meal or meal_id is required"})
		return
	}
	scored, err := h.recommendationService.ScoreMealByID(c.Request.Context(), req.MealID, req.Targets, req.Preferences)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, scored)
}

// DailyFitRequest asks how one chosen meal fits a remaining daily budget.
type DailyFitRequest struct {
	Meal        models.Meal         `json:"meal" binding:"required"`
	DailyBudget models.MacroTargets `json:"daily_budget" binding:"required"`
}

// GetDailyFit summarizes a chosen meal against the daily budget.
func (h *APIHandler) GetDailyFit(c *gin.Context) {
	var req DailyFitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid daily-fit request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ComputeDailyFit(req.Meal, req.DailyBudget))
}

// ListMeals returns the full stored catalog.
func (h *APIHandler) ListMeals(c *gin.Context) {
	meals, err := h.catalog.AllMeals(c.Request.Context())
	if err != nil {
		h.log.Errorw("catalog load failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal returns one stored meal by id.
func (h *APIHandler) GetMeal(c *gin.Context) {
	meal, err := h.catalog.MealByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// ListRestaurantMeals returns one restaurant's menu.
func (h *APIHandler) ListRestaurantMeals(c *gin.Context) {
	name := c.Param("name")
	meals, err := h.catalog.MealsByRestaurant(c.Request.Context(), name)
	if err != nil {
		h.log.Errorw("restaurant menu load failed", "restaurant", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": name, "meals": meals})
}

// Health probes the backing store.
func (h *APIHandler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
