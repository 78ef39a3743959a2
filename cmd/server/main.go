package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/macromatch/backend/internal/database"
	"github.com/macromatch/backend/internal/handlers"
	"github.com/macromatch/backend/internal/services"
	"github.com/macromatch/backend/pkg/helper"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}
	config := helper.LoadConfigFromEnv()

	logger, err := buildLogger(config.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize Neo4j client
	neo4jClient, err := database.NewNeo4jClient(config.Neo4j)
	if err != nil {
		sugar.Fatalw("failed to connect to Neo4j", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := neo4jClient.Close(ctx); err != nil {
			sugar.Errorw("error closing Neo4j connection", "error", err)
		}
	}()
	sugar.Infow("connected to Neo4j", "database", config.Neo4j.Database)

	// Initialize catalog store and seed it when empty
	catalog := database.NewCatalogStore(neo4jClient)
	if config.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		seeded, err := catalog.EnsureSeeded(ctx)
		cancel()
		if err != nil {
			sugar.Fatalw("failed to seed meal catalog", "error", err)
		}
		if seeded > 0 {
			sugar.Infow("seeded meal catalog", "meals", seeded)
		}
	}

	// Initialize services and API handlers
	recommendationService := services.NewRecommendationService(catalog, sugar)
	apiHandler := handlers.NewAPIHandler(recommendationService, catalog, neo4jClient.Health, sugar)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	apiHandler.SetupRoutes(router)

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: router,
	}

	go func() {
		sugar.Infow("server starting", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalw("server forced to shutdown", "error", err)
	}
	sugar.Info("server exited properly")
}

func buildLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" || mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
