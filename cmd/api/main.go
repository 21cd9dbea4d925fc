// Hydration API
//
// REST API for evidence-based daily water goals and hydration recommendations.
//
//	@title			Hydration API
//	@version		1.0
//	@description	Daily water goal planning, intake tracking and hydration recommendations derived from sleep and weather data.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User profiles, body metrics and daily goals
//
//	@tag.name			intake
//	@tag.description	Intake logging, history, statistics and photo analysis
//
//	@tag.name			recommendations
//	@tag.description	Sleep and weather hydration recommendations
//
//	@tag.name			sleep-samples
//	@tag.description	Sleep stage sample ingestion
package main

import (
	"context"
	"net/http"

	"github.com/aqualog/hydration-api/internal/api"
	"github.com/aqualog/hydration-api/internal/api/handler"
	"github.com/aqualog/hydration-api/internal/config"
	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/aqualog/hydration-api/internal/healthdata"
	"github.com/aqualog/hydration-api/internal/langfuse"
	"github.com/aqualog/hydration-api/internal/llm"
	"github.com/aqualog/hydration-api/internal/log"
	"github.com/aqualog/hydration-api/internal/repository"
	"github.com/aqualog/hydration-api/internal/seed"
	"github.com/aqualog/hydration-api/internal/service"
	"github.com/aqualog/hydration-api/internal/telemetry"
	"github.com/aqualog/hydration-api/internal/weather"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := log.Init(cfg.LogLevel == "debug"); err != nil {
		panic(err)
	}
	defer log.Sync()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.IntakeLog{},
		&domain.SleepStageSample{},
		&domain.DailyRecommendation{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Infof("Database migration completed")

	if cfg.Seed {
		log.Infof("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op when no exporter is configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "hydration-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warnf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	intakeRepo := repository.NewIntakeRepository(db)
	sampleRepo := repository.NewSleepSampleRepository(db)
	recRepo := repository.NewRecommendationRepository(db)

	// Initialize data providers
	healthProvider := healthdata.NewProvider(sampleRepo)
	weatherClient := weather.NewOpenMeteoClient(cfg.WeatherBaseURL)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIDrinkVisionModel, cfg.OpenAICommentModel)
	if openaiClient == nil {
		log.Warnf("OpenAI API key not configured, drink analysis will be unavailable and comments fall back to templates")
	}

	// The comment prompt can be managed in Langfuse; the built-in prompt is
	// kept when no managed prompt is configured or reachable.
	if openaiClient != nil && cfg.CommentPromptName != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.CommentPromptName,
			PromptLabel: cfg.CommentPromptLabel,
			CachePath:   cfg.CommentPromptCache,
		})
		if err != nil {
			log.Warnf("Comment prompt not loaded, using built-in default: %v", err)
		} else {
			openaiClient.SetCommentPrompt(prompt)
		}
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	userService := service.NewUserService(userRepo)
	intakeService := service.NewIntakeService(intakeRepo, userRepo, openaiClient)
	sleepService := service.NewSleepAdvisorService(userRepo, recRepo, healthProvider, openaiClient)
	weatherService := service.NewWeatherAdvisorService(userRepo, recRepo, weatherClient, openaiClient, cfg.WeatherFallback)
	digestService := service.NewDigestService(userRepo, intakeRepo, recRepo)
	syncService := service.NewSleepSyncService(sampleRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	recommendationHandler := handler.NewRecommendationHandler(sleepService, weatherService, digestService, langfuseClient)
	sleepSyncHandler := handler.NewSleepSyncHandler(syncService)

	// Setup router
	router := api.NewRouter(userHandler, intakeHandler, recommendationHandler, sleepSyncHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
