package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/careervision/internal/config"
	"github.com/fadilmartias/careervision/internal/domain/fiber/handler"
	"github.com/fadilmartias/careervision/internal/extraction"
	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/provider"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/service"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("Could not load .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	setupLogger(appConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		BodyLimit:    int(config.LoadUploadConfig().MaxBytes) + 1024*1024,
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	db := ConnectDB()
	cache := connectCache(ctx)

	providerConfig := config.LoadProviderConfig()
	registry := provider.NewRegistry(providerConfig, matching.NewLockedRand(time.Now().UnixNano()), cache)

	rules, err := extraction.LoadRules(config.LoadExtractionConfig().RulesFile)
	if err != nil {
		slog.Error("could not load extraction rules", slog.Any("error", err))
		os.Exit(1)
	}

	completer, err := service.NewTextCompleter(ctx)
	if err != nil {
		slog.Warn("text completion disabled", slog.Any("error", err))
		completer = service.Unavailable(err)
	}

	milestoneRepo := repository.NewMilestoneRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	timelineUC := usecase.NewTimelineUsecase(milestoneRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, milestoneRepo, extraction.NewParser(rules), nil, config.LoadUploadConfig())
	recommendationUC := usecase.NewRecommendationUsecase(
		milestoneRepo,
		recommendationRepo,
		registry,
		matching.NewScorer(nil),
		config.LoadRecommendationConfig(),
		providerConfig.Timeout,
	)
	insightUC := usecase.NewInsightUsecase(milestoneRepo, recommendationRepo, resumeRepo)
	questionUC := usecase.NewQuestionUsecase(questionRepo, milestoneRepo, recommendationRepo, completer)

	// The limiter sits behind auth so it can key on the user.
	guards := []fiber.Handler{
		middleware.JWTAuth(config.LoadJWTConfig()),
		middleware.RateLimiter(50, 1*time.Minute),
	}
	handler.RegisterAPI(app, guards,
		handler.NewTimelineHandler(timelineUC),
		handler.NewResumeHandler(resumeUC),
		handler.NewRecommendationHandler(recommendationUC),
		handler.NewInsightHandler(insightUC),
		handler.NewQnAHandler(questionUC),
	)

	go monitorGoroutines(ctx)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			slog.Error("shutdown failed", slog.Any("error", err))
		}
	}()

	slog.Info("Server running", slog.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupLogger(appConfig *config.AppConfig) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if appConfig.IsProduction() {
		opts.Level = slog.LevelInfo
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h).With(slog.String("app", appConfig.Name)))
}

func monitorGoroutines(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.Debug("Active goroutines", slog.Int("count", runtime.NumGoroutine()))
		}
	}
}

// connectCache returns nil when Redis is not configured or unreachable;
// live providers are then queried on every refresh.
func connectCache(ctx context.Context) provider.CandidateCache {
	redisConfig := config.LoadRedisConfig()
	if !redisConfig.Enabled() {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, provider cache disabled", slog.Any("error", err))
		_ = client.Close()
		return nil
	}
	return provider.NewRedisCandidateCache(client)
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		slog.Error("Could not connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	pgDB, err := db.DB()
	if err != nil {
		slog.Error("Could not get database instance", slog.Any("error", err))
		os.Exit(1)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		slog.Error("could not enable uuid-ossp", slog.Any("error", err))
		os.Exit(1)
	}
	err = db.AutoMigrate(&model.Milestone{}, &model.Resume{}, &model.Recommendation{}, &model.Question{})
	if err != nil {
		slog.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	return db
}
