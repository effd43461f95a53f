package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dbadapter "github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/db"
	genaiadapter "github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/genai"
	httpadapter "github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/middleware"
	weatheradapter "github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/weather"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/app/service"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/config"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/cropcal"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	plantRepo := dbadapter.NewPlantRepository(db)
	taskRepo, err := dbadapter.NewTaskRepository(context.Background(), db)
	if err != nil {
		logger.Fatal("failed to probe tasks schema", zap.Error(err))
	}

	calendarStore, err := cropcal.Load()
	if err != nil {
		logger.Fatal("failed to load crop calendars", zap.Error(err))
	}

	var weatherProvider ports.WeatherProvider = weatheradapter.NewCachedProvider(
		weatheradapter.NewOpenMeteoProvider(cfg.GeocodeBaseURL, cfg.WeatherBaseURL),
		redisClient,
	)

	var genaiProvider ports.GenerativeProvider
	if cfg.GenAIBaseURL != "" && cfg.GenAIKey != "" {
		genaiProvider = genaiadapter.NewClient(cfg.GenAIBaseURL, cfg.GenAIModel, cfg.GenAIKey)
	} else {
		logger.Info("generative provider not configured, task suggestions disabled")
	}

	var limiter httpmiddleware.RateLimiter
	if cfg.RedisAddr != "" {
		limiter = httpmiddleware.NewRedisRateLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWin)
	} else {
		limiter = httpmiddleware.NewLocalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWin)
	}

	h := httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db, redisClient),
		Task:       handlers.NewTaskHandler(service.NewSchedulerService(plantRepo, taskRepo, weatherProvider, genaiProvider), service.NewTaskService(taskRepo, plantRepo)),
		Plant:      handlers.NewPlantHandler(service.NewPlantService(plantRepo, genaiProvider)),
		Weather:    handlers.NewWeatherHandler(service.NewWeatherService(weatherProvider)),
		Suggestion: handlers.NewSuggestionHandler(service.NewSuggestionService(plantRepo)),
		Calendar:   handlers.NewCalendarHandler(service.NewCalendarService(calendarStore)),
		Report:     handlers.NewReportHandler(service.NewReportService(plantRepo, taskRepo)),
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	httpadapter.RegisterRoutes(r, h, limiter)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
