package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mindvibe/internal/classifier"
	"mindvibe/internal/config"
	"mindvibe/internal/db"
	"mindvibe/internal/email"
	apihttp "mindvibe/internal/http"
	"mindvibe/internal/repository"
	"mindvibe/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	entryRepo := repository.NewPgMoodEntryRepository(pool)
	profileRepo := repository.NewPgUserProfileRepository(pool)
	feedbackRepo := repository.NewPgFeedbackRepository(pool)

	hfClient := classifier.NewHFClient(
		cfg.HFSentimentURL,
		cfg.HFEmotionURL,
		cfg.HFAPIToken,
		time.Duration(cfg.HFTimeoutSecs)*time.Second,
		time.Duration(cfg.HFRetryWaitSecs)*time.Second,
		logger,
	)

	alertSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			alertSender = sender
		}
	}
	if cfg.CrisisAlertEmail == "" {
		logger.Warn("crisis alert email not configured")
	}

	rateWindow := time.Duration(cfg.AnalyzeRateWindowMins) * time.Minute
	limiter := service.NewAnalyzeRateLimiter(rateWindow, cfg.AnalyzeRateMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisAnalyzeRateLimiter(redisClient, rateWindow, cfg.AnalyzeRateMax)
		}
		cancel()
	}

	analysisSvc := service.NewAnalysisService(hfClient, entryRepo, profileRepo, alertSender, cfg.CrisisAlertEmail, logger)
	historySvc := service.NewHistoryService(entryRepo)

	analysisHandler := apihttp.NewAnalysisHandler(logger, analysisSvc, historySvc, feedbackRepo, limiter)
	onboardingHandler := apihttp.NewOnboardingHandler(logger, profileRepo)
	healthHandler := apihttp.NewHealthHandler(logger, hfClient, func(ctx context.Context) error {
		return db.Ping(ctx, pool)
	})
	router := apihttp.NewRouter(logger, analysisHandler, onboardingHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
