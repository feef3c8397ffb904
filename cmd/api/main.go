package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/hirehub/internal/config"
	"github.com/justsurfingit/hirehub/internal/database"
	"github.com/justsurfingit/hirehub/internal/handlers"
	"github.com/justsurfingit/hirehub/internal/logging"
	"github.com/justsurfingit/hirehub/internal/ratelimit"
	"github.com/justsurfingit/hirehub/internal/services"
	"github.com/justsurfingit/hirehub/internal/storage"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Environment & configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Env)

	// 2. Database
	db, err := database.Connect(cfg.DatabaseDSN, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 3. Upload storage: S3-compatible when a bucket is configured, local
	// disk otherwise.
	var fileStore storage.FileStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg)
		if err != nil {
			log.Error("failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		fileStore = s3Store
		log.Info("uploads stored in object storage", "bucket", cfg.S3Bucket)
	} else {
		fileStore = storage.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
		log.Info("uploads stored on disk", "dir", cfg.UploadDir)
	}

	// 4. Core services
	authService := services.NewAuthService(db, cfg, log)
	jobService := services.NewJobService(db, log)
	appService := services.NewApplicationService(db, log)
	noteService := services.NewNotificationService(db, log)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	jobHandler := handlers.NewJobHandler(jobService, log)
	seekerHandler := handlers.NewJobSeekerHandler(authService, appService, noteService, log)
	recruiterHandler := handlers.NewRecruiterHandler(authService, jobService, appService, noteService, log)
	uploadHandler := handlers.NewUploadHandler(authService, fileStore, cfg.MaxUploadSize, log)

	// 6. Auth-endpoint throttle, with optional Redis decision counters
	limiterStore := ratelimit.NewMemoryStore(cfg.AuthRateRPS, cfg.AuthRateBurst)
	limiterStore.StartJanitor(context.Background())

	var stats ratelimit.StatsStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		stats = ratelimit.NewRedisStats(rdb)
		log.Info("rate-limit counters in redis", "addr", cfg.RedisAddr)
	}
	authLimiter := ratelimit.Middleware(limiterStore, stats)

	// 7. Router & CORS
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.S3Bucket == "" {
		r.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	handlers.RegisterRoutes(r, []byte(cfg.JWTSecret), authLimiter,
		authHandler, jobHandler, seekerHandler, recruiterHandler, uploadHandler)

	log.Info("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
