package main

import (
	"context"
	"fmt"

	"polaris-api/config"
	"polaris-api/config/minio"
	"polaris-api/config/postgre"
	"polaris-api/config/redis"
	"polaris-api/internal/httpserver"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
	pkgMinio "polaris-api/pkg/minio"
	"polaris-api/pkg/scope"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx)
	logger.Info(ctx, "PostgreSQL connected successfully")

	// Initialize Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize MinIO (report export only)
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled() {
		minioClient, err = minio.ConnectWithRetry(ctx, cfg.MinIO, 0)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer minio.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	} else {
		logger.Warn(ctx, "MinIO is not configured, report export is disabled")
	}

	// Initialize Discord
	var discordClient discord.IDiscord
	if url := cfg.Discord.WebhookURL(); url != "" {
		discordClient, err = discord.New(logger, url, discord.Config{})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	// Initialize JWT
	var jwtManager scope.Manager
	if cfg.JWT.SecretKey != "" {
		jwtManager, err = scope.New(cfg.JWT.SecretKey, 0)
		if err != nil {
			logger.Error(ctx, "Failed to initialize JWT manager: ", err)
			return
		}
	} else {
		logger.Warn(ctx, "JWT_SECRET_KEY is empty, every request is anonymous")
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		// Storage Configuration
		PostgresDB: postgresDB,
		Postgres:   cfg.Postgres,
		Redis:      redisClient,
		MinIO:      minioClient,
		MinIOCfg:   cfg.MinIO,

		// Realtime Configuration
		Realtime:  cfg.Realtime,
		WebSocket: cfg.WebSocket,

		// Authentication Configuration
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Metrics: metrics.New(),
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
