package httpserver

import (
	"database/sql"
	"errors"

	"polaris-api/config"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
	pkgMinio "polaris-api/pkg/minio"
	pkgRedis "polaris-api/pkg/redis"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	// Storage
	postgresDB  *sql.DB
	postgresCfg config.PostgresConfig
	redis       pkgRedis.IRedis
	minio       pkgMinio.MinIO
	minioCfg    config.MinIOConfig

	// Realtime & live sessions
	realtimeCfg config.RealtimeConfig
	wsConfig    config.WebSocketConfig

	// Auth & security
	jwtMgr scope.Manager

	// Monitoring & notification
	metrics *metrics.Metrics
	discord discord.IDiscord

	// set by mapHandlers
	services *services
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Storage configuration
	PostgresDB *sql.DB
	Postgres   config.PostgresConfig
	Redis      pkgRedis.IRedis
	// MinIO is nil when report export is disabled.
	MinIO    pkgMinio.MinIO
	MinIOCfg config.MinIOConfig

	// Realtime configuration
	Realtime  config.RealtimeConfig
	WebSocket config.WebSocketConfig

	// JWTManager is nil when authentication is disabled.
	JWTManager scope.Manager

	// Monitoring & notification configuration
	Metrics *metrics.Metrics
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,

		postgresDB:  cfg.PostgresDB,
		postgresCfg: cfg.Postgres,
		redis:       cfg.Redis,
		minio:       cfg.MinIO,
		minioCfg:    cfg.MinIOCfg,

		realtimeCfg: cfg.Realtime,
		wsConfig:    cfg.WebSocket,

		jwtMgr: cfg.JWTManager,

		metrics: cfg.Metrics,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.postgresDB == nil {
		return errors.New("PostgreSQL connection is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}

	return nil
}
