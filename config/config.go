package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	RealtimeSourceApp      = "app"
	RealtimeSourceDatabase = "database"
)

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	// Realtime Configuration
	Realtime  RealtimeConfig
	WebSocket WebSocketConfig

	// Authentication Configuration
	JWT JWTConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"APP_PORT" envDefault:"8080"`
	Mode string `env:"API_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig holds the store endpoint and its credential. URL carries
// host, port, user and database, e.g. postgres://polaris@db:5432/polaris.
type PostgresConfig struct {
	URL           string `env:"POSTGRES_URL,required,notEmpty"`
	Password      string `env:"POSTGRES_PASSWORD,required,notEmpty"`
	SSLMode       string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	ListenChannel string `env:"POSTGRES_LISTEN_CHANNEL" envDefault:"polaris_changes"`
}

// DSN returns URL with the password and ssl mode applied.
func (c PostgresConfig) DSN() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid POSTGRES_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid POSTGRES_URL: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid POSTGRES_URL: host is required")
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.Password)

	q := u.Query()
	if q.Get("sslmode") == "" {
		mode := c.SSLMode
		if mode == "" {
			mode = "disable"
		}
		q.Set("sslmode", mode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// MinIOConfig is the configuration for report exports
type MinIOConfig struct {
	Endpoint      string        `env:"MINIO_ENDPOINT"`
	AccessKey     string        `env:"MINIO_ACCESS_KEY"`
	SecretKey     string        `env:"MINIO_SECRET_KEY"`
	Region        string        `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket        string        `env:"MINIO_BUCKET" envDefault:"polaris-reports"`
	UseSSL        bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	PresignExpiry time.Duration `env:"MINIO_PRESIGN_EXPIRY" envDefault:"15m"`
}

// Enabled reports whether report export storage is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// RealtimeConfig selects where change events come from.
type RealtimeConfig struct {
	Source        string `env:"REALTIME_SOURCE" envDefault:"app"`
	ChannelPrefix string `env:"REALTIME_CHANNEL_PREFIX" envDefault:"polaris:changes:"`
}

// WebSocketConfig is the configuration for live session connections
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
}

// JWTConfig is the configuration for the JWT. An empty key disables
// authentication.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// WebhookURL returns the webhook URL, or "" when Discord is not configured.
func (c DiscordConfig) WebhookURL() string {
	if c.WebhookID == "" || c.WebhookToken == "" {
		return ""
	}
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", c.WebhookID, c.WebhookToken)
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if _, err := cfg.Postgres.DSN(); err != nil {
		return err
	}
	switch cfg.Realtime.Source {
	case RealtimeSourceApp, RealtimeSourceDatabase:
	default:
		return fmt.Errorf("REALTIME_SOURCE must be %q or %q", RealtimeSourceApp, RealtimeSourceDatabase)
	}
	if cfg.MinIO.Enabled() && (cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "") {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}
	return nil
}
