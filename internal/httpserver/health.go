package httpserver

import (
	"context"
	"net/http"
	"time"

	"polaris-api/pkg/errors"
	"polaris-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "polaris-api"
	version      = "1.0.0"
	probeTimeout = 2 * time.Second
)

var (
	errPostgresDown = errors.NewHTTPError(503, "PostgreSQL connection failed", http.StatusServiceUnavailable)
	errRedisDown    = errors.NewHTTPError(503, "Redis connection failed", http.StatusServiceUnavailable)
)

// healthCheck reports the state of every backing service.
// GET /health
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.healthCheck.postgres: %v", err)
		response.HttpError(c, errPostgresDown)
		return
	}
	if _, err := srv.redis.Ping(ctx); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.healthCheck.redis: %v", err)
		response.HttpError(c, errRedisDown)
		return
	}

	storage := "disabled"
	if srv.minio != nil {
		storage = "connected"
		if err := srv.minio.HealthCheck(ctx); err != nil {
			storage = "unavailable"
		}
	}

	body := gin.H{
		"status":   "healthy",
		"version":  version,
		"service":  serviceName,
		"postgres": "connected",
		"redis":    "connected",
		"storage":  storage,
	}
	if srv.services != nil {
		stats := srv.services.hub.GetStats()
		body["active_connections"] = stats.ActiveConnections
		body["total_unique_users"] = stats.TotalUniqueUsers
	}

	response.OK(c, body)
}

// readyCheck reports whether the store can serve traffic.
// GET /ready
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		response.HttpError(c, errPostgresDown)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": version,
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// GET /live
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": version,
		"service": serviceName,
	})
}
