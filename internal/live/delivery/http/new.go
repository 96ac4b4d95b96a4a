package http

import (
	"net/http"

	"polaris-api/internal/live"
	"polaris-api/internal/realtime"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
	"polaris-api/pkg/scope"

	"github.com/gorilla/websocket"
)

// Config holds the socket settings of the upgrade endpoint.
type Config struct {
	Conn            live.ConnConfig
	ReadBufferSize  int
	WriteBufferSize int
	// AllowedOrigins accepts exact origins and "*". Empty allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	l        log.Logger
	hub      *live.Hub
	svc      live.Services
	sub      realtime.Subscriber
	jwt      scope.Manager
	discord  discord.IDiscord
	cfg      Config
	upgrader websocket.Upgrader
}

// New returns the live endpoint handler. A nil jwt accepts every caller
// as anonymous and a nil sub disables change subscriptions.
func New(l log.Logger, hub *live.Hub, svc live.Services, sub realtime.Subscriber, jwt scope.Manager, d discord.IDiscord, cfg Config) *Handler {
	return &Handler{
		l:       l,
		hub:     hub,
		svc:     svc,
		sub:     sub,
		jwt:     jwt,
		discord: d,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
