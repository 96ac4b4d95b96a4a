package http

import (
	"context"
	"strings"

	"polaris-api/internal/live"
	"polaris-api/internal/model"
	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "
	anonymousID  = "anonymous"
)

// Connect upgrades the request to a live session socket. The token is read
// from the token query parameter or the Authorization header.
// GET /api/v1/live?token=
func (h *Handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.authenticate(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.live.delivery.http.Connect.authenticate: %v", err)
		response.Unauthorized(c)
		return
	}

	if h.hub.Full() {
		response.Error(c, errTooManyConnections, h.discord)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "internal.live.delivery.http.Connect.Upgrade: %v", err)
		return
	}

	userID := sc.UserID
	if userID == "" {
		userID = anonymousID
	}

	conn := live.NewConnection(h.hub, ws, userID, h.cfg.Conn, h.l)
	// The request context ends with this handler; the session lives until
	// the socket closes.
	conn.Bind(live.NewSession(context.Background(), h.l, sc, h.svc, h.sub, conn.Push))
	h.hub.Register(conn)
	conn.Start()

	h.l.Infof(ctx, "Live session established for user: %s", userID)
}

func (h *Handler) authenticate(c *gin.Context) (model.Scope, error) {
	if h.jwt == nil {
		return model.Scope{}, nil
	}

	token := c.Query("token")
	if token == "" {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, bearerPrefix) {
			token = strings.TrimSpace(auth[len(bearerPrefix):])
		}
	}
	if token == "" {
		return model.Scope{}, scope.ErrInvalidToken
	}

	payload, err := h.jwt.Verify(token)
	if err != nil {
		return model.Scope{}, err
	}
	return scope.NewScope(payload), nil
}

// Stats returns the hub counters.
// GET /api/v1/live/stats
func (h *Handler) Stats(c *gin.Context) {
	response.OK(c, h.hub.GetStats())
}
