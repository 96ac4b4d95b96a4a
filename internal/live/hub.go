package live

import (
	"context"
	"sync"
	"sync/atomic"

	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
)

// Hub tracks open live connections.
type Hub struct {
	// userID -> connections, one per tab
	connections map[string][]*Connection
	mu          sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	totalFramesSent   atomic.Int64
	totalFramesFailed atomic.Int64

	maxConnections int

	logger  log.Logger
	metrics *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewHub(logger log.Logger, maxConnections int, m *metrics.Metrics) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		connections:    make(map[string][]*Connection),
		register:       make(chan *Connection, 100),
		unregister:     make(chan *Connection, 100),
		maxConnections: maxConnections,
		logger:         logger,
		metrics:        m,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info(context.Background(), "internal.live.Hub.Run: shutting down")
			h.closeAllConnections()
			return

		case conn := <-h.register:
			h.registerConnection(conn)

		case conn := <-h.unregister:
			h.unregisterConnection(conn)
		}
	}
}

func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.ctx.Done():
		conn.Close()
	}
}

func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.ctx.Done():
	}
}

func (h *Hub) registerConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxConnections > 0 && h.getTotalConnectionsLocked() >= h.maxConnections {
		h.logger.Warnf(context.Background(), "internal.live.Hub.registerConnection: max connections reached, rejecting user %s", conn.userID)
		conn.Close()
		return
	}

	h.connections[conn.userID] = append(h.connections[conn.userID], conn)
	h.metrics.LiveConnected()

	h.logger.Infof(context.Background(),
		"User connected: %s (total connections: %d, user connections: %d)",
		conn.userID,
		h.getTotalConnectionsLocked(),
		len(h.connections[conn.userID]),
	)
}

func (h *Hub) unregisterConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	connections, exists := h.connections[conn.userID]
	if !exists {
		return
	}

	for i, c := range connections {
		if c != conn {
			continue
		}

		h.connections[conn.userID] = append(connections[:i], connections[i+1:]...)
		h.metrics.LiveDisconnected()
		conn.Close()

		if len(h.connections[conn.userID]) == 0 {
			delete(h.connections, conn.userID)
			h.logger.Infof(context.Background(), "User disconnected (all tabs closed): %s", conn.userID)
		} else {
			h.logger.Infof(context.Background(),
				"User connection closed: %s (remaining connections: %d)",
				conn.userID,
				len(h.connections[conn.userID]),
			)
		}
		return
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, connections := range h.connections {
		for _, conn := range connections {
			conn.Close()
			h.metrics.LiveDisconnected()
		}
	}

	h.connections = make(map[string][]*Connection)
}

func (h *Hub) GetStats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HubStats{
		ActiveConnections: h.getTotalConnectionsLocked(),
		TotalUniqueUsers:  len(h.connections),
		TotalFramesSent:   h.totalFramesSent.Load(),
		TotalFramesFailed: h.totalFramesFailed.Load(),
	}
}

// Full reports whether a new connection would be rejected.
func (h *Hub) Full() bool {
	if h.maxConnections <= 0 {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.getTotalConnectionsLocked() >= h.maxConnections
}

// getTotalConnectionsLocked returns total connections (must be called with lock held)
func (h *Hub) getTotalConnectionsLocked() int {
	total := 0
	for _, connections := range h.connections {
		total += len(connections)
	}
	return total
}

// Shutdown closes every connection and stops Run.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
