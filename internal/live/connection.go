package live

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"polaris-api/pkg/log"

	"github.com/gorilla/websocket"
)

const sendBuffer = 256

// ConnConfig holds the socket timings.
type ConnConfig struct {
	PongWait       time.Duration
	PingPeriod     time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// Connection is one live socket. Its read pump feeds commands to the
// session and its write pump drains queued frames.
type Connection struct {
	hub     *Hub
	conn    *websocket.Conn
	userID  string
	session *Session
	cfg     ConnConfig
	logger  log.Logger

	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewConnection(hub *Hub, conn *websocket.Conn, userID string, cfg ConnConfig, logger log.Logger) *Connection {
	return &Connection{
		hub:    hub,
		conn:   conn,
		userID: userID,
		cfg:    cfg,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// Bind attaches the session that handles this connection's commands.
func (c *Connection) Bind(s *Session) {
	c.session = s
}

// Push queues f without blocking. Frames are dropped when the buffer is
// full or the connection is closed.
func (c *Connection) Push(f Frame) {
	data, err := f.ToJSON()
	if err != nil {
		c.logger.Errorf(context.Background(), "internal.live.Connection.Push.ToJSON: %v", err)
		c.hub.totalFramesFailed.Add(1)
		return
	}

	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- data:
		c.hub.totalFramesSent.Add(1)
	default:
		c.logger.Warnf(context.Background(), "internal.live.Connection.Push: send buffer full for user %s", c.userID)
		c.hub.totalFramesFailed.Add(1)
	}
}

// readPump runs the session's commands in order. The deferred release
// runs on every exit path.
func (c *Connection) readPump() {
	defer func() {
		if c.session != nil {
			c.session.Release()
		}
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "internal.live.Connection.readPump: user %s: %v", c.userID, err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.Push(Frame{Type: FrameError, Error: "malformed command", At: time.Now()})
			continue
		}
		if c.session != nil {
			c.session.Handle(cmd)
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// Start starts the connection's read and write pumps
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close stops the write pump and closes the socket. It is idempotent.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}
