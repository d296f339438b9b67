package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// PongWait is how long a silent client is kept before the read fails.
	PongWait = 60 * time.Second
	// PingPeriod must stay below PongWait.
	PingPeriod = PongWait * 9 / 10
)

// Conn serializes writes to a websocket connection. gorilla/websocket
// allows one concurrent writer only.
type Conn struct {
	*websocket.Conn
	mu sync.Mutex
}

// Wrap prepares conn for use: reads time out after PongWait unless the
// client answers pings.
func Wrap(conn *websocket.Conn) *Conn {
	conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})
	return &Conn{Conn: conn}
}

// WriteTyped sends a strongly-typed response payload over the WebSocket.
func (c *Conn) WriteTyped(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.WriteJSON(v)
}

// WriteRaw forwards an already encoded JSON message.
func (c *Conn) WriteRaw(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.WriteMessage(websocket.TextMessage, payload)
}

// Ping sends a control ping frame.
func (c *Conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// WriteError sends a typed ErrorResponse over the WebSocket.
func (c *Conn) WriteError(errMsg string) error {
	return c.WriteTyped(ErrorResponse{
		Event: EventError,
		Error: errMsg,
	})
}

// ReadJSON reads and decodes a message, extending the read deadline.
func (c *Conn) ReadJSON(v interface{}) error {
	if err := c.Conn.ReadJSON(v); err != nil {
		return err
	}
	return c.SetReadDeadline(time.Now().Add(PongWait))
}
