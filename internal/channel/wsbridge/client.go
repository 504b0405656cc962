// Package wsbridge relays the external message channel over a websocket
// connection. Inbound frames are handed to a delivery callback; outbound
// channel messages are written back as frames of the same shape.
package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alexisbeaulieu97/playerui/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

const (
	handshakeTimeout = 5 * time.Second
	writeTimeout     = 5 * time.Second
)

// ErrClosed is returned when writing to a closed bridge.
var ErrClosed = errors.New("websocket bridge closed")

// Frame is the wire format of a channel message.
type Frame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// DeliverFunc receives inbound messages. It is called on the bridge's read
// goroutine; callers hop onto the UI thread themselves.
type DeliverFunc func(name string, data interface{})

// Client is a connected bridge.
type Client struct {
	conn    *websocket.Conn
	deliver DeliverFunc
	logger  ports.Logger

	writeMu sync.Mutex
	closed  bool
	once    sync.Once
}

// Dial connects to url.
func Dial(ctx context.Context, url string, deliver DeliverFunc, logger ports.Logger) (*Client, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = handshakeTimeout

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}

	log := logging.OrNoOp(logger).With("component", "wsbridge")
	log.Info(ctx, "message channel connected", "url", url)

	return &Client{conn: conn, deliver: deliver, logger: log}, nil
}

// Run reads frames until the connection closes or ctx is cancelled. Frames
// without a type are skipped.
func (c *Client) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				c.logger.Warn(ctx, "dropping malformed frame", "error", err)
				continue
			}
			return fmt.Errorf("read frame: %w", err)
		}
		if frame.Type == "" {
			c.logger.Debug(ctx, "dropping untyped frame")
			continue
		}
		if c.deliver != nil {
			c.deliver(frame.Type, frame.Data)
		}
	}
}

// Send writes one frame.
func (c *Client) Send(name string, data interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrClosed
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(Frame{Type: name, Data: data}); err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	return nil
}

// Forward adapts Send to the hub's forwarder signature, logging failures.
func (c *Client) Forward(name string, data interface{}) {
	if err := c.Send(name, data); err != nil {
		c.logger.Warn(context.Background(), "forward failed", "channel", name, "error", err)
	}
}

// Close sends a close frame and closes the connection. It is safe to call
// more than once.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		c.writeMu.Lock()
		c.closed = true
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
		c.writeMu.Unlock()
		err = c.conn.Close()
	})
	return err
}
