package session

import (
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type connectionState string

const (
	stateDisconnected connectionState = "disconnected"
	stateConnecting   connectionState = "connecting"
	stateOpen         connectionState = "open"
	stateClosed       connectionState = "closed"
)

const defaultReconnectDelay = 5 * time.Second

// connectionHandlers is the single handler set armed for the initial
// dial and, unchanged, for every reconnect attempt.
type connectionHandlers struct {
	onOpen    func()
	onMessage func(messageType int, data []byte)
	onClose   func(err error)
	onError   func(err error)
}

// connection owns the duplex channel lifecycle. All other components
// only ever call Send*/State; they never touch the websocket directly.
type connection struct {
	url            string
	dialer         *websocket.Dialer
	handlers       connectionHandlers
	reconnectDelay time.Duration

	mu             sync.Mutex
	state          connectionState
	conn           *websocket.Conn
	reconnectTimer *time.Timer

	writeMu sync.Mutex
}

func newConnection(url string, handlers connectionHandlers, reconnectDelay time.Duration) *connection {
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}
	return &connection{
		url:            url,
		dialer:         websocket.DefaultDialer,
		handlers:       handlers,
		reconnectDelay: reconnectDelay,
		state:          stateDisconnected,
	}
}

// sessionURL derives the channel endpoint from the host and the
// session identifiers: <ws-scheme>://<host>/ws/<userId>/<sessionId>.
func sessionURL(host, userID, sessionID string, insecure bool) string {
	scheme := "wss"
	if insecure {
		scheme = "ws"
	}
	endpoint := url.URL{Scheme: scheme, Host: host, Path: "/ws/" + userID + "/" + sessionID}
	return endpoint.String()
}

// Connect starts a dial attempt and returns immediately; the outcome
// is reported through the handler set. Attempts are idempotent: a
// connection that is already open or connecting skips the attempt.
func (c *connection) Connect() {
	c.mu.Lock()
	if c.state == stateOpen || c.state == stateConnecting || c.state == stateClosed {
		c.mu.Unlock()
		return
	}
	c.state = stateConnecting
	c.mu.Unlock()

	go c.dial()
}

func (c *connection) dial() {
	conn, _, err := c.dialer.Dial(c.url, nil)
	if err != nil {
		c.mu.Lock()
		c.state = stateDisconnected
		c.mu.Unlock()

		if c.handlers.onError != nil {
			c.handlers.onError(err)
		}
		c.scheduleReconnect()
		return
	}

	c.mu.Lock()
	if c.state == stateClosed {
		// Close raced the dial; drop the fresh channel.
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.state = stateOpen
	c.conn = conn
	c.mu.Unlock()

	if c.handlers.onOpen != nil {
		c.handlers.onOpen()
	}

	go c.readLoop(conn)
}

// readLoop serializes inbound frames: each one is handed to onMessage
// and processed to completion before the next read.
func (c *connection) readLoop(conn *websocket.Conn) {
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			conn.Close()

			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
			}
			closed := c.state == stateClosed
			if !closed {
				c.state = stateDisconnected
			}
			c.mu.Unlock()

			if c.handlers.onClose != nil {
				c.handlers.onClose(err)
			}
			if !closed {
				c.scheduleReconnect()
			}
			return
		}

		if c.handlers.onMessage != nil {
			c.handlers.onMessage(messageType, data)
		}
	}
}

// scheduleReconnect arms exactly one reconnect attempt after a fixed
// delay. Unlimited retries, no backoff, no jitter.
func (c *connection) scheduleReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateClosed || c.reconnectTimer != nil {
		return
	}

	c.reconnectTimer = time.AfterFunc(c.reconnectDelay, func() {
		c.mu.Lock()
		c.reconnectTimer = nil
		c.mu.Unlock()
		c.Connect()
	})
}

func (c *connection) State() connectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SendJSON writes a text frame. A guarded no-op unless the channel is
// open: frames sent while disconnected are dropped, never queued.
func (c *connection) SendJSON(payload any) {
	c.mu.Lock()
	conn := c.conn
	open := c.state == stateOpen
	c.mu.Unlock()
	if !open || conn == nil {
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(payload); err != nil {
		logger.Warn("Failed to write text frame", "error", err)
	}
}

// SendBinary writes a binary frame under the same guard as SendJSON.
func (c *connection) SendBinary(data []byte) {
	c.mu.Lock()
	conn := c.conn
	open := c.state == stateOpen
	c.mu.Unlock()
	if !open || conn == nil {
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		logger.Warn("Failed to write binary frame", "error", err)
	}
}

// Close is the only terminal transition. It cancels any pending
// reconnect attempt and releases the channel.
func (c *connection) Close() {
	c.mu.Lock()
	c.state = stateClosed
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}
