package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 64
)

// Client is one websocket connection. The read pump turns frames into session
// commands; the write pump drains the send queue.
type Client struct {
	conn    *websocket.Conn
	clock   clockwork.Clock
	session *Session
	send    chan []byte
	done    chan struct{}
	logger  zerolog.Logger
	mu      sync.Mutex
	closed  bool
}

// NewClient creates a client for conn. Attach a session with Bind before Run.
func NewClient(conn *websocket.Conn, clock clockwork.Clock, logger zerolog.Logger) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		conn:   conn,
		clock:  clock,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Bind attaches the session that receives this client's commands.
func (c *Client) Bind(s *Session) { c.session = s }

// Send implements Sender. Messages are dropped when the buffer is full.
func (c *Client) Send(message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn().Msg("send buffer full, message dropped")
		return nil
	}
}

// Close shuts the connection once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the write pump and blocks in the read pump until the peer goes away.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Msg("websocket read error")
			}
			return
		}

		cmd, ok := c.decode(message)
		if !ok {
			continue
		}
		if !c.session.Submit(cmd) {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decode parses one frame. Malformed frames are answered with an error message.
func (c *Client) decode(data []byte) (Command, bool) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return Command{}, false
	}

	cmd := Command{Type: msg.Type}
	switch msg.Type {
	case MsgSetTimer:
		var p SetTimerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Invalid payload")
			return Command{}, false
		}
		cmd.Enabled = p.Enabled
	case MsgSubmit:
		var p SubmitPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Invalid payload")
			return Command{}, false
		}
		cmd.Connection = p.Connection
	}
	return cmd, true
}

func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{Code: code, Message: message}, c.clock.Now()))
}
