package viewers

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

const MessageTypeViewerCount = "VIEWER_COUNT"

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

type CountPayload struct {
	Count int `json:"count"`
}

// WebSocketTransport pushes counts as JSON messages and keeps the
// connection alive with ping control frames. A read pump watches the
// connection and closes Closed() when the peer goes away.
type WebSocketTransport struct {
	conn     *websocket.Conn
	gameID   string
	pongWait time.Duration

	closed    chan struct{}
	closeOnce sync.Once
}

// NewWebSocketTransport starts the read pump. pongWait must exceed the
// heartbeat interval, otherwise idle connections time out between pings.
func NewWebSocketTransport(conn *websocket.Conn, gameID string, pongWait time.Duration) *WebSocketTransport {
	t := &WebSocketTransport{
		conn:     conn,
		gameID:   gameID,
		pongWait: pongWait,
		closed:   make(chan struct{}),
	}
	go t.readPump()
	return t
}

func (t *WebSocketTransport) WriteCount(count int) error {
	if err := t.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return t.conn.WriteJSON(Message{
		Type:    MessageTypeViewerCount,
		Payload: CountPayload{Count: count},
		RoomID:  t.gameID,
	})
}

func (t *WebSocketTransport) WritePing() error {
	return t.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (t *WebSocketTransport) Closed() <-chan struct{} {
	return t.closed
}

// Close sends a close frame and releases the connection.
func (t *WebSocketTransport) Close() error {
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	t.markClosed()
	return t.conn.Close()
}

func (t *WebSocketTransport) markClosed() {
	t.closeOnce.Do(func() { close(t.closed) })
}

// Incoming messages are ignored; reading only drives pong handling and
// close detection.
func (t *WebSocketTransport) readPump() {
	defer t.markClosed()

	t.conn.SetReadLimit(maxMessageSize)
	_ = t.conn.SetReadDeadline(time.Now().Add(t.pongWait))
	t.conn.SetPongHandler(func(string) error {
		return t.conn.SetReadDeadline(time.Now().Add(t.pongWait))
	})

	for {
		if _, _, err := t.conn.ReadMessage(); err != nil {
			return
		}
	}
}
