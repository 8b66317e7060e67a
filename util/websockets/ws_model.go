package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe     = "subscribe"
	MsgTypeCommentUpdate = "comment_update"
)

// Client represents a connected WebSocket reader
type Client struct {
	Conn   *websocket.Conn
	PageID string
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan pageMessage
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type pageMessage struct {
	PageID  string
	Payload []byte
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type   string `json:"type"`
	PageID string `json:"page_id,omitempty"`
}
