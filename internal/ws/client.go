package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is the wire envelope for every typed event in both directions.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Conn is the subset of *websocket.Conn the hub needs. Tests substitute a
// recording fake.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client wraps one live websocket connection. Writes are serialized through a
// mutex because gorilla connections allow only one concurrent writer.
type Client struct {
	ID   string
	conn Conn
	mu   sync.Mutex
}

func NewClient(conn Conn) *Client {
	return &Client{ID: uuid.NewString(), conn: conn}
}

// Send marshals and writes one envelope, preserving the order Send calls were
// issued on this client.
func (c *Client) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.SendRaw(data)
}

// SendRaw writes a pre-encoded text frame, used for the ping/pong keep-alive.
func (c *Client) SendRaw(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
