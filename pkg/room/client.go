package room

import (
	"github.com/gorilla/websocket"

	"holdemtable-server/pkg/table"
)

// Client is a single websocket subscriber to a table's audit feed
type Client struct {
	conn *websocket.Conn
	send chan *table.LogMessage
}

// NewClient returns a new client for the connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan *table.LogMessage, 256),
	}
}

// Conn returns the underlying websocket connection
func (c *Client) Conn() *websocket.Conn {
	return c.conn
}

// Send returns the channel the dealer delivers audit records on.
// The channel is closed when the client is removed from the dealer
func (c *Client) Send() <-chan *table.LogMessage {
	return c.send
}
