package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"blackjack-server/pkg/token"
)

// Client is a spectator connected to a round via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// RoundID is the round the client watches
	RoundID uuid.UUID

	id string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, roundID uuid.UUID) (*Client, error) {
	id, err := token.Generate(8)
	if err != nil {
		return nil, err
	}

	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string),
		Conn:    conn,
		RoundID: roundID,
		id:      id,
	}, nil
}

// Send sends a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection and round
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.id, c.RoundID)
}
