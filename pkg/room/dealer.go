package room

import (
	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/table"
)

// Dealer fans a table's audit feed out to connected clients
type Dealer struct {
	logger     logrus.FieldLogger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	messages   <-chan *table.LogMessage
	done       chan struct{}
}

func newDealer(logger logrus.FieldLogger, messages <-chan *table.LogMessage) *Dealer {
	return &Dealer{
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		messages:   messages,
		done:       make(chan struct{}),
	}
}

// StartShift starts the dealer run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the dealer run loop
func (d *Dealer) EndShift() {
	close(d.done)
}

// AddClient subscribes a client to the audit feed
func (d *Dealer) AddClient(c *Client) {
	d.register <- c
}

// RemoveClient unsubscribes a client; its send channel will be closed
func (d *Dealer) RemoveClient(c *Client) {
	d.unregister <- c
}

func (d *Dealer) runLoop() {
	for {
		select {
		case client := <-d.register:
			d.logger.Debug("client connected")
			d.clients[client] = true
		case client := <-d.unregister:
			if _, found := d.clients[client]; found {
				d.logger.Debug("client disconnected")
				delete(d.clients, client)
				close(client.send)
			}
		case msg := <-d.messages:
			for client := range d.clients {
				select {
				case client.send <- msg:
				default:
					// slow consumers miss records rather than stall the feed
				}
			}
		case <-d.done:
			return
		}
	}
}
