package room

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/poker"
	"holdemtable-server/pkg/table"
)

// Casino owns the tables and serializes all access to each one.
// The table core performs no locking of its own, so every call into a table
// must go through Room.WithTable
type Casino struct {
	logger  logrus.FieldLogger
	options table.Options

	mu    sync.RWMutex
	rooms map[string]*Room
}

// Room pairs a table with its mutex and audit-feed dealer
type Room struct {
	UUID      string
	CreatedAt time.Time
	Dealer    *Dealer

	mu    sync.Mutex
	table *table.Table
}

// WithTable runs fn with exclusive access to the table
func (r *Room) WithTable(fn func(t *table.Table) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(r.table)
}

// NewCasino returns a new casino
func NewCasino(logger logrus.FieldLogger, options table.Options) *Casino {
	return &Casino{
		logger:  logger,
		options: options,
		rooms:   make(map[string]*Room),
	}
}

// CreateRoom opens a new table and starts its audit-feed dealer
func (c *Casino) CreateRoom() *Room {
	id := uuid.New().String()
	logger := c.logger.WithField("table", id)

	tbl := table.New(logger, table.NewDeckSource, poker.Evaluator{}, c.options)

	dealer := newDealer(logger, tbl.LogChan())
	dealer.StartShift()

	room := &Room{
		UUID:      id,
		CreatedAt: time.Now(),
		Dealer:    dealer,
		table:     tbl,
	}

	c.mu.Lock()
	c.rooms[id] = room
	c.mu.Unlock()

	logger.Info("table created")
	return room
}

// Room returns the room for the given uuid
func (c *Casino) Room(id string) (*Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	room, found := c.rooms[id]
	return room, found
}
