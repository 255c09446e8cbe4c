package table

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogMessage is an audit record for an observable table event
// If PlayerID is empty, assume it's a general statement about the table
type LogMessage struct {
	UUID     string    `json:"uuid"`
	PlayerID string    `json:"playerId,omitempty"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

func newLogMessage(playerID, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:     uuid.New().String(),
		PlayerID: playerID,
		Message:  fmt.Sprintf(format, a...),
		Time:     time.Now(),
	}
}
