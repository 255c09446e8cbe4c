package table

import (
	"encoding/json"
)

// State represents the state of the hand at the table
type State int

// constants for State
const (
	StateOpen State = iota
	StatePreFlop
	StateFlop
	StateTurn
	StateRiver
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StatePreFlop:
		return "pre-flop"
	case StateFlop:
		return "flop"
	case StateTurn:
		return "turn"
	case StateRiver:
		return "river"
	case StateEnded:
		return "ended"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
