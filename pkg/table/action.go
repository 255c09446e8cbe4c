package table

import (
	"fmt"
)

// ActionKind identifies an action a player can take
type ActionKind string

// action kind constants
const (
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionRaise ActionKind = "raise"
	ActionFold  ActionKind = "fold"
)

var allowedActions = map[ActionKind]bool{
	ActionCheck: true,
	ActionCall:  true,
	ActionRaise: true,
	ActionFold:  true,
}

// ActionKindFromString returns an action kind for the given string
func ActionKindFromString(s string) (ActionKind, error) {
	if _, ok := allowedActions[ActionKind(s)]; ok {
		return ActionKind(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (k ActionKind) String() string {
	switch k {
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionRaise:
		return "Raise"
	case ActionFold:
		return "Fold"
	}

	panic("unknown action")
}

// IsValid returns true if the action kind is permitted
func (k ActionKind) IsValid() bool {
	_, ok := allowedActions[k]
	return ok
}

// LogMessage returns a message formatted for the audit log
func (k ActionKind) LogMessage(amount int) string {
	switch k {
	case ActionCheck:
		return "checked"
	case ActionCall:
		return fmt.Sprintf("called ${%d}", amount)
	case ActionRaise:
		return fmt.Sprintf("raised by ${%d}", amount)
	case ActionFold:
		return "folded"
	}

	return ""
}

// Action is a player action with an optional amount
// The amount is only meaningful for raises
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount"`
}

// Check returns a check action
func Check() Action {
	return Action{Kind: ActionCheck}
}

// Call returns a call action
func Call() Action {
	return Action{Kind: ActionCall}
}

// Raise returns a raise action for the given increment over the player's current bet
func Raise(amount int) Action {
	return Action{Kind: ActionRaise, Amount: amount}
}

// Fold returns a fold action
func Fold() Action {
	return Action{Kind: ActionFold}
}
