package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionKindFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"check", "call", "raise", "fold"} {
		kind, err := ActionKindFromString(s)
		a.NoError(err)
		a.Equal(ActionKind(s), kind)
		a.True(kind.IsValid())
	}

	kind, err := ActionKindFromString("bluff")
	a.EqualError(err, "unknown action for identifier: bluff")
	a.False(kind.IsValid())
}

func TestActionKind_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Check", ActionCheck.String())
	a.Equal("Call", ActionCall.String())
	a.Equal("Raise", ActionRaise.String())
	a.Equal("Fold", ActionFold.String())

	a.Panics(func() {
		_ = ActionKind("bluff").String()
	})
}

func TestActionKind_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("checked", ActionCheck.LogMessage(0))
	a.Equal("called ${10}", ActionCall.LogMessage(10))
	a.Equal("raised by ${25}", ActionRaise.LogMessage(25))
	a.Equal("folded", ActionFold.LogMessage(0))
}

func TestActionConstructors(t *testing.T) {
	a := assert.New(t)
	a.Equal(Action{Kind: ActionCheck}, Check())
	a.Equal(Action{Kind: ActionCall}, Call())
	a.Equal(Action{Kind: ActionRaise, Amount: 25}, Raise(25))
	a.Equal(Action{Kind: ActionFold}, Fold())
}
