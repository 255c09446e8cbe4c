package table

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdemtable-server/pkg/deck"
)

// orderedSource draws from an unshuffled deck for deterministic tests
type orderedSource struct {
	deck *deck.Deck
}

func (o *orderedSource) Draw() *deck.Card {
	card, err := o.deck.Draw()
	if err != nil {
		panic(err)
	}

	return card
}

func orderedSourceFactory() CardSource {
	return &orderedSource{deck: deck.New()}
}

// winnerPicker is a WinnerEvaluator that always picks the configured indexes
type winnerPicker []int

func (w winnerPicker) FindWinners(community deck.Hand, hands []deck.Hand) []int {
	return w
}

func setupTable(evaluator WinnerEvaluator, names ...string) *Table {
	tbl := New(logrus.StandardLogger(), orderedSourceFactory, evaluator, DefaultOptions())
	for i, name := range names {
		tbl.AddPlayer(playerID(i), name)
	}

	return tbl
}

func playerID(index int) string {
	return string(rune('a' + index))
}

func assertAct(t *testing.T, tbl *Table, a Action, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, tbl.Act(a), msgAndArgs...)
}

func assertActFailed(t *testing.T, tbl *Table, a Action, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.EqualError(t, tbl.Act(a), expectedErr, msgAndArgs...)
}

func assertCurrentPlayer(t *testing.T, tbl *Table, id string, msgAndArgs ...interface{}) {
	t.Helper()
	p, ok := tbl.CurrentPlayer()
	assert.True(t, ok, msgAndArgs...)
	assert.Equal(t, id, p.ID, msgAndArgs...)
}

// totalChips sums player cash, round bets, and the pot
func totalChips(tbl *Table) int {
	total := tbl.Pot()
	for _, p := range tbl.Players() {
		total += p.Cash() + p.CurrentBet()
	}

	return total
}
