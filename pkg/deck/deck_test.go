package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[card.String()] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(1)

	d2 := New()
	d2.Shuffle(1)

	for i, card := range d1.Cards {
		a.True(card.Equal(d2.Cards[i]))
	}

	d3 := New()
	d3.Shuffle(2)

	same := true
	for i, card := range d1.Cards {
		if !card.Equal(d3.Cards[i]) {
			same = false
			break
		}
	}
	a.False(same)

	a.Equal(int64(1), d1.GetSeed())
	a.PanicsWithValue("seed cannot be < 0", func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NoError(err)
		a.NotNil(card)
	}

	card, err := d.Draw()
	a.Equal(ErrEndOfDeck, err)
	a.Nil(card)
}
