package table

import (
	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"
)

// CardSource provides cards on demand for a single hand.
// Draw must always succeed; the table guarantees it never draws more than
// 2 cards per seat plus 5 community cards, and seating is capped so a
// standard 52-card deck always has capacity
type CardSource interface {
	Draw() *deck.Card
}

// CardSourceFactory returns a fresh CardSource for each hand
type CardSourceFactory func() CardSource

// WinnerEvaluator decides which of the candidate hands win at showdown.
// It returns the indexes of the winning hands; ties are allowed and the
// result is never empty for non-empty input
type WinnerEvaluator interface {
	FindWinners(community deck.Hand, hands []deck.Hand) []int
}

// DeckSource is a CardSource backed by a freshly shuffled deck
type DeckSource struct {
	deck *deck.Deck
}

// NewDeckSource returns a CardSource backed by a deck shuffled with a CSPRNG
func NewDeckSource() CardSource {
	d := deck.New()
	d.ShuffleWith(rng.Crypto{})

	return &DeckSource{deck: d}
}

// Draw draws the next card
func (s *DeckSource) Draw() *deck.Card {
	card, err := s.deck.Draw()
	if err != nil {
		panic(err)
	}

	return card
}
