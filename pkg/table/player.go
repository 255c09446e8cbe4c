package table

import (
	"encoding/json"

	"holdemtable-server/pkg/deck"
)

// Player represents a seated player
// Cash carries over between hands; the bet, hole cards, and folded flag are
// hand-scoped and reset when a new hand starts
type Player struct {
	ID   string
	Name string

	cash   int
	bet    int
	cards  deck.Hand
	folded bool
}

func newPlayer(id, name string, cash int) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		cash:  cash,
		cards: make(deck.Hand, 0, 2),
	}
}

// Cash returns the player's balance
func (p *Player) Cash() int {
	return p.cash
}

// CurrentBet returns the amount the player committed in the current betting round
func (p *Player) CurrentBet() int {
	return p.bet
}

// Cards returns a copy of the player's hole cards
func (p *Player) Cards() deck.Hand {
	return p.cards.Clone()
}

// Active returns true if the player has not folded in the current hand
func (p *Player) Active() bool {
	return !p.folded
}

// placeBet moves the amount from the player's cash into their round bet
func (p *Player) placeBet(amount int) {
	p.cash -= amount
	p.bet += amount
}

func (p *Player) clearBet() {
	p.bet = 0
}

// newHand resets the player's hand-scoped fields and deals the hole cards
func (p *Player) newHand(cards deck.Hand) {
	p.cards = cards
	p.bet = 0
	p.folded = false
}

// MarshalJSON encodes the player without their hole cards
func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Cash       int    `json:"cash"`
		CurrentBet int    `json:"currentBet"`
		Active     bool   `json:"active"`
	}{
		ID:         p.ID,
		Name:       p.Name,
		Cash:       p.cash,
		CurrentBet: p.bet,
		Active:     !p.folded,
	})
}
