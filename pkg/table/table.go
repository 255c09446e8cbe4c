package table

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/deck"
)

// Options configures a Table
type Options struct {
	// StartingCash is the stake each player is seated with
	StartingCash int

	// MaxPlayers caps seating so a single 52-card deck always covers a hand
	MaxPlayers int
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		StartingCash: 100,
		MaxPlayers:   10,
	}
}

// Table is the authoritative state of a single Texas Hold'em table.
// It owns the player roster, the betting state machine, and pot settlement.
// The table performs no internal locking; callers must serialize access
type Table struct {
	logger    logrus.FieldLogger
	newCards  CardSourceFactory
	evaluator WinnerEvaluator
	options   Options

	players        []*Player
	state          State
	communityCards deck.Hand
	pot            int
	cards          CardSource

	// currentIndex points into the full seating order, not a filtered view,
	// so the current actor stays stable when other players fold
	currentIndex int

	// pendingActors counts the active players who still owe an action since
	// the last bet change; round completion is only checked once it reaches zero
	pendingActors int

	winners  []*Player
	showdown bool

	logChan chan *LogMessage
}

// New returns a new table
func New(logger logrus.FieldLogger, newCards CardSourceFactory, evaluator WinnerEvaluator, opts Options) *Table {
	if opts.StartingCash <= 0 {
		opts.StartingCash = DefaultOptions().StartingCash
	}

	if opts.MaxPlayers <= 0 || opts.MaxPlayers > DefaultOptions().MaxPlayers {
		opts.MaxPlayers = DefaultOptions().MaxPlayers
	}

	return &Table{
		logger:         logger,
		newCards:       newCards,
		evaluator:      evaluator,
		options:        opts,
		players:        make([]*Player, 0),
		state:          StateOpen,
		communityCards: make(deck.Hand, 0, 5),
		logChan:        make(chan *LogMessage, 256),
	}
}

// AddPlayer seats a new player with the starting cash.
// It is an idempotent no-op if the id is already seated. A player who joins
// mid-hand sits out until the next hand starts
func (t *Table) AddPlayer(id, name string) {
	for _, p := range t.players {
		if p.ID == id {
			return
		}
	}

	if len(t.players) >= t.options.MaxPlayers {
		t.logger.WithField("playerId", id).Warn("table is full")
		return
	}

	player := newPlayer(id, name, t.options.StartingCash)
	player.folded = t.state != StateOpen && t.state != StateEnded

	t.players = append(t.players, player)
	t.emit(id, "%s joined the table with ${%d}", name, player.cash)
}

// Start begins a new hand.
// With fewer than two seated players this is a no-op that leaves the table open.
// Otherwise every player is dealt two hole cards and the first seat acts first
func (t *Table) Start() {
	t.resetHand()

	if len(t.players) < 2 {
		return
	}

	t.cards = t.newCards()
	t.state = StatePreFlop
	t.pendingActors = 0

	for _, p := range t.players {
		cards := make(deck.Hand, 0, 2)
		cards.AddCard(t.cards.Draw())
		cards.AddCard(t.cards.Draw())

		p.newHand(cards)
		t.pendingActors++
	}

	t.currentIndex = 0
	t.logger.WithField("players", len(t.players)).Debug("hand started")
	t.emit("", "a new hand started with %d players", len(t.players))
}

func (t *Table) resetHand() {
	t.state = StateOpen
	t.communityCards = make(deck.Hand, 0, 5)
	t.pot = 0
	t.winners = nil
	t.showdown = false
}

// Act performs the current player's action.
// Actions arriving after the hand ended are silently ignored so stray late
// submissions cannot disturb a settled hand
func (t *Table) Act(a Action) error {
	if t.state == StateEnded {
		return nil
	}

	if t.state == StateOpen {
		return IllegalActionError("no hand is in progress")
	}

	p := t.players[t.currentIndex]

	switch a.Kind {
	case ActionCheck:
		if err := t.handleCheck(); err != nil {
			return err
		}
	case ActionCall:
		if err := t.handleCall(p); err != nil {
			return err
		}
	case ActionRaise:
		if err := t.handleRaise(p, a.Amount); err != nil {
			return err
		}
	case ActionFold:
		t.handleFold(p)
	default:
		return IllegalActionError(fmt.Sprintf("unknown action: %s", string(a.Kind)))
	}

	t.pendingActors--

	t.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"action": string(a.Kind),
		"amount": a.Amount,
	}).Debug("action performed")
	t.emit(p.ID, "%s %s", p.Name, a.Kind.LogMessage(a.Amount))

	if t.roundComplete() || t.state == StateEnded {
		t.roundEndActivities()
	}

	if t.state == StateEnded {
		t.distributeWinnings()
	} else {
		t.advanceCurrentPlayer()
	}

	return nil
}

func (t *Table) handleCheck() error {
	if t.currentMaxBet() != 0 {
		return IllegalActionError("cannot check, a bet is already active")
	}

	return nil
}

func (t *Table) handleCall(p *Player) error {
	maxBet := t.currentMaxBet()
	if maxBet == 0 {
		return IllegalActionError("nothing to call")
	}

	diff := maxBet - p.bet
	if diff > p.cash {
		return IllegalAmountError("insufficient cash to call")
	}

	p.placeBet(diff)
	return nil
}

func (t *Table) handleRaise(p *Player, amount int) error {
	maxBet := t.currentMaxBet()

	if amount+p.bet <= maxBet {
		return IllegalAmountError("raise is not higher than the current bet")
	}

	if amount > p.cash {
		return IllegalAmountError("insufficient cash")
	}

	if amount > t.minimumActiveCash() {
		return IllegalAmountError("raise exceeds the remaining cash of other players")
	}

	p.placeBet(amount)

	// a strictly higher bet means every other active player owes a fresh response
	t.pendingActors = len(t.activePlayers())

	return nil
}

func (t *Table) handleFold(p *Player) {
	p.folded = true

	if active := t.activePlayers(); len(active) == 1 {
		t.state = StateEnded
		t.winners = active
	}
}

// roundComplete reports whether the betting round is over.
// Completion is only checked once every pending actor has responded; if the
// bets still differ at that point, a full extra circuit is required
func (t *Table) roundComplete() bool {
	if t.pendingActors > 0 {
		return false
	}

	active := t.activePlayers()
	bet := active[0].bet
	for _, p := range active {
		if p.bet != bet {
			t.pendingActors = len(active)
			return false
		}
	}

	return true
}

func (t *Table) roundEndActivities() {
	total := 0
	for _, p := range t.players {
		total += p.bet
		p.clearBet()
	}
	t.pot += total

	t.pendingActors = len(t.activePlayers())

	switch t.state {
	case StatePreFlop:
		t.dealCommunityCards(3)
		t.state = StateFlop
	case StateFlop:
		t.dealCommunityCards(1)
		t.state = StateTurn
	case StateTurn:
		t.dealCommunityCards(1)
		t.state = StateRiver
	case StateRiver:
		t.state = StateEnded
	}
}

func (t *Table) dealCommunityCards(count int) {
	for i := 0; i < count; i++ {
		t.communityCards.AddCard(t.cards.Draw())
	}
}

func (t *Table) distributeWinnings() {
	if t.winners == nil {
		active := t.activePlayers()
		if len(active) == 1 {
			t.winners = active
		} else {
			hands := make([]deck.Hand, len(active))
			for i, p := range active {
				hands[i] = p.cards
			}

			winners := make([]*Player, 0, 1)
			for _, i := range t.evaluator.FindWinners(t.communityCards, hands) {
				winners = append(winners, active[i])
			}

			t.winners = winners
			t.showdown = true
		}
	}

	share := t.pot / len(t.winners)
	for _, w := range t.winners {
		w.cash += share
		t.emit(w.ID, "%s won ${%d}", w.Name, share)
	}

	for _, p := range t.players {
		p.clearBet()
	}
	t.pot = 0
}

func (t *Table) advanceCurrentPlayer() {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		index := (t.currentIndex + i) % n
		if !t.players[index].folded {
			t.currentIndex = index
			return
		}
	}

	panic("no active players left")
}

func (t *Table) currentMaxBet() int {
	maxBet := 0
	for _, p := range t.activePlayers() {
		if p.bet > maxBet {
			maxBet = p.bet
		}
	}

	return maxBet
}

func (t *Table) minimumActiveCash() int {
	minCash := -1
	for _, p := range t.activePlayers() {
		if minCash < 0 || p.cash < minCash {
			minCash = p.cash
		}
	}

	return minCash
}

func (t *Table) activePlayers() []*Player {
	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if !p.folded {
			active = append(active, p)
		}
	}

	return active
}

func (t *Table) emit(playerID, format string, a ...interface{}) {
	select {
	case t.logChan <- newLogMessage(playerID, format, a...):
	default:
		// audit records are observability only; drop when nobody is draining
	}
}

// State returns the current table state
func (t *Table) State() State {
	return t.state
}

// Players returns the seated players in seating order
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.players))
	copy(players, t.players)
	return players
}

// PlayerCards returns a copy of the given player's hole cards
func (t *Table) PlayerCards(playerID string) deck.Hand {
	for _, p := range t.players {
		if p.ID == playerID {
			return p.Cards()
		}
	}

	return deck.Hand{}
}

// CommunityCards returns a copy of the community cards
func (t *Table) CommunityCards() deck.Hand {
	return t.communityCards.Clone()
}

// CurrentPlayer returns the player whose turn it is.
// The second return value is false when no hand is in progress
func (t *Table) CurrentPlayer() (*Player, bool) {
	if t.state == StateOpen {
		return nil, false
	}

	return t.players[t.currentIndex], true
}

// Bets returns the current round bet for every seated player
func (t *Table) Bets() map[string]int {
	bets := make(map[string]int, len(t.players))
	for _, p := range t.players {
		bets[p.ID] = p.bet
	}

	return bets
}

// Pot returns the chips accumulated from completed betting rounds
func (t *Table) Pot() int {
	return t.pot
}

// Winners returns the hand's winners, or nil unless the hand has ended
func (t *Table) Winners() []*Player {
	if t.state != StateEnded {
		return nil
	}

	winners := make([]*Player, len(t.winners))
	copy(winners, t.winners)
	return winners
}

// WinnerHand returns the winning hole cards for display.
// The hand is only revealed after a showdown; a win by everyone else folding
// reveals nothing
func (t *Table) WinnerHand() deck.Hand {
	if t.state != StateEnded || !t.showdown {
		return deck.Hand{}
	}

	return t.winners[0].Cards()
}

// LogChan returns the channel audit records are sent on
func (t *Table) LogChan() <-chan *LogMessage {
	return t.logChan
}
