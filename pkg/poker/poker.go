package poker

import (
	"fmt"
	"math/bits"
	"sort"

	"holdemtable-server/pkg/deck"
)

// Hand is a poker hand category, i.e., full house
type Hand int

// Constants for hand
const (
	HighCard Hand = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// HandRank encodes the strength of a 5-card hand; a higher rank beats a lower one.
// The category lives in the top bits, the tie-breaking ranks below it
type HandRank int

// Hand returns the category for the rank
func (r HandRank) Hand() Hand {
	return Hand(r >> 20)
}

// BestHandRank returns the strongest 5-card rank among all 5-card subsets of the cards
func BestHandRank(cards deck.Hand) HandRank {
	if len(cards) < 5 {
		panic(fmt.Sprintf("need at least 5 cards, got %d", len(cards)))
	}

	best := HandRank(-1)
	n := len(cards)
	for mask := 0; mask < (1 << n); mask++ {
		if bits.OnesCount(uint(mask)) != 5 {
			continue
		}

		hand := make([]*deck.Card, 0, 5)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				hand = append(hand, cards[i])
			}
		}

		if rank := rankFive(hand); rank > best {
			best = rank
		}
	}

	return best
}

// group is a set of equally ranked cards within a hand
type group struct {
	rank  int
	count int
}

func rankFive(cards []*deck.Card) HandRank {
	counts := make(map[int]int)
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	groups := make([]group, 0, 5)
	for rank, count := range counts {
		groups = append(groups, group{rank: rank, count: count})
	}

	// order by count, then rank, so tiebreakers read pairs before kickers
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	straightHigh := straightHighCard(groups)

	var hand Hand
	switch {
	case straightHigh > 0 && flush:
		hand = StraightFlush
	case groups[0].count == 4:
		hand = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		hand = FullHouse
	case flush:
		hand = Flush
	case straightHigh > 0:
		hand = Straight
	case groups[0].count == 3:
		hand = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		hand = TwoPair
	case groups[0].count == 2:
		hand = OnePair
	default:
		hand = HighCard
	}

	rank := HandRank(hand) << 20
	if hand == Straight || hand == StraightFlush {
		return rank | HandRank(straightHigh)
	}

	shift := 16
	for _, g := range groups {
		rank |= HandRank(g.rank) << shift
		shift -= 4
	}

	return rank
}

// straightHighCard returns the high card of a straight, or 0 if the five
// cards are not consecutive. The wheel (A-2-3-4-5) counts with a high of 5
func straightHighCard(groups []group) int {
	if len(groups) != 5 {
		return 0
	}

	// groups are sorted by rank descending when all counts are 1
	if groups[0].rank-groups[4].rank == 4 {
		return groups[0].rank
	}

	if groups[0].rank == deck.Ace && groups[1].rank == 5 && groups[4].rank == 2 {
		return 5
	}

	return 0
}
