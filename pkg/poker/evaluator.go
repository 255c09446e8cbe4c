package poker

import (
	"holdemtable-server/pkg/deck"
)

// Evaluator decides the winners at a Texas Hold'em showdown.
// It satisfies the table.WinnerEvaluator interface
type Evaluator struct{}

// FindWinners returns the indexes of the hands that make the strongest five
// cards out of their hole cards and the community cards. Ties return every
// winning index
func (e Evaluator) FindWinners(community deck.Hand, hands []deck.Hand) []int {
	best := HandRank(-1)
	winners := make([]int, 0, 1)

	for i, hand := range hands {
		cards := community.Clone()
		cards = append(cards, hand...)

		rank := BestHandRank(cards)
		if rank > best {
			best = rank
			winners = winners[:0]
		}

		if rank == best {
			winners = append(winners, i)
		}
	}

	return winners
}
