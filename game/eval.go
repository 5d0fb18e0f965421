package game

import (
	"fmt"
	"sort"

	"holdem/utils"
)

// HandSize is the number of cards that make up a poker hand
const HandSize = 5

// lowAce is the virtual rank an ace takes in a wheel (A-2-3-4-5)
const lowAce = -1

// EvalHand scores exactly five distinct cards
func EvalHand(cards []Card) (HandRank, error) {
	if len(cards) != HandSize {
		return HandRank{}, fmt.Errorf("hand has %d cards, want %d: %w", len(cards), HandSize, ErrInvalidCardSet)
	}
	if err := validate(cards); err != nil {
		return HandRank{}, err
	}
	return evalFive(cards), nil
}

// EvalBoard returns the best hand that can be made from the hole cards and
// the board, together with the five cards that make it. Every 5-card subset
// of hole++board is scored in lexicographic index order; among equally strong
// subsets the first one found is kept.
func EvalBoard(hole, board []Card) (HandRank, [HandSize]Card, error) {
	var best [HandSize]Card
	if len(hole) != 2 {
		return HandRank{}, best, fmt.Errorf("hole has %d cards, want 2: %w", len(hole), ErrInvalidCardSet)
	}
	if len(board) > HandSize {
		return HandRank{}, best, fmt.Errorf("board has %d cards, want at most %d: %w", len(board), HandSize, ErrInvalidCardSet)
	}

	cards := make([]Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	if len(cards) < HandSize {
		return HandRank{}, best, fmt.Errorf("%d cards available, want at least %d: %w", len(cards), HandSize, ErrInsufficientCards)
	}
	if err := validate(cards); err != nil {
		return HandRank{}, best, err
	}

	var bestRank HandRank
	found := false
	combo := make([]Card, HandSize)
	utils.Combinations(len(cards), HandSize, func(indices []int) {
		for i, idx := range indices {
			combo[i] = cards[idx]
		}
		rank := evalFive(combo)
		if !found || rank.Compare(bestRank) > 0 {
			bestRank = rank
			copy(best[:], combo)
			found = true
		}
	})
	return bestRank, best, nil
}

func validate(cards []Card) error {
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("card %d out of range: %w", int(c), ErrInvalidCardSet)
		}
	}
	if utils.HasDuplicates(cards) {
		return fmt.Errorf("duplicate cards in %s: %w", FormatCards(cards), ErrInvalidCardSet)
	}
	return nil
}

// evalFive assumes five distinct valid cards
func evalFive(cards []Card) HandRank {
	var ranks [NumRanks]int
	var suits [NumSuits]int
	for _, c := range cards {
		ranks[c.Rank()]++
		suits[c.Suit()]++
	}

	flush := false
	for _, n := range suits {
		if n == HandSize {
			flush = true
		}
	}

	straight, straightHigh := findStraight(ranks)

	// Group ranks by count, larger groups first, then higher rank first
	type group struct{ count, rank int }
	groups := make([]group, 0, HandSize)
	for r := NumRanks - 1; r >= 0; r-- {
		if ranks[r] > 0 {
			groups = append(groups, group{count: ranks[r], rank: r})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	// Ranks of the cards outside the leading group, highest first
	rest := func(skip ...int) []int {
		var out []int
		for r := NumRanks - 1; r >= 0; r-- {
			if ranks[r] == 1 && utils.FindIndex(skip, r) < 0 {
				out = append(out, r)
			}
		}
		return out
	}

	switch {
	case straight && flush && straightHigh == int(Ace):
		return newHandRank(RoyalFlush)
	case straight && flush:
		return newHandRank(StraightFlush, straightHigh)
	case groups[0].count == 4:
		return newHandRank(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return newHandRank(FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return newHandRank(Flush, rest()...)
	case straight:
		return newHandRank(Straight, straightHigh)
	case groups[0].count == 3:
		return newHandRank(ThreeOfAKind, append([]int{groups[0].rank}, rest()...)...)
	case groups[0].count == 2 && groups[1].count == 2:
		return newHandRank(TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return newHandRank(OnePair, append([]int{groups[0].rank}, rest()...)...)
	default:
		return newHandRank(HighCard, rest()...)
	}
}

// findStraight reports whether five distinct ranks form a straight and its
// high rank. In a wheel the ace counts below the two, so the high rank is five.
func findStraight(ranks [NumRanks]int) (bool, int) {
	distinct := make([]int, 0, HandSize)
	for r, n := range ranks {
		if n > 1 {
			return false, 0
		}
		if n == 1 {
			distinct = append(distinct, r)
		}
	}
	if len(distinct) != HandSize {
		return false, 0
	}

	if ranks[Ace] == 1 && ranks[Two] == 1 && ranks[Three] == 1 && ranks[Four] == 1 && ranks[Five] == 1 {
		distinct[len(distinct)-1] = lowAce
		sort.Ints(distinct)
	}

	low, high := distinct[0], distinct[len(distinct)-1]
	if high-low == 4 {
		return true, high
	}
	return false, 0
}
