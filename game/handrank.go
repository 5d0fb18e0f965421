package game

import (
	"fmt"
	"strings"
)

// Category is the class of a 5-card hand; higher is stronger
type Category int

const (
	HighCard      Category = iota // 0
	OnePair                       // 1
	TwoPair                       // 2
	ThreeOfAKind                  // 3
	Straight                      // 4
	Flush                         // 5
	FullHouse                     // 6
	FourOfAKind                   // 7
	StraightFlush                 // 8
	RoyalFlush                    // 9
)

var categoryNames = [...]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return "Unknown"
	}
	return categoryNames[c]
}

// NoKicker pads unused kicker slots. It is below every real rank, including
// the virtual low ace of a wheel.
const NoKicker = -2

// HandRank orders hands by category, then by the kicker slots lexicographically
type HandRank struct {
	Category Category
	Kickers  [5]int
}

func newHandRank(category Category, kickers ...int) HandRank {
	rank := HandRank{Category: category}
	for i := range rank.Kickers {
		if i < len(kickers) {
			rank.Kickers[i] = kickers[i]
		} else {
			rank.Kickers[i] = NoKicker
		}
	}
	return rank
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := range h.Kickers {
		if h.Kickers[i] != other.Kickers[i] {
			if h.Kickers[i] < other.Kickers[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (h HandRank) Less(other HandRank) bool {
	return h.Compare(other) < 0
}

// String renders the category with its kickers, e.g. "Two Pair [K 9 4]"
func (h HandRank) String() string {
	var kickers []string
	for _, k := range h.Kickers {
		if k != NoKicker {
			kickers = append(kickers, Rank(k).String())
		}
	}
	if len(kickers) == 0 {
		return h.Category.String()
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(kickers, " "))
}
