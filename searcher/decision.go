package searcher

import "holdem/meta"

// Decision is the bot's choice at the end of a betting phase
type Decision int

const (
	Fold Decision = iota // 0
	Stay                 // 1
)

func (d Decision) String() string {
	switch d {
	case Stay:
		return "STAY"
	case Fold:
		return "FOLD"
	default:
		return "UNKNOWN"
	}
}

// Decide stays in the hand when the estimated win probability is at least one half
func Decide(winProbability float64) Decision {
	return DecideWithThreshold(winProbability, meta.StayThreshold)
}

func DecideWithThreshold(winProbability, threshold float64) Decision {
	if winProbability >= threshold {
		return Stay
	}
	return Fold
}
