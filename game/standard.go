package game

// StandardRules is heads-up Texas hold'em: flop of three, then turn and river
type StandardRules struct {
	reveals map[Phase]int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		reveals: map[Phase]int{
			PreFlop: 3,
			Flop:    1,
			Turn:    1,
			River:   0,
		},
	}
}

func (sr *StandardRules) Phases() []Phase {
	return []Phase{PreFlop, Flop, Turn, River}
}

func (sr *StandardRules) Reveal(phase Phase) int {
	return sr.reveals[phase]
}

func (sr *StandardRules) HoleCards() int {
	return 2
}

func (sr *StandardRules) BoardCards() int {
	return HandSize
}
