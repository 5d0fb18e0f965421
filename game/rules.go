package game

// Phase is a betting round: a point at which the bot decides with a partially revealed board
type Phase int

const (
	PreFlop Phase = iota // 0
	Flop                 // 1
	Turn                 // 2
	River                // 3
)

func (p Phase) String() string {
	switch p {
	case PreFlop:
		return "Pre-Flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

type Rules interface {
	// Phases lists the betting rounds in the order they are played
	Phases() []Phase
	// Reveal is the number of community cards dealt after deciding in a phase
	Reveal(phase Phase) int
	HoleCards() int
	BoardCards() int
}
