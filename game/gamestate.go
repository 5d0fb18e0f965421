package game

import (
	"fmt"
)

// HandState is everything the bot knows during one hand: its hole cards, the
// revealed board and the cards still in the real deck.
type HandState struct {
	Rules Rules
	Phase Phase
	Hole  []Card
	Board []Card
	Deck  *Deck
}

// NewHandState deals the bot its hole cards from deck
func NewHandState(rules Rules, deck *Deck) (*HandState, error) {
	hole, err := deck.Draw(rules.HoleCards())
	if err != nil {
		return nil, fmt.Errorf("failed to deal hole cards: %w", err)
	}
	return &HandState{
		Rules: rules,
		Phase: rules.Phases()[0],
		Hole:  hole,
		Board: []Card{},
		Deck:  deck,
	}, nil
}

// Copy returns a state whose board and deck can change independently
func (hs *HandState) Copy() *HandState {
	hole := make([]Card, len(hs.Hole))
	copy(hole, hs.Hole)
	board := make([]Card, len(hs.Board))
	copy(board, hs.Board)

	return &HandState{
		Rules: hs.Rules,
		Phase: hs.Phase,
		Hole:  hole,
		Board: board,
		Deck:  hs.Deck.Copy(),
	}
}

// RevealBoard deals the community cards that follow the current phase and
// returns them. The phase itself is advanced by Advance.
func (hs *HandState) RevealBoard() ([]Card, error) {
	n := hs.Rules.Reveal(hs.Phase)
	if len(hs.Board)+n > hs.Rules.BoardCards() {
		return nil, fmt.Errorf("board already has %d cards, cannot reveal %d more: %w", len(hs.Board), n, ErrInvalidCardSet)
	}
	cards, err := hs.Deck.Draw(n)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal %s cards: %w", hs.Phase, err)
	}
	hs.Board = append(hs.Board, cards...)
	return cards, nil
}

// Advance moves to the next phase and reports false after the last one
func (hs *HandState) Advance() bool {
	phases := hs.Rules.Phases()
	for i, p := range phases {
		if p == hs.Phase && i+1 < len(phases) {
			hs.Phase = phases[i+1]
			return true
		}
	}
	return false
}
