package searcher

import (
	"fmt"

	"holdem/game"
)

// deal samples one hidden world: an opponent hole pair and the rest of the
// board. It draws from a private copy, so the caller's deck never shrinks.
func deal(knownBoard []game.Card, deck *game.Deck) (oppHole, fullBoard []game.Card, err error) {
	if len(knownBoard) > game.HandSize {
		return nil, nil, fmt.Errorf("known board has %d cards, want at most %d: %w", len(knownBoard), game.HandSize, game.ErrInvalidCardSet)
	}

	private := deck.Copy()
	oppHole, err = private.Draw(2)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to deal opponent hole: %w", err)
	}

	completion, err := private.Draw(game.HandSize - len(knownBoard))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete board: %w", err)
	}

	fullBoard = make([]game.Card, 0, game.HandSize)
	fullBoard = append(fullBoard, knownBoard...)
	fullBoard = append(fullBoard, completion...)
	return oppHole, fullBoard, nil
}
