package searcher

import (
	"testing"

	"holdem/game"
	"holdem/utils"

	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	hole := game.MustParseCards("As Ks")

	for _, known := range []string{"", "Qs Js Ts", "Qs Js Ts 2c", "Qs Js Ts 2c 3d"} {
		knownBoard := game.MustParseCards(known)
		t.Run("completing a board of "+game.FormatCards(knownBoard), func(t *testing.T) {
			deck, err := game.NewDeckWithout(game.NewRand(1), append(append([]game.Card{}, hole...), knownBoard...)...)
			require.NoError(t, err)
			before := deck.Cards()

			oppHole, fullBoard, err := deal(knownBoard, deck)
			require.NoError(t, err)

			require.Len(t, oppHole, 2)
			require.Len(t, fullBoard, game.HandSize)
			for i, c := range knownBoard {
				require.Equal(t, c, fullBoard[i], "Known board should be a prefix")
			}

			all := append(append(append([]game.Card{}, hole...), oppHole...), fullBoard...)
			require.False(t, utils.HasDuplicates(all), "Sampled world should not reuse cards")
			for _, c := range oppHole {
				require.True(t, deck.Contains(c), "Opponent cards come from the deck")
			}
			require.Equal(t, before, deck.Cards(), "Deck should not be depleted")
		})
	}

	t.Run("rejecting an oversized board", func(t *testing.T) {
		deck := game.NewDeck(game.NewRand(1))
		_, _, err := deal(game.MustParseCards("2c 3c 4c 5c 6c 7c"), deck)
		require.ErrorIs(t, err, game.ErrInvalidCardSet)
	})

	t.Run("running out of cards", func(t *testing.T) {
		deck := game.NewDeck(game.NewRand(1))
		_, err := deck.Draw(game.NumCards - 3)
		require.NoError(t, err)

		_, _, err = deal(nil, deck)
		require.ErrorIs(t, err, game.ErrInsufficientCards)
	})
}
