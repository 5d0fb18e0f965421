package game

import (
	"testing"

	"holdem/utils"

	"github.com/stretchr/testify/require"
)

func TestDeckDraw(t *testing.T) {
	t.Run("drawing removes cards without replacement", func(t *testing.T) {
		deck := NewDeck(NewRand(1))
		drawn, err := deck.Draw(7)

		require.NoError(t, err)
		require.Len(t, drawn, 7)
		require.Equal(t, NumCards-7, deck.Len(), "Deck should shrink by the drawn count")
		require.False(t, utils.HasDuplicates(drawn), "Drawn cards should be distinct")
		for _, c := range drawn {
			require.False(t, deck.Contains(c), "Drawn card %s should leave the deck", c)
		}
	})

	t.Run("drawing the whole deck", func(t *testing.T) {
		deck := NewDeck(NewRand(2))
		drawn, err := deck.Draw(NumCards)

		require.NoError(t, err)
		require.Zero(t, deck.Len())
		require.ElementsMatch(t, NewDeck(NewRand(2)).Cards(), drawn)
	})

	t.Run("drawing more than remain", func(t *testing.T) {
		deck := NewDeck(NewRand(3))
		_, err := deck.Draw(NumCards + 1)

		require.ErrorIs(t, err, ErrInsufficientCards)
		require.Equal(t, NumCards, deck.Len(), "Failed draw should leave the deck intact")
	})

	t.Run("drawing a negative count", func(t *testing.T) {
		_, err := NewDeck(NewRand(3)).Draw(-1)
		require.ErrorIs(t, err, ErrInvalidCardSet)
	})

	t.Run("same seed draws the same cards", func(t *testing.T) {
		a, err := NewDeck(NewRand(99)).Draw(10)
		require.NoError(t, err)
		b, err := NewDeck(NewRand(99)).Draw(10)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}

func TestDeckRemove(t *testing.T) {
	t.Run("removing known cards", func(t *testing.T) {
		excluded := MustParseCards("As Ks Qd")
		deck, err := NewDeckWithout(NewRand(1), excluded...)

		require.NoError(t, err)
		require.Equal(t, NumCards-3, deck.Len())
		for _, c := range excluded {
			require.False(t, deck.Contains(c))
		}
	})

	t.Run("removing a missing card", func(t *testing.T) {
		deck := NewDeck(NewRand(1))
		require.NoError(t, deck.Remove(MustParseCards("As")...))

		err := deck.Remove(MustParseCards("As")...)
		require.ErrorIs(t, err, ErrInvalidCardSet)
	})
}

func TestDeckCopy(t *testing.T) {
	t.Run("drawing from a copy leaves the original intact", func(t *testing.T) {
		deck := NewDeck(NewRand(5))
		before := deck.Cards()

		_, err := deck.Copy().Draw(10)
		require.NoError(t, err)

		require.Equal(t, before, deck.Cards(), "Original deck should not change")
	})

	t.Run("cards returns a copy", func(t *testing.T) {
		deck := NewDeck(NewRand(5))
		cards := deck.Cards()
		cards[0] = cards[1]

		require.NotEqual(t, cards, deck.Cards())
	})
}
