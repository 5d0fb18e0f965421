package game

import (
	"fmt"

	"holdem/utils"

	"golang.org/x/exp/rand"
)

// NewRand returns a PCG-backed random source; the same seed always yields the same draws
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Deck is the bag of cards not yet dealt. It is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a full 52-card deck drawing from rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, NumCards),
		rng:   rng,
	}
	for c := Card(0); c < NumCards; c++ {
		d.cards = append(d.cards, c)
	}
	return d
}

// NewDeckWithout returns a full deck minus the excluded cards
func NewDeckWithout(rng *rand.Rand, excluded ...Card) (*Deck, error) {
	d := NewDeck(rng)
	if err := d.Remove(excluded...); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Contains(card Card) bool {
	return utils.FindIndex(d.cards, card) >= 0
}

// Draw removes n cards chosen uniformly at random without replacement
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards: %w", n, ErrInvalidCardSet)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("cannot draw %d cards from %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}

	// Partial Fisher-Yates: the drawn cards end up at the tail
	drawn := make([]Card, n)
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1
		j := d.rng.Intn(last + 1)
		d.cards[j], d.cards[last] = d.cards[last], d.cards[j]
		drawn[i] = d.cards[last]
		d.cards = d.cards[:last]
	}
	return drawn, nil
}

// Remove takes specific cards out of the deck
func (d *Deck) Remove(cards ...Card) error {
	for _, card := range cards {
		i := utils.FindIndex(d.cards, card)
		if i < 0 {
			return fmt.Errorf("card %s is not in the deck: %w", card, ErrInvalidCardSet)
		}
		d.cards = append(d.cards[:i], d.cards[i+1:]...)
	}
	return nil
}

// Copy returns a deck with identical remaining contents. The copy shares the
// random source, so a seeded run stays reproducible across copies.
func (d *Deck) Copy() *Deck {
	return &Deck{
		cards: d.Cards(),
		rng:   d.rng,
	}
}
