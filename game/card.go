package game

import (
	"fmt"
	"strings"
)

// Card identifies one of the 52 cards: rank = card % 13, suit = card / 13
type Card int

const NumCards = 52

type Rank int

const (
	Two   Rank = iota // 0
	Three             // 1
	Four              // 2
	Five              // 3
	Six               // 4
	Seven             // 5
	Eight             // 6
	Nine              // 7
	Ten               // 8
	Jack              // 9
	Queen             // 10
	King              // 11
	Ace               // 12
)

const NumRanks = 13

// Suits carry no ordering between them
type Suit int

const (
	Clubs    Suit = iota // 0
	Diamonds             // 1
	Hearts               // 2
	Spades               // 3
)

const NumSuits = 4

var rankLabels = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var suitLabels = [NumSuits]string{"♣", "♦", "♥", "♠"}

func NewCard(rank Rank, suit Suit) Card {
	return Card(int(suit)*NumRanks + int(rank))
}

func (c Card) Rank() Rank {
	return Rank(int(c) % NumRanks)
}

func (c Card) Suit() Suit {
	return Suit(int(c) / NumRanks)
}

func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankLabels[r]
}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitLabels[s]
}

// String returns a readable card such as "A♠" or "10♦"
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// FormatCards joins cards with spaces, e.g. "A♠ K♠"
func FormatCards(cards []Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

// ParseCard parses one card token. Ranks: 2-9, T or 10, J, Q, K, A.
// Suits: c, d, h, s (either case) or the suit symbols.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for suit, label := range suitLabels {
		if strings.HasSuffix(s, label) {
			return parseWithSuit(s, strings.TrimSuffix(s, label), Suit(suit))
		}
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return parseWithSuit(s, s[:len(s)-1], suit)
}

func parseWithSuit(token, rankPart string, suit Suit) (Card, error) {
	rank, err := parseRank(rankPart)
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", token, err)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses whitespace or comma separated cards ("As Ks", "Qs,Js")
// as well as concatenated two-character cards ("AsKsQs").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var cards []Card
	for _, field := range fields {
		if isASCII(field) && len(field) > 3 && len(field)%2 == 0 && !strings.Contains(field, "10") {
			for i := 0; i < len(field); i += 2 {
				card, err := ParseCard(field[i : i+2])
				if err != nil {
					return nil, err
				}
				cards = append(cards, card)
			}
			continue
		}
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
