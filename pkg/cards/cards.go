package cards

import (
	"sort"
	"strings"

	"github.com/fadedpez/balatro/internal/types"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists every suit in display order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitOrder = map[Suit]int{
	Spades:   0,
	Hearts:   1,
	Diamonds: 2,
	Clubs:    3,
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	_, ok := suitOrder[s]
	return ok
}

// Order returns the display position of the suit. It has no meaning for scoring.
func (s Suit) Order() int {
	if order, ok := suitOrder[s]; ok {
		return order
	}
	return len(suitOrder)
}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank in deck-building order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankPoints = map[Rank]int{
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

// Points returns the strength of the rank, or 0 for an unknown token
func (r Rank) Points() int {
	return rankPoints[r]
}

// Card represents a playing card. The zero value is not a valid card; use NewCard.
// Cards are comparable: two cards are equal when rank and suit match.
type Card struct {
	rank   Rank
	suit   Suit
	points int
}

// NewCard creates a card from a rank token and a suit
func NewCard(rank string, suit Suit) (Card, error) {
	points, ok := rankPoints[Rank(rank)]
	if !ok {
		return Card{}, types.NewGameErrorf(types.ErrInvalidRank, "unknown rank %q", rank)
	}
	if !suit.Valid() {
		return Card{}, types.NewGameErrorf(types.ErrInvalidSuit, "unknown suit %q", string(suit))
	}
	return Card{rank: Rank(rank), suit: suit, points: points}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(string(rank), suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Points returns the card's strength: A=14, K=13, Q=12, J=11, numbers by face value
func (c Card) Points() int {
	return c.points
}

// String returns a string representation of the card, suit first
func (c Card) String() string {
	return string(c.suit) + string(c.rank)
}

// Strings renders each card with String
func Strings(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// TotalPoints sums the points of the given cards
func TotalPoints(cs []Card) int {
	total := 0
	for _, c := range cs {
		total += c.points
	}
	return total
}

// SortForDisplay returns a copy of cs ordered by suit display order, then points ascending
func SortForDisplay(cs []Card) []Card {
	sorted := make([]Card, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].suit != sorted[j].suit {
			return sorted[i].suit.Order() < sorted[j].suit.Order()
		}
		return sorted[i].points < sorted[j].points
	})
	return sorted
}

var suitAliases = map[string]Suit{
	"♠": Spades, "s": Spades,
	"♥": Hearts, "h": Hearts,
	"♦": Diamonds, "d": Diamonds,
	"♣": Clubs, "c": Clubs,
}

// ParseCard parses tokens such as "As", "10h", "Td", "♠Q" or "K♣"
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Card{}, types.NewGameError(types.ErrInvalidArgument, "empty card token")
	}

	rankPart, suitPart, ok := splitSuit(token)
	if !ok {
		return Card{}, types.NewGameErrorf(types.ErrInvalidSuit, "no suit in %q", token)
	}

	rank := strings.ToUpper(rankPart)
	if rank == "T" {
		rank = string(Ten)
	}
	return NewCard(rank, suitAliases[strings.ToLower(suitPart)])
}

// splitSuit separates the suit from a token, accepting the suit at either end
func splitSuit(token string) (rank, suit string, ok bool) {
	for alias := range suitAliases {
		// Only the symbols may lead: "sA" is not a card
		if len(token) > len(alias) && strings.HasPrefix(token, alias) && Suit(alias).Valid() {
			return token[len(alias):], alias, true
		}
	}
	for alias := range suitAliases {
		if len(token) > len(alias) && strings.HasSuffix(strings.ToLower(token), alias) {
			return token[:len(token)-len(alias)], alias, true
		}
	}
	return "", "", false
}

// ParseCards parses a whitespace or comma separated list of card tokens
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
