package cards

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck struct {
	Cards []Card
}

// NewDeck creates a new, unshuffled 52 card deck
func NewDeck() *Deck {
	deck := &Deck{Cards: make([]Card, 0, len(Suits)*len(Ranks))}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck.Cards = append(deck.Cards, MustCard(rank, suit))
		}
	}
	return deck
}

// NewShuffledDeck creates a deck shuffled with rng, or with a time-seeded source when rng is nil
func NewShuffledDeck(rng *rand.Rand) *Deck {
	deck := NewDeck()
	deck.Shuffle(rng)
	return deck
}

// Shuffle shuffles the deck in place
func (d *Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw draws n cards from the top of the deck
func (d *Deck) Draw(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return drawn
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
