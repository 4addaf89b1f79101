package scoring

import (
	"math/rand"
	"testing"

	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

var referenceSuits = map[cards.Suit]uint8{
	cards.Clubs:    0,
	cards.Diamonds: 1,
	cards.Hearts:   2,
	cards.Spades:   3,
}

// referenceCard converts to the reference evaluator's card, which counts the Ace as rank 1
func referenceCard(t *testing.T, c cards.Card) poker.Card {
	rank := c.Points()
	if rank == acePoints {
		rank = aceLow
	}
	pc, err := poker.MakeCard(poker.Suit(referenceSuits[c.Suit()]), poker.Rank(rank))
	require.NoError(t, err)
	return pc
}

func referenceEval(t *testing.T, cs []cards.Card) int16 {
	var h [5]poker.Card
	for i, c := range cs {
		h[i] = referenceCard(t, c)
	}
	return poker.Eval5(&h)
}

// For five distinct cards our categories are the standard poker categories, so a strictly
// higher category must also win under an independent evaluator.
func TestCategoryOrderMatchesReferenceEvaluator(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for i := 0; i < 5000; i++ {
		deck := cards.NewShuffledDeck(rng)
		a := deck.Draw(5)
		b := deck.Draw(5)

		ra, rb := Evaluate(a), Evaluate(b)
		if ra.Type == rb.Type {
			continue
		}
		if ra.Type < rb.Type {
			a, b = b, a
			ra, rb = rb, ra
		}

		require.Greater(t, referenceEval(t, a), referenceEval(t, b),
			"%s %v should beat %s %v", ra.Name, cards.Strings(a), rb.Name, cards.Strings(b))
	}
}
