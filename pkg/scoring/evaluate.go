package scoring

import (
	"github.com/fadedpez/balatro/pkg/cards"
)

// Result is the classification of a set of played cards
type Result struct {
	Type       CardType
	Name       string
	Base       int
	Multiplier int
	// Scoring holds the cards, taken from the input, that count toward the score
	Scoring []cards.Card
}

// ChipSum returns the sum of points of the scoring cards
func (r Result) ChipSum() int {
	return cards.TotalPoints(r.Scoring)
}

// Score returns (base + chip sum) * multiplier
func (r Result) Score() int {
	return (r.Base + r.ChipSum()) * r.Multiplier
}

func newResult(t CardType, scoring []cards.Card) Result {
	return Result{
		Type:       t,
		Name:       t.Name(),
		Base:       t.Base(),
		Multiplier: t.Multiplier(),
		Scoring:    scoring,
	}
}

// hand is the per-evaluation view of the input: the cards plus their rank and suit groups
type hand struct {
	cards []cards.Card
	ranks []rankGroup
	suits []suitGroup
}

func newHand(cs []cards.Card) *hand {
	return &hand{
		cards: cs,
		ranks: groupByRank(cs),
		suits: groupBySuit(cs),
	}
}

// attempt pairs a category with its predicate and its best-subset picker.
// A picker may return nil even when the predicate held; the category is then skipped.
type attempt struct {
	cardType CardType
	matches  func(h *hand) bool
	pick     func(h *hand) []cards.Card
}

// attempts is ordered highest precedence first and ends with the catch-all high card
var attempts = []attempt{
	{StraightFlush, isStraightFlush, pickStraightFlush},
	{FourOfAKind, isFourOfAKind, pickFourOfAKind},
	{FullHouse, isFullHouse, pickFullHouse},
	{Flush, isFlush, pickFlush},
	{Straight, isStraight, pickStraight},
	{ThreeOfAKind, isThreeOfAKind, pickThreeOfAKind},
	{TwoPair, isTwoPair, pickTwoPair},
	{Pair, isPair, pickPair},
	{HighCard, always, pickHighCard},
}

// Evaluate classifies cards and selects the subset that scores.
// The input is never modified. Evaluate is safe for concurrent use.
func Evaluate(cs []cards.Card) Result {
	if len(cs) == 0 {
		return newResult(Empty, []cards.Card{})
	}
	return classify(newHand(cs), attempts)
}

func classify(h *hand, order []attempt) Result {
	for _, a := range order {
		if !a.matches(h) {
			continue
		}
		if picked := a.pick(h); len(picked) > 0 {
			return newResult(a.cardType, picked)
		}
	}
	return newResult(Empty, []cards.Card{})
}

// predicates

func always(*hand) bool { return true }

func isStraightFlush(h *hand) bool {
	for _, g := range h.suits {
		if len(g.cards) >= runLength && hasRun(g.cards) {
			return true
		}
	}
	return false
}

func isFourOfAKind(h *hand) bool {
	return len(ranksWithAtLeast(h.ranks, 4)) > 0
}

// isFullHouse holds when the rank counts are exactly a pair and a triple, or when two ranks
// have three or more cards (the lower one supplies the pair). Extra unmatched cards rule out
// the pair-and-triple form, so a triple with a pair and a kicker is three of a kind.
func isFullHouse(h *hand) bool {
	if len(ranksWithAtLeast(h.ranks, 3)) >= 2 {
		return true
	}
	counts := rankCounts(h.ranks)
	return len(counts) == 2 && counts[0] == 2 && counts[1] == 3
}

func isFlush(h *hand) bool {
	for _, g := range h.suits {
		if len(g.cards) >= runLength {
			return true
		}
	}
	return false
}

func isStraight(h *hand) bool {
	return hasRun(h.cards)
}

func isThreeOfAKind(h *hand) bool {
	return len(ranksWithAtLeast(h.ranks, 3)) > 0
}

// isTwoPair counts ranks with exactly two cards; a triple is not a pair here
func isTwoPair(h *hand) bool {
	return countRanksWith(h.ranks, 2) == 2
}

func isPair(h *hand) bool {
	return countRanksWith(h.ranks, 2) > 0
}

// pickers

func pickStraightFlush(h *hand) []cards.Card {
	var best []cards.Card
	bestTop := -1
	for _, g := range h.suits {
		if len(g.cards) < runLength {
			continue
		}
		run := bestRun(g.cards)
		if run == nil {
			continue
		}
		got := cardsForRun(g.cards, run)
		if len(got) != runLength {
			continue
		}
		if top := run[len(run)-1]; top > bestTop {
			bestTop = top
			best = got
		}
	}
	return best
}

func pickFourOfAKind(h *hand) []cards.Card {
	quads := ranksWithAtLeast(h.ranks, 4)
	if len(quads) == 0 {
		return nil
	}
	return topN(quads[0].cards, 4)
}

func pickFullHouse(h *hand) []cards.Card {
	triples := ranksWithAtLeast(h.ranks, 3)
	if len(triples) == 0 {
		return nil
	}
	triple := triples[0]
	for _, g := range ranksWithAtLeast(h.ranks, 2) {
		if g.rank == triple.rank {
			continue
		}
		picked := topN(triple.cards, 3)
		return append(picked, topN(g.cards, 2)...)
	}
	return nil
}

// pickFlush takes the suit whose five strongest cards sum highest; the first suit seen wins ties
func pickFlush(h *hand) []cards.Card {
	var best []cards.Card
	bestSum := -1
	for _, g := range h.suits {
		if len(g.cards) < runLength {
			continue
		}
		five := topN(g.cards, runLength)
		if sum := cards.TotalPoints(five); sum > bestSum {
			bestSum = sum
			best = five
		}
	}
	return best
}

func pickStraight(h *hand) []cards.Card {
	run := bestRun(h.cards)
	if run == nil {
		return nil
	}
	return cardsForRun(h.cards, run)
}

func pickThreeOfAKind(h *hand) []cards.Card {
	triples := ranksWithAtLeast(h.ranks, 3)
	if len(triples) == 0 {
		return nil
	}
	return topN(triples[0].cards, 3)
}

func pickTwoPair(h *hand) []cards.Card {
	return pickPairs(h, 2)
}

func pickPair(h *hand) []cards.Card {
	return pickPairs(h, 1)
}

// pickPairs takes two cards from each of the k strongest ranks holding two or more cards
func pickPairs(h *hand, k int) []cards.Card {
	pairs := ranksWithAtLeast(h.ranks, 2)
	if len(pairs) < k {
		return nil
	}
	picked := make([]cards.Card, 0, 2*k)
	for _, g := range pairs[:k] {
		picked = append(picked, topN(g.cards, 2)...)
	}
	return picked
}

func pickHighCard(h *hand) []cards.Card {
	return topN(h.cards, 1)
}
