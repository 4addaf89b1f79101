package scoring

import (
	"sort"

	"github.com/fadedpez/balatro/pkg/cards"
)

// rankGroup holds every card of one rank, in input order
type rankGroup struct {
	rank  cards.Rank
	cards []cards.Card
}

func (g rankGroup) points() int {
	return g.rank.Points()
}

// suitGroup holds every card of one suit, in input order
type suitGroup struct {
	suit  cards.Suit
	cards []cards.Card
}

// groupByRank groups cards by rank. Groups keep first-seen order.
func groupByRank(cs []cards.Card) []rankGroup {
	index := make(map[cards.Rank]int)
	var groups []rankGroup
	for _, c := range cs {
		i, ok := index[c.Rank()]
		if !ok {
			i = len(groups)
			index[c.Rank()] = i
			groups = append(groups, rankGroup{rank: c.Rank()})
		}
		groups[i].cards = append(groups[i].cards, c)
	}
	return groups
}

// groupBySuit groups cards by suit. Groups keep first-seen order.
func groupBySuit(cs []cards.Card) []suitGroup {
	index := make(map[cards.Suit]int)
	var groups []suitGroup
	for _, c := range cs {
		i, ok := index[c.Suit()]
		if !ok {
			i = len(groups)
			index[c.Suit()] = i
			groups = append(groups, suitGroup{suit: c.Suit()})
		}
		groups[i].cards = append(groups[i].cards, c)
	}
	return groups
}

// ranksWithAtLeast returns the rank groups holding n or more cards, strongest rank first
func ranksWithAtLeast(groups []rankGroup, n int) []rankGroup {
	var out []rankGroup
	for _, g := range groups {
		if len(g.cards) >= n {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].points() > out[j].points()
	})
	return out
}

// rankCounts returns the size of every rank group, smallest first
func rankCounts(groups []rankGroup) []int {
	counts := make([]int, len(groups))
	for i, g := range groups {
		counts[i] = len(g.cards)
	}
	sort.Ints(counts)
	return counts
}

// countRanksWith returns how many rank groups hold exactly n cards
func countRanksWith(groups []rankGroup, n int) int {
	count := 0
	for _, g := range groups {
		if len(g.cards) == n {
			count++
		}
	}
	return count
}

// byPointsDesc returns a copy of cs sorted by points, highest first.
// Cards of equal points keep their input order.
func byPointsDesc(cs []cards.Card) []cards.Card {
	sorted := make([]cards.Card, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points() > sorted[j].Points()
	})
	return sorted
}

// topN returns the n strongest cards of cs
func topN(cs []cards.Card, n int) []cards.Card {
	sorted := byPointsDesc(cs)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
