package scoring

import (
	"sort"

	"github.com/fadedpez/balatro/pkg/cards"
)

const (
	runLength = 5
	acePoints = 14
	aceLow    = 1
)

// distinctValues returns the distinct points of cs in ascending order.
// With aceAsOne set, an Ace is counted as 1 instead of 14.
func distinctValues(cs []cards.Card, aceAsOne bool) []int {
	seen := make(map[int]bool, len(cs))
	values := make([]int, 0, len(cs))
	for _, c := range cs {
		v := c.Points()
		if aceAsOne && v == acePoints {
			v = aceLow
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Ints(values)
	return values
}

// highestRun returns the highest window of five consecutive values in ascending, distinct
// values, or nil
func highestRun(values []int) []int {
	for i := len(values) - runLength; i >= 0; i-- {
		window := values[i : i+runLength]
		if window[runLength-1]-window[0] == runLength-1 {
			return window
		}
	}
	return nil
}

// bestRun returns the five values of the highest straight in cs, ascending, or nil.
// A wheel comes back as [1 2 3 4 5]; its top is 5.
func bestRun(cs []cards.Card) []int {
	if run := highestRun(distinctValues(cs, false)); run != nil {
		return run
	}
	hasAce := false
	for _, c := range cs {
		if c.Points() == acePoints {
			hasAce = true
			break
		}
	}
	if !hasAce {
		return nil
	}
	return highestRun(distinctValues(cs, true))
}

// hasRun reports whether cs contains five consecutive values, Ace high or low
func hasRun(cs []cards.Card) bool {
	return bestRun(cs) != nil
}

// cardsForRun picks one card for each value of run, scanning cs strongest first.
// Value 1 is realized by an Ace. Returns nil if a value has no card.
func cardsForRun(cs []cards.Card, run []int) []cards.Card {
	sorted := byPointsDesc(cs)
	chosen := make([]cards.Card, 0, len(run))
	for _, need := range run {
		want := need
		if want == aceLow {
			want = acePoints
		}
		found := false
		for _, c := range sorted {
			if c.Points() == want {
				chosen = append(chosen, c)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return chosen
}
