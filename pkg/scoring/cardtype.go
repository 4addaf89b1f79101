package scoring

// CardType is the category a played hand is classified as.
// The set is closed; every value carries fixed name, base points, multiplier and arity.
type CardType int

const (
	Empty CardType = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

type cardTypeInfo struct {
	name       string
	base       int
	multiplier int
	arity      int
}

var cardTypes = [...]cardTypeInfo{
	Empty:         {name: "Empty", base: 0, multiplier: 0, arity: 0},
	HighCard:      {name: "High card", base: 5, multiplier: 1, arity: 1},
	Pair:          {name: "Pair", base: 10, multiplier: 2, arity: 2},
	TwoPair:       {name: "Two pair", base: 20, multiplier: 2, arity: 4},
	ThreeOfAKind:  {name: "Three of a kind", base: 30, multiplier: 3, arity: 3},
	Straight:      {name: "Straight", base: 40, multiplier: 4, arity: 5},
	Flush:         {name: "Flush", base: 45, multiplier: 4, arity: 5},
	FullHouse:     {name: "Full house", base: 50, multiplier: 5, arity: 5},
	FourOfAKind:   {name: "Four of a kind", base: 60, multiplier: 6, arity: 4},
	StraightFlush: {name: "Straight flush", base: 100, multiplier: 8, arity: 5},
}

// CardTypes lists the scoring categories from lowest to highest precedence, Empty excluded
var CardTypes = []CardType{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

func (t CardType) info() cardTypeInfo {
	if t < Empty || int(t) >= len(cardTypes) {
		return cardTypes[Empty]
	}
	return cardTypes[t]
}

// Name returns the display name, e.g. "Full house"
func (t CardType) Name() string {
	return t.info().name
}

// Base returns the fixed base points
func (t CardType) Base() int {
	return t.info().base
}

// Multiplier returns the fixed multiplier
func (t CardType) Multiplier() int {
	return t.info().multiplier
}

// Arity returns how many cards the scoring subset of this category holds
func (t CardType) Arity() int {
	return t.info().arity
}

// String implements fmt.Stringer
func (t CardType) String() string {
	return t.Name()
}
