package game

import (
	"context"
	"fmt"
	"sort"

	"github.com/fadedpez/balatro/internal/logging"
	"github.com/fadedpez/balatro/internal/types"
	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/entities"
	"github.com/fadedpez/balatro/pkg/repositories/history"
	"github.com/fadedpez/balatro/pkg/scoring"
	"github.com/google/uuid"
)

const (
	HandSize         = 7 // Cards held after every refill
	MaxPlays         = 5 // Plays per game
	MaxDiscards      = 4 // Discards per game
	MaxPlaySelection = 5 // Most cards that can be played at once
)

// Game is a single-player session: a hand, a card source and the play/discard counters
type Game struct {
	ID           string
	Hand         []cards.Card
	PlaysLeft    int
	DiscardsLeft int
	TotalScore   int

	source  CardSource
	history history.Repository
	logger  *logging.Logger
	turn    int
}

// Option configures a Game
type Option func(*Game)

// WithHistory records every play in repo
func WithHistory(repo history.Repository) Option {
	return func(g *Game) {
		g.history = repo
	}
}

// WithLogger sets the logger used for game events
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates a game drawing from source. The hand starts empty; call Deal.
func NewGame(source CardSource, opts ...Option) *Game {
	g := &Game{
		ID:           uuid.New().String(),
		Hand:         make([]cards.Card, 0, HandSize),
		PlaysLeft:    MaxPlays,
		DiscardsLeft: MaxDiscards,
		source:       source,
		logger:       logging.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Deal refills the hand up to HandSize and returns how many cards were drawn
func (g *Game) Deal() int {
	need := HandSize - len(g.Hand)
	if need <= 0 || g.source.Remaining() == 0 {
		return 0
	}
	drawn := g.source.Draw(need)
	g.Hand = append(g.Hand, drawn...)
	g.logger.Debug("Game %s drew %d cards, %d left in deck", g.ID, len(drawn), g.source.Remaining())
	return len(drawn)
}

// Play scores the cards at indices, removes them from the hand and refills it
func (g *Game) Play(ctx context.Context, indices []int) (*entities.PlayRecord, error) {
	if g.PlaysLeft <= 0 {
		return nil, types.NewGameError(types.ErrNoPlaysLeft, "your card-drawing turns have been exhausted")
	}
	if g.exhausted() {
		return nil, types.NewGameError(types.ErrGameAlreadyEnded, "no cards left to play")
	}
	if err := g.validateSelection(indices, MaxPlaySelection); err != nil {
		return nil, err
	}

	played := g.selected(indices)
	result := scoring.Evaluate(played)
	record := entities.NewPlayRecord(g.ID, g.turn+1, played, result, g.TotalScore)

	if g.history != nil {
		if err := g.history.SavePlay(ctx, record); err != nil {
			return nil, types.WrapError(types.ErrInternalError, "failed to record play", err)
		}
	}

	g.remove(indices)
	g.turn++
	g.PlaysLeft--
	g.TotalScore = record.TotalScore
	g.Deal()

	g.logger.Info("Game %s play %d: %s for %d (total %d)", g.ID, record.Turn, result.Name, record.Score, g.TotalScore)
	return record, nil
}

// Discard removes the cards at indices from the hand and refills it
func (g *Game) Discard(indices []int) ([]cards.Card, error) {
	if g.DiscardsLeft <= 0 {
		return nil, types.NewGameError(types.ErrNoDiscardsLeft, "the number of card discards has been exhausted")
	}
	if g.exhausted() {
		return nil, types.NewGameError(types.ErrGameAlreadyEnded, "no cards left to discard")
	}
	if err := g.validateSelection(indices, len(g.Hand)); err != nil {
		return nil, err
	}

	discarded := g.selected(indices)
	g.remove(indices)
	g.DiscardsLeft--
	g.Deal()

	g.logger.Info("Game %s discarded %v, %d discards left", g.ID, cards.Strings(discarded), g.DiscardsLeft)
	return discarded, nil
}

// SortHand orders the hand by suit display order, then points
func (g *Game) SortHand() {
	g.Hand = cards.SortForDisplay(g.Hand)
}

// IsOver reports whether no further play is possible
func (g *Game) IsOver() bool {
	return g.PlaysLeft <= 0 || g.exhausted()
}

// exhausted reports whether both the hand and the deck are empty
func (g *Game) exhausted() bool {
	return len(g.Hand) == 0 && g.source.Remaining() == 0
}

// DeckRemaining returns how many cards are left to draw
func (g *Game) DeckRemaining() int {
	return g.source.Remaining()
}

// Turn returns how many plays have been made
func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) validateSelection(indices []int, max int) error {
	if len(indices) == 0 {
		return types.NewGameError(types.ErrInvalidSelection, "no cards have been selected")
	}
	if len(indices) > max {
		return types.NewGameErrorf(types.ErrInvalidSelection, "choose at most %d cards", max)
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(g.Hand) {
			return types.NewGameErrorf(types.ErrInvalidSelection, "index %d out of range", i)
		}
		if seen[i] {
			return types.NewGameErrorf(types.ErrInvalidSelection, "duplicate index %d", i)
		}
		seen[i] = true
	}
	return nil
}

// selected returns the hand cards at indices, in the order given
func (g *Game) selected(indices []int) []cards.Card {
	out := make([]cards.Card, len(indices))
	for n, i := range indices {
		out[n] = g.Hand[i]
	}
	return out
}

// remove drops the cards at indices, keeping the order of the rest
func (g *Game) remove(indices []int) {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		g.Hand = append(g.Hand[:i], g.Hand[i+1:]...)
	}
}

// String returns a short description of the game state
func (g *Game) String() string {
	return fmt.Sprintf("game %s: %d plays left, %d discards left, total %d", g.ID, g.PlaysLeft, g.DiscardsLeft, g.TotalScore)
}
