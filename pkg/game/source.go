package game

import "github.com/fadedpez/balatro/pkg/cards"

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// CardSource supplies cards to a game. *cards.Deck satisfies it.
type CardSource interface {
	// Draw removes up to n cards from the source and returns them
	Draw(n int) []cards.Card
	// Remaining returns how many cards can still be drawn
	Remaining() int
}
