package entities

import (
	"time"

	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/scoring"
)

// PlayRecord is the outcome of a single play within a session
type PlayRecord struct {
	SessionID  string
	Turn       int // 1-based play number
	Played     []cards.Card
	Result     scoring.Result
	Score      int
	TotalScore int // session total after this play
	PlayedAt   time.Time
}

// NewPlayRecord scores result and stamps the record with the current time
func NewPlayRecord(sessionID string, turn int, played []cards.Card, result scoring.Result, previousTotal int) *PlayRecord {
	score := result.Score()
	return &PlayRecord{
		SessionID:  sessionID,
		Turn:       turn,
		Played:     played,
		Result:     result,
		Score:      score,
		TotalScore: previousTotal + score,
		PlayedAt:   time.Now(),
	}
}
