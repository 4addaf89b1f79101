package entities

import (
	"time"

	"github.com/fadedpez/balatro/pkg/scoring"
)

// SessionStatistics represents aggregated statistics for one game session
type SessionStatistics struct {
	SessionID   string
	Plays       int
	TotalScore  int
	BestPlay    *PlayRecord
	TypeCounts  map[scoring.CardType]int
	LastUpdated time.Time
}

// NewSessionStatistics creates empty statistics for a session
func NewSessionStatistics(sessionID string) *SessionStatistics {
	return &SessionStatistics{
		SessionID:   sessionID,
		TypeCounts:  make(map[scoring.CardType]int),
		LastUpdated: time.Now(),
	}
}

// Add folds a play into the statistics
func (s *SessionStatistics) Add(play *PlayRecord) {
	s.Plays++
	s.TotalScore += play.Score
	s.TypeCounts[play.Result.Type]++
	if s.BestPlay == nil || play.Score > s.BestPlay.Score {
		s.BestPlay = play
	}
	s.LastUpdated = time.Now()
}

// AverageScore calculates the mean score per play
func (s *SessionStatistics) AverageScore() float64 {
	if s.Plays == 0 {
		return 0.0
	}
	return float64(s.TotalScore) / float64(s.Plays)
}
