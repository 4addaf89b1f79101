package history

import (
	"context"
	"errors"
	"sync"

	"github.com/fadedpez/balatro/pkg/entities"
)

var ErrNilPlay = errors.New("play record is nil")

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of sessionID to plays, oldest first
	plays map[string][]*entities.PlayRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		plays: make(map[string][]*entities.PlayRecord),
	}
}

// SavePlay stores a play for its session
func (r *MemoryRepository) SavePlay(ctx context.Context, play *entities.PlayRecord) error {
	if play == nil {
		return ErrNilPlay
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.plays[play.SessionID] = append(r.plays[play.SessionID], play)
	return nil
}

// GetPlays retrieves the plays for a session
func (r *MemoryRepository) GetPlays(ctx context.Context, sessionID string) ([]*entities.PlayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	plays := r.plays[sessionID]
	out := make([]*entities.PlayRecord, len(plays))
	copy(out, plays)
	return out, nil
}

// GetStatistics calculates statistics from the stored plays of a session
func (r *MemoryRepository) GetStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error) {
	plays, err := r.GetPlays(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stats := entities.NewSessionStatistics(sessionID)
	for _, play := range plays {
		stats.Add(play)
	}
	return stats, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
