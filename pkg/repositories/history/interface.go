package history

import (
	"context"

	"github.com/fadedpez/balatro/pkg/entities"
)

// Repository defines storage operations for the plays made in a session
type Repository interface {
	// SavePlay appends a play to its session history
	SavePlay(ctx context.Context, play *entities.PlayRecord) error
	// GetPlays returns the plays of a session in the order they were made
	GetPlays(ctx context.Context, sessionID string) ([]*entities.PlayRecord, error)
	// GetStatistics aggregates the plays of a session
	GetStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
