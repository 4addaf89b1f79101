package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Card errors
	ErrInvalidRank ErrorCode = "INVALID_RANK"
	ErrInvalidSuit ErrorCode = "INVALID_SUIT"

	// Session errors
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION"
	ErrNoPlaysLeft      ErrorCode = "NO_PLAYS_LEFT"
	ErrNoDiscardsLeft   ErrorCode = "NO_DISCARDS_LEFT"
	ErrGameAlreadyEnded ErrorCode = "GAME_ALREADY_ENDED"

	// Input errors
	ErrInvalidCommand  ErrorCode = "INVALID_COMMAND"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// NewGameErrorf creates a new GameError with a formatted message
func NewGameErrorf(code ErrorCode, format string, args ...interface{}) *GameError {
	return NewGameError(code, fmt.Sprintf(format, args...))
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code.
// Wrapped chains (fmt.Errorf with %w) are followed.
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain and stores it in target
func As(err error, target **GameError) bool {
	if target == nil {
		return false
	}
	for err != nil {
		if gameErr, ok := err.(*GameError); ok {
			*target = gameErr
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
