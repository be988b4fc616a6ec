package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoActiveSession      = errors.New("no active session")
	ErrActiveSessionExists  = errors.New("active session already exists")
	ErrSessionAlreadyPaused = errors.New("session already paused")
	ErrSessionNotPaused     = errors.New("session not paused")
)
