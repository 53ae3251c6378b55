package model

import "errors"

var (
	// ErrPlayerNotFound indicates the referenced player id does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrAlreadyProcessed indicates a sell attempt on a player that is
	// no longer Available.
	ErrAlreadyProcessed = errors.New("player already processed")
	// ErrAlreadyAvailable indicates an undo on a player that has
	// nothing to undo.
	ErrAlreadyAvailable = errors.New("player is already available")
	// ErrInvalidPrice indicates the bid price did not parse as a
	// positive number.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidPlayer indicates a malformed add-player submission.
	ErrInvalidPlayer = errors.New("invalid player")
)
