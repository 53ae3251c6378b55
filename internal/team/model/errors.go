package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInsufficientBudget indicates the team cannot afford the bid.
	ErrInsufficientBudget = errors.New("not enough budget")
)
