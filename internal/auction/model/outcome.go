// Package model provides the per-request outcome value returned by
// auction operations.
package model

// Outcome categories, matching the alert levels the listing page shows.
const (
	CategorySuccess = "success"
	CategoryDanger  = "danger"
	CategoryWarning = "warning"
	CategoryInfo    = "info"
)

// Outcome is the explicit result of a state-mutating auction
// operation: a display category plus a human-readable message. It
// replaces implicit session flash state.
type Outcome struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Success builds a success outcome.
func Success(message string) *Outcome {
	return &Outcome{Category: CategorySuccess, Message: message}
}

// Danger builds a danger outcome.
func Danger(message string) *Outcome {
	return &Outcome{Category: CategoryDanger, Message: message}
}

// Warning builds a warning outcome.
func Warning(message string) *Outcome {
	return &Outcome{Category: CategoryWarning, Message: message}
}

// Info builds an info outcome.
func Info(message string) *Outcome {
	return &Outcome{Category: CategoryInfo, Message: message}
}
