// Package model provides domain models and DTOs for the team module.
package model

// SquadPlayer represents a sold player inside a team's roster listing.
type SquadPlayer struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
}

// TeamSummary represents one franchise on the teams listing page:
// remaining budget plus the squad bought so far.
type TeamSummary struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Budget        float64       `json:"budget"`
	BudgetDisplay string        `json:"budget_display"`
	Squad         []SquadPlayer `json:"squad"`
}
