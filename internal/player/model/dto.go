// Package model provides domain models and DTOs for the player module.
package model

// AddPlayerRequest represents the add-player form submission.
// Credits is optional and defaults to 0.
type AddPlayerRequest struct {
	Name      string  `form:"name" json:"name" binding:"required"`
	Role      string  `form:"role" json:"role" binding:"required"`
	SetName   string  `form:"set_name" json:"set_name" binding:"required"`
	BasePrice string  `form:"base_price" json:"base_price" binding:"required"`
	Credits   float64 `form:"credits" json:"credits"`
}

// PlayerResponse represents one player row on the players listing page.
type PlayerResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	SetName      string  `json:"set_name"`
	BasePrice    string  `json:"base_price"`
	Status       Status  `json:"status"`
	Credits      float64 `json:"credits"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display,omitempty"`
	Team         string  `json:"team,omitempty"`
}

// PlayersPage is the players listing payload: the full pool plus the
// team names needed to populate the sell form.
type PlayersPage struct {
	Players []PlayerResponse `json:"players"`
	Teams   []string         `json:"teams"`
}

// AddPlayerForm describes the add-player form for GET /add: the role
// choices the seed data uses and the credits default.
type AddPlayerForm struct {
	Roles          []string `json:"roles"`
	DefaultCredits float64  `json:"default_credits"`
}
