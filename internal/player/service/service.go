// Package service provides business logic for the player pool:
// listing and manual additions.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	playerRepository "github.com/cricbid/ipl-auction/internal/player/repository"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
	"github.com/cricbid/ipl-auction/pkg/inr"
)

// Roles the seed data uses; offered as choices on the add-player form.
var roles = []string{"Batsman", "Bowler", "Wicketkeeper", "Allrounder"}

// Service defines the interface for player pool operations.
type Service interface {
	// ListPlayers returns the full pool plus team names for the sell form.
	ListPlayers(ctx context.Context) (*playerModel.PlayersPage, error)

	// AddPlayer inserts a new Available player.
	AddPlayer(ctx context.Context, req *playerModel.AddPlayerRequest) (*playerModel.Player, error)

	// AddPlayerForm describes the add-player form.
	AddPlayerForm() *playerModel.AddPlayerForm
}

type service struct {
	players playerRepository.Repository
	teams   teamRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new player service instance.
func New(players playerRepository.Repository, teams teamRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{players: players, teams: teams, logger: logger}
}

// ListPlayers returns the full pool plus team names for the sell form.
func (s *service) ListPlayers(ctx context.Context) (*playerModel.PlayersPage, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}

	teamNames := make(map[uint]string, len(teams))
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
		names = append(names, t.Name)
	}

	page := &playerModel.PlayersPage{
		Players: make([]playerModel.PlayerResponse, 0, len(players)),
		Teams:   names,
	}
	for _, p := range players {
		resp := playerModel.PlayerResponse{
			ID:        p.ID,
			Name:      p.Name,
			Role:      p.Role,
			SetName:   p.SetName,
			BasePrice: p.BasePrice,
			Status:    p.Status,
			Credits:   p.Credits,
			Price:     p.Price,
		}
		if p.Status == playerModel.StatusSold {
			resp.PriceDisplay = inr.Format(p.Price)
			if p.TeamID != nil {
				resp.Team = teamNames[*p.TeamID]
			}
		}
		page.Players = append(page.Players, resp)
	}

	return page, nil
}

// AddPlayer inserts a new Available player.
func (s *service) AddPlayer(ctx context.Context, req *playerModel.AddPlayerRequest) (*playerModel.Player, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Role) == "" ||
		strings.TrimSpace(req.SetName) == "" ||
		strings.TrimSpace(req.BasePrice) == "" {
		return nil, playerModel.ErrInvalidPlayer
	}

	player := &playerModel.Player{
		Name:      req.Name,
		Role:      req.Role,
		SetName:   req.SetName,
		BasePrice: req.BasePrice,
		Status:    playerModel.StatusAvailable,
		Credits:   req.Credits,
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Infow("player added", "player_id", player.ID, "name", player.Name)
	return player, nil
}

// AddPlayerForm describes the add-player form.
func (s *service) AddPlayerForm() *playerModel.AddPlayerForm {
	return &playerModel.AddPlayerForm{
		Roles:          roles,
		DefaultCredits: 0,
	}
}
