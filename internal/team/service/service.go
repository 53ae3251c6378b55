// Package service provides business logic for the teams listing.
package service

import (
	"context"

	"go.uber.org/zap"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	playerRepository "github.com/cricbid/ipl-auction/internal/player/repository"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
	"github.com/cricbid/ipl-auction/pkg/inr"
)

// Service defines the interface for team listing operations.
type Service interface {
	// ListTeams returns every franchise with its remaining budget and
	// the squad bought so far.
	ListTeams(ctx context.Context) ([]teamModel.TeamSummary, error)
}

type service struct {
	teams   teamRepository.Repository
	players playerRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(teams teamRepository.Repository, players playerRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{teams: teams, players: players, logger: logger}
}

// ListTeams returns every franchise with budget and sold squad.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamSummary, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}

	sold, err := s.players.ListByStatus(ctx, playerModel.StatusSold)
	if err != nil {
		return nil, err
	}

	squads := make(map[uint][]teamModel.SquadPlayer, len(teams))
	for _, p := range sold {
		if p.TeamID == nil {
			continue
		}
		squads[*p.TeamID] = append(squads[*p.TeamID], teamModel.SquadPlayer{
			ID:           p.ID,
			Name:         p.Name,
			Role:         p.Role,
			Price:        p.Price,
			PriceDisplay: inr.Format(p.Price),
		})
	}

	summaries := make([]teamModel.TeamSummary, 0, len(teams))
	for _, t := range teams {
		squad := squads[t.ID]
		if squad == nil {
			squad = []teamModel.SquadPlayer{}
		}
		summaries = append(summaries, teamModel.TeamSummary{
			ID:            t.ID,
			Name:          t.Name,
			Budget:        t.Budget,
			BudgetDisplay: inr.Format(t.Budget),
			Squad:         squad,
		})
	}

	return summaries, nil
}
