// Package service provides the transactional auction operations:
// sell, mark-unsold, undo and delete. Every operation runs as a single
// database transaction so the team and player rows always move
// together.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	auctionModel "github.com/cricbid/ipl-auction/internal/auction/model"
	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	playerRepository "github.com/cricbid/ipl-auction/internal/player/repository"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
	"github.com/cricbid/ipl-auction/pkg/inr"
)

// Service defines the interface for auction state transitions.
type Service interface {
	// Sell hammers an Available player to the named team for the given
	// bid price (free-form form value, must parse positive).
	Sell(ctx context.Context, playerID uint, teamName, price string) (*auctionModel.Outcome, error)

	// MarkUnsold passes the player as Unsold. Any current status is
	// accepted.
	MarkUnsold(ctx context.Context, playerID uint) (*auctionModel.Outcome, error)

	// Undo returns a Sold or Unsold player to Available, refunding the
	// owning team for a sale.
	Undo(ctx context.Context, playerID uint) (*auctionModel.Outcome, error)

	// Delete removes the player from the pool, refunding the owning
	// team first if the player was Sold.
	Delete(ctx context.Context, playerID uint) (*auctionModel.Outcome, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new auction service instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{db: db, logger: logger}
}

// Sell hammers an Available player to the named team.
func (s *service) Sell(ctx context.Context, playerID uint, teamName, price string) (*auctionModel.Outcome, error) {
	bid, err := parsePrice(price)
	if err != nil {
		return nil, err
	}

	var outcome *auctionModel.Outcome
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)
		teams := teamRepository.New(tx)

		player, err := players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if player.Status != playerModel.StatusAvailable {
			return playerModel.ErrAlreadyProcessed
		}

		team, err := teams.GetByName(ctx, teamName)
		if err != nil {
			return err
		}
		if team.Budget < bid {
			return teamModel.ErrInsufficientBudget
		}

		// Guarded update closes the window between the budget check
		// above and the debit under concurrent sells.
		if err := teams.Debit(ctx, team.ID, bid); err != nil {
			return err
		}
		if err := players.SetSold(ctx, player.ID, team.ID, bid); err != nil {
			return err
		}

		outcome = auctionModel.Success(
			fmt.Sprintf("%s sold to %s for %s", player.Name, team.Name, inr.Format(bid)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player sold", "player_id", playerID, "team", teamName, "price", bid)
	return outcome, nil
}

// MarkUnsold passes the player as Unsold.
func (s *service) MarkUnsold(ctx context.Context, playerID uint) (*auctionModel.Outcome, error) {
	var outcome *auctionModel.Outcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)

		player, err := players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if err := players.SetUnsold(ctx, player.ID); err != nil {
			return err
		}

		outcome = auctionModel.Warning(fmt.Sprintf("%s marked as Unsold.", player.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player marked unsold", "player_id", playerID)
	return outcome, nil
}

// Undo returns a Sold or Unsold player to Available.
func (s *service) Undo(ctx context.Context, playerID uint) (*auctionModel.Outcome, error) {
	var outcome *auctionModel.Outcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)
		teams := teamRepository.New(tx)

		player, err := players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		switch {
		case player.Status == playerModel.StatusSold && player.TeamID != nil:
			team, err := teams.GetByID(ctx, *player.TeamID)
			switch {
			case err == nil:
				if err := teams.Credit(ctx, team.ID, player.Price); err != nil {
					return err
				}
				outcome = auctionModel.Info(fmt.Sprintf("Undid sale of %s. %s refunded to %s.",
					player.Name, inr.Format(player.Price), team.Name))
			case errors.Is(err, teamModel.ErrTeamNotFound):
				// Dangling team reference: skip the refund, still
				// reset the player.
				s.logger.Warnw("undo found no team to refund",
					"player_id", player.ID, "team_id", *player.TeamID)
				outcome = auctionModel.Info(fmt.Sprintf("Undid sale of %s.", player.Name))
			default:
				return err
			}
		case player.Status == playerModel.StatusSold:
			outcome = auctionModel.Info(fmt.Sprintf("Undid sale of %s.", player.Name))
		case player.Status == playerModel.StatusUnsold:
			outcome = auctionModel.Info(fmt.Sprintf("Undid 'Unsold' status of %s.", player.Name))
		default:
			return playerModel.ErrAlreadyAvailable
		}

		return players.Reset(ctx, player.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player reset to available", "player_id", playerID)
	return outcome, nil
}

// Delete removes the player from the pool.
func (s *service) Delete(ctx context.Context, playerID uint) (*auctionModel.Outcome, error) {
	var outcome *auctionModel.Outcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)
		teams := teamRepository.New(tx)

		player, err := players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		refunded := ""
		if player.Status == playerModel.StatusSold && player.TeamID != nil {
			team, err := teams.GetByID(ctx, *player.TeamID)
			switch {
			case err == nil:
				if err := teams.Credit(ctx, team.ID, player.Price); err != nil {
					return err
				}
				refunded = fmt.Sprintf("Refunded %s to %s. ", inr.Format(player.Price), team.Name)
			case errors.Is(err, teamModel.ErrTeamNotFound):
				s.logger.Warnw("delete found no team to refund",
					"player_id", player.ID, "team_id", *player.TeamID)
			default:
				return err
			}
		}

		if err := players.Delete(ctx, player.ID); err != nil {
			return err
		}

		outcome = auctionModel.Success(
			fmt.Sprintf("%sPlayer %s has been removed from the auction pool.", refunded, player.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player deleted", "player_id", playerID)
	return outcome, nil
}

// parsePrice parses the bid form value. The bid must be a positive
// number; it is not otherwise range-checked.
func parsePrice(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value <= 0 {
		return 0, playerModel.ErrInvalidPrice
	}
	return value, nil
}
