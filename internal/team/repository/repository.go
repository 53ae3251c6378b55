// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns all teams ordered by id.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetByID finds a team by its primary key.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// GetByName finds a team by its unique franchise name.
	GetByName(ctx context.Context, name string) (*teamModel.Team, error)

	// Debit subtracts amount from the team's budget. The update is
	// guarded (budget >= amount) so a racing sale can never drive the
	// budget negative; ErrInsufficientBudget is returned when the
	// guard rejects the update.
	Debit(ctx context.Context, id uint, amount float64) error

	// Credit adds amount back to the team's budget (refunds).
	Credit(ctx context.Context, id uint, amount float64) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all teams ordered by id.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID finds a team by its primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByName finds a team by its unique franchise name.
func (r *repository) GetByName(ctx context.Context, name string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Debit subtracts amount from the team's budget with a budget >= amount guard.
func (r *repository) Debit(ctx context.Context, id uint, amount float64) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ? AND budget >= ?", id, amount).
		Update("budget", gorm.Expr("budget - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrInsufficientBudget
	}
	return nil
}

// Credit adds amount back to the team's budget.
func (r *repository) Credit(ctx context.Context, id uint, amount float64) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Update("budget", gorm.Expr("budget + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}
