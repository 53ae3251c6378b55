// Package repository provides the data access layer for the player module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create inserts a new player row.
	Create(ctx context.Context, player *playerModel.Player) error

	// List returns the full auction pool ordered by id.
	List(ctx context.Context) ([]playerModel.Player, error)

	// ListByStatus returns all players with the given status.
	ListByStatus(ctx context.Context, status playerModel.Status) ([]playerModel.Player, error)

	// GetByID finds a player by its primary key.
	GetByID(ctx context.Context, id uint) (*playerModel.Player, error)

	// SetSold marks the player Sold to the given team at the given price.
	SetSold(ctx context.Context, id, teamID uint, price float64) error

	// SetUnsold marks the player Unsold. Team and price are left
	// untouched.
	SetUnsold(ctx context.Context, id uint) error

	// Reset returns the player to Available, clearing team and price.
	Reset(ctx context.Context, id uint) error

	// Delete removes the player row permanently.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new player row.
func (r *repository) Create(ctx context.Context, player *playerModel.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// List returns the full auction pool ordered by id.
func (r *repository) List(ctx context.Context) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// ListByStatus returns all players with the given status.
func (r *repository) ListByStatus(ctx context.Context, status playerModel.Status) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByID finds a player by its primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).
		First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// SetSold marks the player Sold to the given team at the given price.
func (r *repository) SetSold(ctx context.Context, id, teamID uint, price float64) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"status":  playerModel.StatusSold,
		"team_id": teamID,
		"price":   price,
	})
}

// SetUnsold marks the player Unsold.
func (r *repository) SetUnsold(ctx context.Context, id uint) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"status": playerModel.StatusUnsold,
	})
}

// Reset returns the player to Available, clearing team and price.
func (r *repository) Reset(ctx context.Context, id uint) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"status":  playerModel.StatusAvailable,
		"team_id": nil,
		"price":   0.0,
	})
}

// Delete removes the player row permanently.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Delete(&playerModel.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}

// updateByID applies a column update to a single player row.
func (r *repository) updateByID(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}
