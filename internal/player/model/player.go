package model

import (
	"time"
)

// Status is the auction state of a player.
type Status string

// Player status values. A player starts Available, may be hammered
// Sold or passed Unsold, and undo returns either state to Available.
const (
	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusUnsold    Status = "Unsold"
)

// Player represents a player in the auction pool.
// Matches the players table schema.
type Player struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Role      string    `gorm:"column:role;type:varchar(50);not null" json:"role"`
	SetName   string    `gorm:"column:set_name;type:varchar(50);not null" json:"set_name"`
	BasePrice string    `gorm:"column:base_price;type:varchar(50);not null" json:"base_price"`
	Status    Status    `gorm:"column:status;type:varchar(50);not null;default:'Available'" json:"status"`
	Price     float64   `gorm:"column:price;not null;default:0" json:"price"`
	Credits   float64   `gorm:"column:credits;not null;default:0" json:"credits"`
	TeamID    *uint     `gorm:"column:team_id" json:"team_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}
