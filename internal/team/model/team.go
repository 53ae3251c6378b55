package model

import (
	"time"
)

// DefaultBudget is the starting purse every franchise receives when the
// teams table is first seeded.
const DefaultBudget = 800000000.0

// Team represents a bidding franchise in the auction.
// Matches the teams table schema.
type Team struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"`
	Budget    float64   `gorm:"column:budget;not null;default:800000000" json:"budget"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
