// Package seed populates an empty store with the default franchises
// and the embedded auction player list.
package seed

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
)

//go:embed players.csv
var playerData string

// DefaultTeams are the eight franchises created on first run.
var DefaultTeams = []string{
	"Chennai Super Kings (CSK)",
	"Mumbai Indians (MI)",
	"Royal Challengers Bengaluru (RCB)",
	"Kolkata Knight Riders (KKR)",
	"Sunrisers Hyderabad (SRH)",
	"Delhi Capitals (DC)",
	"Rajasthan Royals (RR)",
	"Punjab Kings (PBKS)",
}

// roleAliases standardizes the role labels used in the source list.
var roleAliases = map[string]string{
	"Batter":      "Batsman",
	"WK/Batter":   "Wicketkeeper",
	"All-Rounder": "Allrounder",
}

// Run seeds teams and players if their tables are empty. It is
// idempotent across restarts.
func Run(ctx context.Context, db *gorm.DB, logger *zap.SugaredLogger) error {
	if err := seedTeams(ctx, db, logger); err != nil {
		return fmt.Errorf("seeding teams: %w", err)
	}
	if err := seedPlayers(ctx, db, logger); err != nil {
		return fmt.Errorf("seeding players: %w", err)
	}
	return nil
}

func seedTeams(ctx context.Context, db *gorm.DB, logger *zap.SugaredLogger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&teamModel.Team{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	teams := make([]teamModel.Team, 0, len(DefaultTeams))
	for _, name := range DefaultTeams {
		teams = append(teams, teamModel.Team{
			Name:   name,
			Budget: teamModel.DefaultBudget,
		})
	}
	if err := db.WithContext(ctx).Create(&teams).Error; err != nil {
		return err
	}

	logger.Infow("seeded default teams", "count", len(teams))
	return nil
}

func seedPlayers(ctx context.Context, db *gorm.DB, logger *zap.SugaredLogger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&playerModel.Player{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	players, err := parsePlayerData()
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).CreateInBatches(players, 100).Error; err != nil {
		return err
	}

	logger.Infow("seeded player pool", "count", len(players))
	return nil
}

// parsePlayerData reads the embedded CSV (Set, Player Name, Role,
// Credit Points, Base Price) into player rows.
func parsePlayerData() ([]playerModel.Player, error) {
	reader := csv.NewReader(strings.NewReader(playerData))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing player csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("player csv has no data rows")
	}

	players := make([]playerModel.Player, 0, len(records)-1)
	for _, row := range records[1:] {
		credits, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing credits for %q: %w", row[1], err)
		}

		role := row[2]
		if alias, ok := roleAliases[role]; ok {
			role = alias
		}

		players = append(players, playerModel.Player{
			SetName:   row[0],
			Name:      row[1],
			Role:      role,
			Credits:   credits,
			BasePrice: row[4],
			Status:    playerModel.StatusAvailable,
		})
	}

	return players, nil
}
