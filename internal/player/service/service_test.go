package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	playerRepository "github.com/cricbid/ipl-auction/internal/player/repository"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&teamModel.Team{}, &playerModel.Player{})
	require.NoError(t, err)

	svc := New(playerRepository.New(db), teamRepository.New(db), zap.NewNop().Sugar())
	return svc, db
}

func TestService_AddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaulted credits", func(t *testing.T) {
		svc, db := setupService(t)

		player, err := svc.AddPlayer(ctx, &playerModel.AddPlayerRequest{
			Name:      "Umran Malik",
			Role:      "Bowler",
			SetName:   "Uncapped Bowler",
			BasePrice: "30 Lakhs",
		})

		require.NoError(t, err)
		assert.NotZero(t, player.ID)
		assert.Equal(t, playerModel.StatusAvailable, player.Status)
		assert.Equal(t, 0.0, player.Credits)

		var count int64
		db.Model(&playerModel.Player{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("base price is free text", func(t *testing.T) {
		svc, _ := setupService(t)

		player, err := svc.AddPlayer(ctx, &playerModel.AddPlayerRequest{
			Name:      "Test Player",
			Role:      "Batsman",
			SetName:   "Marquee",
			BasePrice: "2.00 Crore",
			Credits:   9.1,
		})

		require.NoError(t, err)
		assert.Equal(t, "2.00 Crore", player.BasePrice)
		assert.Equal(t, 9.1, player.Credits)
	})

	t.Run("blank required fields rejected", func(t *testing.T) {
		svc, _ := setupService(t)

		for _, req := range []*playerModel.AddPlayerRequest{
			{Name: "", Role: "Bowler", SetName: "S", BasePrice: "1"},
			{Name: "X", Role: "  ", SetName: "S", BasePrice: "1"},
			{Name: "X", Role: "Bowler", SetName: "", BasePrice: "1"},
			{Name: "X", Role: "Bowler", SetName: "S", BasePrice: ""},
		} {
			_, err := svc.AddPlayer(ctx, req)
			assert.ErrorIs(t, err, playerModel.ErrInvalidPlayer)
		}
	})
}

func TestService_ListPlayers(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves team names and formats sold prices", func(t *testing.T) {
		svc, db := setupService(t)

		team := &teamModel.Team{Name: "Mumbai Indians (MI)", Budget: teamModel.DefaultBudget}
		require.NoError(t, db.Create(team).Error)

		available := &playerModel.Player{
			Name: "A", Role: "Batsman", SetName: "S", BasePrice: "1",
			Status: playerModel.StatusAvailable,
		}
		sold := &playerModel.Player{
			Name: "B", Role: "Bowler", SetName: "S", BasePrice: "1",
			Status: playerModel.StatusSold, TeamID: &team.ID, Price: 25000000,
		}
		require.NoError(t, db.Create(available).Error)
		require.NoError(t, db.Create(sold).Error)

		page, err := svc.ListPlayers(ctx)

		require.NoError(t, err)
		require.Len(t, page.Players, 2)
		assert.Equal(t, []string{"Mumbai Indians (MI)"}, page.Teams)

		assert.Empty(t, page.Players[0].Team)
		assert.Empty(t, page.Players[0].PriceDisplay)

		assert.Equal(t, "Mumbai Indians (MI)", page.Players[1].Team)
		assert.Equal(t, "INR 2.50 Cr", page.Players[1].PriceDisplay)
	})

	t.Run("empty pool", func(t *testing.T) {
		svc, _ := setupService(t)

		page, err := svc.ListPlayers(ctx)

		require.NoError(t, err)
		assert.Empty(t, page.Players)
		assert.Empty(t, page.Teams)
	})
}

func TestService_AddPlayerForm(t *testing.T) {
	svc, _ := setupService(t)

	form := svc.AddPlayerForm()

	assert.Equal(t, []string{"Batsman", "Bowler", "Wicketkeeper", "Allrounder"}, form.Roles)
	assert.Equal(t, 0.0, form.DefaultCredits)
}
