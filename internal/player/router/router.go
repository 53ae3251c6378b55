// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/ipl-auction/internal/player/handler"
	playerRepository "github.com/cricbid/ipl-auction/internal/player/repository"
	"github.com/cricbid/ipl-auction/internal/player/service"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	players := playerRepository.New(db)
	teams := teamRepository.New(db)
	svc := service.New(players, teams, logger)
	h := handler.New(svc, logger)

	r.GET("/players", h.ListPlayers)
	r.GET("/add", h.AddPlayerForm)
	r.POST("/add", h.AddPlayer)
}
