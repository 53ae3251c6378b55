// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/ipl-auction/internal/player/repository"
	"github.com/cricbid/ipl-auction/internal/team/handler"
	teamRepository "github.com/cricbid/ipl-auction/internal/team/repository"
	"github.com/cricbid/ipl-auction/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	teams := teamRepository.New(db)
	players := repository.New(db)
	svc := service.New(teams, players, logger)
	h := handler.New(svc, logger)

	r.GET("/teams", h.ListTeams)
}
