// Package router provides auction module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/ipl-auction/internal/auction/handler"
	"github.com/cricbid/ipl-auction/internal/auction/service"
)

// RegisterRoutes registers auction module routes.
//
// Mark-unsold is reachable via GET for existing auctioneer consoles,
// with a POST route alongside for new clients.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(db, logger)
	h := handler.New(svc, logger)

	r.POST("/sell/:id", h.Sell)
	r.GET("/unsold/:id", h.MarkUnsold)
	r.POST("/unsold/:id", h.MarkUnsold)
	r.POST("/undo/:id", h.Undo)
	r.POST("/delete/:id", h.Delete)
}
