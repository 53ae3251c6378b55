// Package handler provides HTTP handlers for player pool endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auctionModel "github.com/cricbid/ipl-auction/internal/auction/model"
	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	"github.com/cricbid/ipl-auction/internal/player/service"
)

// Handler handles HTTP requests for player pool endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListPlayers handles GET /players.
func (h *Handler) ListPlayers(c *gin.Context) {
	page, err := h.service.ListPlayers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing players", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"outcome": auctionModel.Danger("internal server error"),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// AddPlayerForm handles GET /add.
func (h *Handler) AddPlayerForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AddPlayerForm())
}

// AddPlayer handles POST /add. Accepts form or JSON submissions.
func (h *Handler) AddPlayer(c *gin.Context) {
	var req playerModel.AddPlayerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"outcome": auctionModel.Danger("Invalid player details."),
		})
		return
	}

	player, err := h.service.AddPlayer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, playerModel.ErrInvalidPlayer) {
			c.JSON(http.StatusBadRequest, gin.H{
				"outcome": auctionModel.Danger("Invalid player details."),
			})
			return
		}
		h.logger.Errorw("error adding player", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"outcome": auctionModel.Danger("internal server error"),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"outcome":  auctionModel.Success(fmt.Sprintf("Player %s added successfully!", player.Name)),
		"redirect": "/players",
		"player":   player,
	})
}
