// Package handler provides HTTP handlers for the auction operations.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auctionModel "github.com/cricbid/ipl-auction/internal/auction/model"
	"github.com/cricbid/ipl-auction/internal/auction/service"
	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
)

// Handler handles HTTP requests for auction operations.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auction handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Sell handles POST /sell/:id with form fields team and price.
func (h *Handler) Sell(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	outcome, err := h.service.Sell(c.Request.Context(), id, c.PostForm("team"), c.PostForm("price"))
	h.respond(c, outcome, err)
}

// MarkUnsold handles GET and POST /unsold/:id.
func (h *Handler) MarkUnsold(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	outcome, err := h.service.MarkUnsold(c.Request.Context(), id)
	h.respond(c, outcome, err)
}

// Undo handles POST /undo/:id.
func (h *Handler) Undo(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	outcome, err := h.service.Undo(c.Request.Context(), id)
	h.respond(c, outcome, err)
}

// Delete handles POST /delete/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	outcome, err := h.service.Delete(c.Request.Context(), id)
	h.respond(c, outcome, err)
}

// playerID parses the :id path parameter. A malformed or absent id is
// a hard 404, like any missing primary key.
func playerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

// respond maps an operation result onto the wire. A missing player is
// the only hard error status; every business rejection degrades to an
// outcome message and the caller is pointed back at the listing page.
func (h *Handler) respond(c *gin.Context, outcome *auctionModel.Outcome, err error) {
	if err != nil {
		switch {
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFound(c)
			return
		case errors.Is(err, playerModel.ErrAlreadyProcessed):
			outcome = auctionModel.Danger("Player already processed.")
		case errors.Is(err, teamModel.ErrTeamNotFound):
			outcome = auctionModel.Danger("Invalid team selected.")
		case errors.Is(err, teamModel.ErrInsufficientBudget):
			outcome = auctionModel.Danger("Not enough budget.")
		case errors.Is(err, playerModel.ErrInvalidPrice):
			outcome = auctionModel.Danger("Invalid price.")
		case errors.Is(err, playerModel.ErrAlreadyAvailable):
			outcome = auctionModel.Warning("Player is already Available.")
		default:
			h.logger.Errorw("auction operation failed",
				"path", c.Request.URL.Path, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"outcome": auctionModel.Danger("internal server error"),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":  outcome,
		"redirect": "/players",
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"outcome": auctionModel.Danger("Player not found."),
	})
}
