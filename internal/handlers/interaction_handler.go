package handlers

import (
	"errors"
	"net/http"

	"music_recs/internal/models"
	"music_recs/internal/repository"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionRepo repository.InteractionRepository
	trackRepo       repository.TrackRepository
}

func NewInteractionHandler(
	interactionRepo repository.InteractionRepository,
	trackRepo repository.TrackRepository,
) *InteractionHandler {
	return &InteractionHandler{
		interactionRepo: interactionRepo,
		trackRepo:       trackRepo,
	}
}

// CreateInteraction records an event for the authenticated user. The track
// must exist; the user is guaranteed by the JWT middleware.
func (h *InteractionHandler) CreateInteraction(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.InteractionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if _, err := h.trackRepo.GetTrackByID(req.TrackID); err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Track not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify track",
			"error":   err.Error(),
		})
		return
	}

	interaction := models.Interaction{
		UserID:         userID,
		TrackID:        req.TrackID,
		Action:         req.Action,
		Rating:         req.Rating,
		ListenDuration: req.ListenDuration,
	}

	if err := h.interactionRepo.CreateInteraction(&interaction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record interaction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Interaction recorded",
		"data":    interaction,
	})
}

func (h *InteractionHandler) GetMyInteractions(c *gin.Context) {
	userID := c.GetUint("user_id")
	limit := parseIntQuery(c, "limit", 50, 200)

	interactions, err := h.interactionRepo.GetUserInteractions(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch interactions",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"interactions": interactions,
			"count":        len(interactions),
		},
	})
}
