package handlers

import (
	"net/http"

	"music_recs/internal/models"
	"music_recs/internal/repository"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	userRepo        repository.UserRepository
	trackRepo       repository.TrackRepository
	interactionRepo repository.InteractionRepository
}

func NewStatsHandler(
	userRepo repository.UserRepository,
	trackRepo repository.TrackRepository,
	interactionRepo repository.InteractionRepository,
) *StatsHandler {
	return &StatsHandler{
		userRepo:        userRepo,
		trackRepo:       trackRepo,
		interactionRepo: interactionRepo,
	}
}

func (h *StatsHandler) GetSystemStats(c *gin.Context) {
	totalUsers, err := h.userRepo.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	totalTracks, err := h.trackRepo.CountTracks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	totalInteractions, err := h.interactionRepo.CountInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": models.SystemStats{
			TotalUsers:        totalUsers,
			TotalTracks:       totalTracks,
			TotalInteractions: totalInteractions,
		},
	})
}
