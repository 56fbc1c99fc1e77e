package handlers

import (
	"net/http"

	"music_recs/internal/seed"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seedService *seed.Service
}

func NewSeedHandler(seedService *seed.Service) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

func (h *SeedHandler) SeedDatabase(c *gin.Context) {
	if err := h.seedService.Run(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Seeding failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Database seeded",
	})
}
