package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"music_recs/internal/models"
	"music_recs/internal/repository"

	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	trackRepo       repository.TrackRepository
	interactionRepo repository.InteractionRepository
}

func NewTrackHandler(
	trackRepo repository.TrackRepository,
	interactionRepo repository.InteractionRepository,
) *TrackHandler {
	return &TrackHandler{
		trackRepo:       trackRepo,
		interactionRepo: interactionRepo,
	}
}

func (h *TrackHandler) CreateTrack(c *gin.Context) {
	var req models.TrackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	track := req.ToTrack()
	if err := h.trackRepo.CreateTrack(&track); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create track",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Track created",
		"data":    track,
	})
}

func (h *TrackHandler) BulkCreateTracks(c *gin.Context) {
	var req models.BulkTrackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	tracks := make([]models.Track, 0, len(req.Tracks))
	for i := range req.Tracks {
		tracks = append(tracks, req.Tracks[i].ToTrack())
	}

	if err := h.trackRepo.CreateTracks(tracks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create tracks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tracks created",
		"data": gin.H{
			"tracks": tracks,
			"count":  len(tracks),
		},
	})
}

func (h *TrackHandler) GetTrackByID(c *gin.Context) {
	trackID := c.Param("id")

	track, err := h.trackRepo.GetTrackByID(trackID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Track not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch track",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   track,
	})
}

func (h *TrackHandler) ListTracks(c *gin.Context) {
	genre := c.Query("genre")
	artist := c.Query("artist")
	offset := parseIntQuery(c, "offset", 0, 0)
	limit := parseIntQuery(c, "limit", 100, 500)

	tracks, err := h.trackRepo.ListTracks(genre, artist, offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch tracks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"tracks": tracks,
			"count":  len(tracks),
		},
	})
}

func (h *TrackHandler) SearchTracks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Search query is required",
		})
		return
	}

	tracks, err := h.trackRepo.SearchTracks(query, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Search failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"tracks": tracks,
			"count":  len(tracks),
			"query":  query,
		},
	})
}

func (h *TrackHandler) GetGenres(c *gin.Context) {
	genres, err := h.trackRepo.GetGenres()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch genres",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   genres,
	})
}

func (h *TrackHandler) GetTrackStats(c *gin.Context) {
	trackID := c.Param("id")

	if _, err := h.trackRepo.GetTrackByID(trackID); err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Track not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch track",
			"error":   err.Error(),
		})
		return
	}

	stats, err := h.interactionRepo.GetTrackStats(trackID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch track stats",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// parseIntQuery reads a non-negative integer query param with a default and
// an upper bound (0 means unbounded).
func parseIntQuery(c *gin.Context, name string, defaultValue, max int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(defaultValue)))
	if err != nil || value < 0 {
		value = defaultValue
	}
	if max > 0 && value > max {
		value = max
	}
	return value
}
