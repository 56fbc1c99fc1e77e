package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"music_recs/internal/repository"
	"music_recs/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	contentService      services.ContentService
	personalizedService services.PersonalizedService
	trendingService     services.TrendingService
	trackRepo           repository.TrackRepository
}

func NewRecommendationHandler(
	content services.ContentService,
	personalized services.PersonalizedService,
	trending services.TrendingService,
	trackRepo repository.TrackRepository,
) *RecommendationHandler {
	return &RecommendationHandler{
		contentService:      content,
		personalizedService: personalized,
		trendingService:     trending,
		trackRepo:           trackRepo,
	}
}

func (h *RecommendationHandler) GetSimilarTracks(c *gin.Context) {
	trackID := c.Param("track_id")
	limit := parseLimit(c, 10, 50)

	// The engine degrades an unknown reference to an empty list; the API
	// distinguishes that case with a 404.
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
			"message": "Failed to verify track",
			"error":   err.Error(),
		})
		return
	}

	recommendations, err := h.contentService.GetSimilarTracks(trackID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate recommendations",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Similar tracks fetched",
		"data": gin.H{
			"track_id":        trackID,
			"recommendations": recommendations,
			"count":           len(recommendations),
			"type":            "content-based",
		},
	})
}

func (h *RecommendationHandler) GetPersonalizedRecommendations(c *gin.Context) {
	userID := c.GetUint("user_id")
	limit := parseLimit(c, 10, 50)

	recommendations, err := h.personalizedService.GetPersonalizedRecommendations(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate recommendations",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Personalized recommendations fetched",
		"data": gin.H{
			"user_id":         userID,
			"recommendations": recommendations,
			"count":           len(recommendations),
			"type":            "personalized",
		},
	})
}

func (h *RecommendationHandler) GetTrendingTracks(c *gin.Context) {
	limit := parseLimit(c, 20, 100)

	tracks, err := h.trendingService.GetTrendingTracks(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch trending tracks",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Trending tracks fetched",
		"data": gin.H{
			"tracks": tracks,
			"count":  len(tracks),
			"type":   "trending",
		},
	})
}

func parseLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
