package services

import (
	"time"

	"music_recs/internal/models"
	"music_recs/internal/repository"
)

type TrendingService interface {
	GetTrendingTracks(limit int) ([]models.Track, error)
}

type trendingService struct {
	trackRepo       repository.TrackRepository
	interactionRepo repository.InteractionRepository
	window          time.Duration
}

func NewTrendingService(
	trackRepo repository.TrackRepository,
	interactionRepo repository.InteractionRepository,
	windowDays int,
) TrendingService {
	return &trendingService{
		trackRepo:       trackRepo,
		interactionRepo: interactionRepo,
		window:          time.Duration(windowDays) * 24 * time.Hour,
	}
}

// GetTrendingTracks ranks tracks by interaction count inside the recency
// window. A cold-start catalog (no interactions in-window) falls back to
// the most recently added tracks.
func (s *trendingService) GetTrendingTracks(limit int) ([]models.Track, error) {
	cutoff := time.Now().Add(-s.window)

	tracks, err := s.interactionRepo.GetMostInteractedTracks(cutoff, limit)
	if err != nil {
		return nil, err
	}

	if len(tracks) == 0 {
		return s.trackRepo.GetRecentTracks(limit)
	}

	return tracks, nil
}
