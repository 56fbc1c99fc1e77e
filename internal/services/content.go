package services

import (
	"errors"
	"fmt"
	"math"

	"music_recs/internal/models"
	"music_recs/internal/repository"
)

type ContentService interface {
	GetSimilarTracks(trackID string, limit int) ([]models.Recommendation, error)
}

type contentService struct {
	trackRepo repository.TrackRepository
}

func NewContentService(trackRepo repository.TrackRepository) ContentService {
	return &contentService{trackRepo: trackRepo}
}

// GetSimilarTracks ranks the catalog against one reference track. An
// unknown reference degrades to an empty result; callers that want a 404
// check existence themselves.
func (s *contentService) GetSimilarTracks(trackID string, limit int) ([]models.Recommendation, error) {
	reference, err := s.trackRepo.GetTrackByID(trackID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			return []models.Recommendation{}, nil
		}
		return nil, err
	}

	candidates, err := s.trackRepo.GetAllTracksExcept(trackID)
	if err != nil {
		return nil, err
	}

	refFeatures := reference.Features()

	scored := make([]scoredTrack, 0, len(candidates))
	for i := range candidates {
		track := &candidates[i]
		score := CalculateSimilarity(refFeatures, track.Features())

		if reference.Genre != "" && track.Genre == reference.Genre {
			score = math.Min(1.0, score*sameGenreBoost)
		}

		scored = append(scored, scoredTrack{track: track, score: score})
	}

	sortByScore(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	reason := fmt.Sprintf("Similar audio features to %s", reference.Title)
	recommendations := make([]models.Recommendation, 0, len(scored))
	for _, st := range scored {
		score := st.score
		rec := models.RecommendationFromTrack(st.track, reason)
		rec.Score = &score
		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}
