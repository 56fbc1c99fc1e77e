package services

import (
	"math"

	"music_recs/internal/models"
	"music_recs/internal/repository"
)

// TrendingReason marks recommendations produced by the trending fallback
// rather than the taste profile.
const (
	TrendingReason = "Trending now"
	historyReason  = "Based on your listening history"
)

type PersonalizedService interface {
	GetPersonalizedRecommendations(userID uint, limit int) ([]models.Recommendation, error)
}

type personalizedService struct {
	trackRepo       repository.TrackRepository
	interactionRepo repository.InteractionRepository
	trending        TrendingService
	historySize     int
}

func NewPersonalizedService(
	trackRepo repository.TrackRepository,
	interactionRepo repository.InteractionRepository,
	trending TrendingService,
	historySize int,
) PersonalizedService {
	return &personalizedService{
		trackRepo:       trackRepo,
		interactionRepo: interactionRepo,
		trending:        trending,
		historySize:     historySize,
	}
}

// GetPersonalizedRecommendations ranks tracks the user has never touched
// against a taste profile averaged from their recent positive interactions.
// Users without positive history get the trending list instead.
func (s *personalizedService) GetPersonalizedRecommendations(userID uint, limit int) ([]models.Recommendation, error) {
	recent, err := s.interactionRepo.GetUserInteractionsByActions(userID, models.PositiveActions, s.historySize)
	if err != nil {
		return nil, err
	}

	if len(recent) == 0 {
		// No signal: degrade to popularity.
		trending, err := s.trending.GetTrendingTracks(limit)
		if err != nil {
			return nil, err
		}
		recommendations := make([]models.Recommendation, 0, len(trending))
		for i := range trending {
			recommendations = append(recommendations, models.RecommendationFromTrack(&trending[i], TrendingReason))
		}
		return recommendations, nil
	}

	// Every track the user has ever touched is excluded from candidates,
	// including skips and dislikes.
	interactedIDs, err := s.interactionRepo.GetUserTrackIDs(userID)
	if err != nil {
		return nil, err
	}

	likedIDs := make([]string, 0, len(recent))
	seen := make(map[string]bool, len(recent))
	for _, interaction := range recent {
		if !seen[interaction.TrackID] {
			seen[interaction.TrackID] = true
			likedIDs = append(likedIDs, interaction.TrackID)
		}
	}

	likedTracks, err := s.trackRepo.GetTracksByIDs(likedIDs)
	if err != nil {
		return nil, err
	}
	if len(likedTracks) == 0 {
		return []models.Recommendation{}, nil
	}

	profile := tasteProfile(likedTracks)
	favorite := favoriteGenre(likedTracks)

	candidates, err := s.trackRepo.GetTracksExcluding(interactedIDs)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredTrack, 0, len(candidates))
	for i := range candidates {
		track := &candidates[i]
		score := CalculateSimilarity(profile, track.Features())

		if favorite != "" && track.Genre == favorite {
			score = math.Min(1.0, score*favoriteGenreBoost)
		}

		scored = append(scored, scoredTrack{track: track, score: score})
	}

	sortByScore(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	recommendations := make([]models.Recommendation, 0, len(scored))
	for _, st := range scored {
		score := st.score
		rec := models.RecommendationFromTrack(st.track, historyReason)
		rec.Score = &score
		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}

// tasteProfile averages each feature over the tracks that have it; a track
// missing a feature is left out of that feature's mean only.
func tasteProfile(tracks []models.Track) models.FeatureVector {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i := range tracks {
		for name, value := range tracks[i].Features() {
			sums[name] += value
			counts[name]++
		}
	}

	profile := make(models.FeatureVector, len(sums))
	for name, sum := range sums {
		profile[name] = sum / float64(counts[name])
	}
	return profile
}

// favoriteGenre picks the most frequent non-empty genre among the liked
// tracks. Ties go to the genre that appears first in the liked list, which
// keeps the pick stable across calls.
func favoriteGenre(tracks []models.Track) string {
	counts := make(map[string]int)
	max := 0
	for i := range tracks {
		if genre := tracks[i].Genre; genre != "" {
			counts[genre]++
			if counts[genre] > max {
				max = counts[genre]
			}
		}
	}
	if max == 0 {
		return ""
	}
	for i := range tracks {
		if genre := tracks[i].Genre; genre != "" && counts[genre] == max {
			return genre
		}
	}
	return ""
}
