package models

// Recommendation is one ranked result. Score is nil for results that carry
// no similarity signal (trending fallbacks).
type Recommendation struct {
	TrackID string   `json:"track_id"`
	Title   string   `json:"title"`
	Artist  string   `json:"artist"`
	Album   string   `json:"album,omitempty"`
	Genre   string   `json:"genre,omitempty"`
	Score   *float64 `json:"similarity_score,omitempty"`
	Reason  string   `json:"reason,omitempty"`
}

// RecommendationFromTrack wraps a bare track as a recommendation without a
// similarity score.
func RecommendationFromTrack(t *Track, reason string) Recommendation {
	return Recommendation{
		TrackID: t.ID,
		Title:   t.Title,
		Artist:  t.Artist,
		Album:   t.Album,
		Genre:   t.Genre,
		Reason:  reason,
	}
}

// TrackStats aggregates a track's interaction history.
type TrackStats struct {
	TrackID       string   `json:"track_id"`
	PlayCount     int64    `json:"play_count"`
	LikeCount     int64    `json:"like_count"`
	SkipCount     int64    `json:"skip_count"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// SystemStats are the catalog-wide totals.
type SystemStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalTracks       int64 `json:"total_tracks"`
	TotalInteractions int64 `json:"total_interactions"`
}
