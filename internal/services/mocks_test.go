package services

import (
	"time"

	"music_recs/internal/models"
	"music_recs/internal/repository"
)

// mockTrackRepo serves a fixed catalog in slice order, standing in for the
// created_at-ordered fetches of the real repository.
type mockTrackRepo struct {
	tracks []models.Track
	err    error
}

func (m *mockTrackRepo) CreateTrack(track *models.Track) error    { return m.err }
func (m *mockTrackRepo) CreateTracks(tracks []models.Track) error { return m.err }

func (m *mockTrackRepo) GetTrackByID(id string) (*models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.tracks {
		if m.tracks[i].ID == id {
			return &m.tracks[i], nil
		}
	}
	return nil, repository.ErrTrackNotFound
}

func (m *mockTrackRepo) GetAllTracks() ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Track, len(m.tracks))
	copy(out, m.tracks)
	return out, nil
}

func (m *mockTrackRepo) GetAllTracksExcept(id string) ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Track, 0, len(m.tracks))
	for _, t := range m.tracks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) GetTracksByIDs(ids []string) ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]models.Track, 0, len(ids))
	for _, t := range m.tracks {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) GetTracksExcluding(ids []string) ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	excluded := make(map[string]bool, len(ids))
	for _, id := range ids {
		excluded[id] = true
	}
	out := make([]models.Track, 0, len(m.tracks))
	for _, t := range m.tracks {
		if !excluded[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTrackRepo) GetRecentTracks(limit int) ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Track, len(m.tracks))
	copy(out, m.tracks)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockTrackRepo) SearchTracks(query string, limit int) ([]models.Track, error) {
	return nil, nil
}

func (m *mockTrackRepo) ListTracks(genre, artist string, offset, limit int) ([]models.Track, error) {
	return nil, nil
}

func (m *mockTrackRepo) GetGenres() ([]string, error) { return nil, nil }

func (m *mockTrackRepo) CountTracks() (int64, error) { return int64(len(m.tracks)), nil }

// mockInteractionRepo returns canned interaction data and records the
// trending window cutoff it was asked for.
type mockInteractionRepo struct {
	positive       []models.Interaction
	interactedIDs  []string
	trendingTracks []models.Track
	lastSince      time.Time
	err            error
}

func (m *mockInteractionRepo) CreateInteraction(interaction *models.Interaction) error {
	return m.err
}

func (m *mockInteractionRepo) GetUserInteractions(userID uint, limit int) ([]models.Interaction, error) {
	return m.positive, m.err
}

func (m *mockInteractionRepo) GetUserInteractionsByActions(userID uint, actions []string, limit int) ([]models.Interaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	allowed := make(map[string]bool, len(actions))
	for _, a := range actions {
		allowed[a] = true
	}
	out := make([]models.Interaction, 0, len(m.positive))
	for _, it := range m.positive {
		if allowed[it.Action] {
			out = append(out, it)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockInteractionRepo) GetUserTrackIDs(userID uint) ([]string, error) {
	return m.interactedIDs, m.err
}

func (m *mockInteractionRepo) GetMostInteractedTracks(since time.Time, limit int) ([]models.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastSince = since
	out := make([]models.Track, len(m.trendingTracks))
	copy(out, m.trendingTracks)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockInteractionRepo) GetTrackStats(trackID string) (*models.TrackStats, error) {
	return &models.TrackStats{TrackID: trackID}, m.err
}

func (m *mockInteractionRepo) CountInteractions() (int64, error) { return 0, m.err }

func floatPtr(v float64) *float64 { return &v }

// track builds a catalog entry with the given features (nil values absent).
func track(id, title, genre string, features map[string]float64) models.Track {
	t := models.Track{ID: id, Title: title, Artist: "Artist " + id, Genre: genre}
	for name, value := range features {
		switch name {
		case "tempo":
			t.Tempo = floatPtr(value)
		case "energy":
			t.Energy = floatPtr(value)
		case "danceability":
			t.Danceability = floatPtr(value)
		case "valence":
			t.Valence = floatPtr(value)
		case "acousticness":
			t.Acousticness = floatPtr(value)
		case "instrumentalness":
			t.Instrumentalness = floatPtr(value)
		case "loudness":
			t.Loudness = floatPtr(value)
		case "speechiness":
			t.Speechiness = floatPtr(value)
		}
	}
	return t
}
