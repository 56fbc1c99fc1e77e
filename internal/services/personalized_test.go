package services

import (
	"math"
	"testing"

	"music_recs/internal/models"
)

func TestPersonalizedFallsBackToTrending(t *testing.T) {
	trendingTracks := []models.Track{
		track("t1", "Trend One", "Pop", nil),
		track("t2", "Trend Two", "Rock", nil),
	}
	// Only skips on record: no qualifying signal.
	interactionRepo := &mockInteractionRepo{
		positive: []models.Interaction{
			{TrackID: "a", Action: models.ActionSkip},
			{TrackID: "b", Action: models.ActionSkip},
			{TrackID: "c", Action: models.ActionSkip},
		},
		trendingTracks: trendingTracks,
	}
	trackRepo := &mockTrackRepo{}
	trending := NewTrendingService(trackRepo, interactionRepo, 7)
	svc := NewPersonalizedService(trackRepo, interactionRepo, trending, 20)

	got, err := svc.GetPersonalizedRecommendations(1, 2)
	if err != nil {
		t.Fatalf("GetPersonalizedRecommendations: %v", err)
	}

	want, err := trending.GetTrendingTracks(2)
	if err != nil {
		t.Fatalf("GetTrendingTracks: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("fallback returned %d results, trending returned %d", len(got), len(want))
	}
	for i := range got {
		if got[i].TrackID != want[i].ID {
			t.Errorf("fallback[%d] = %s, trending[%d] = %s", i, got[i].TrackID, i, want[i].ID)
		}
		if got[i].Score != nil {
			t.Errorf("fallback result %s carries a similarity score", got[i].TrackID)
		}
		if got[i].Reason != TrendingReason {
			t.Errorf("fallback reason = %q, want %q", got[i].Reason, TrendingReason)
		}
	}
}

func TestPersonalizedExcludesInteractedTracks(t *testing.T) {
	liked := track("liked", "Liked", "Pop", map[string]float64{"energy": 0.8, "valence": 0.7})
	skipped := track("skipped", "Skipped", "Rock", map[string]float64{"energy": 0.3, "valence": 0.2})
	fresh := track("fresh", "Fresh", "Pop", map[string]float64{"energy": 0.75, "valence": 0.65})

	interactionRepo := &mockInteractionRepo{
		positive: []models.Interaction{
			{TrackID: "liked", Action: models.ActionLike},
		},
		// Exclusion covers every interaction, including the skip.
		interactedIDs: []string{"liked", "skipped"},
	}
	trackRepo := &mockTrackRepo{tracks: []models.Track{liked, skipped, fresh}}
	trending := NewTrendingService(trackRepo, interactionRepo, 7)
	svc := NewPersonalizedService(trackRepo, interactionRepo, trending, 20)

	got, err := svc.GetPersonalizedRecommendations(1, 10)
	if err != nil {
		t.Fatalf("GetPersonalizedRecommendations: %v", err)
	}

	for _, rec := range got {
		if rec.TrackID == "liked" || rec.TrackID == "skipped" {
			t.Errorf("interacted track %s appeared in recommendations", rec.TrackID)
		}
	}
	if len(got) != 1 || got[0].TrackID != "fresh" {
		t.Fatalf("want only fresh track recommended, got %+v", got)
	}
	if got[0].Reason != "Based on your listening history" {
		t.Errorf("reason = %q, want listening-history reason", got[0].Reason)
	}
	if got[0].Score == nil {
		t.Error("personalized result missing similarity score")
	}
}

func TestPersonalizedFavoriteGenreBoost(t *testing.T) {
	features := map[string]float64{"tempo": 115, "energy": 0.55, "valence": 0.45}
	likedA := track("la", "Liked A", "Jazz", map[string]float64{"tempo": 100, "energy": 0.6, "valence": 0.5})
	likedB := track("lb", "Liked B", "Jazz", map[string]float64{"tempo": 120, "energy": 0.5, "valence": 0.4})
	inGenre := track("in", "In Genre", "Jazz", features)
	outGenre := track("out", "Out of Genre", "Metal", features)

	interactionRepo := &mockInteractionRepo{
		positive: []models.Interaction{
			{TrackID: "la", Action: models.ActionLike},
			{TrackID: "lb", Action: models.ActionPlay},
		},
		interactedIDs: []string{"la", "lb"},
	}
	trackRepo := &mockTrackRepo{tracks: []models.Track{likedA, likedB, outGenre, inGenre}}
	trending := NewTrendingService(trackRepo, interactionRepo, 7)
	svc := NewPersonalizedService(trackRepo, interactionRepo, trending, 20)

	got, err := svc.GetPersonalizedRecommendations(1, 10)
	if err != nil {
		t.Fatalf("GetPersonalizedRecommendations: %v", err)
	}

	scores := map[string]float64{}
	for _, rec := range got {
		scores[rec.TrackID] = *rec.Score
	}

	unboosted := scores["out"]
	boosted := scores["in"]
	want := math.Min(1.0, unboosted*1.3)
	if math.Abs(boosted-want) > 1e-9 {
		t.Errorf("favorite-genre boost: got %v, want %v (1.3 x %v capped at 1)", boosted, want, unboosted)
	}
}

func TestPersonalizedUnresolvableHistory(t *testing.T) {
	// Positive interactions reference tracks that no longer resolve.
	interactionRepo := &mockInteractionRepo{
		positive: []models.Interaction{
			{TrackID: "ghost", Action: models.ActionLike},
		},
		interactedIDs: []string{"ghost"},
	}
	trackRepo := &mockTrackRepo{tracks: []models.Track{
		track("a", "A", "", map[string]float64{"energy": 0.5}),
	}}
	trending := NewTrendingService(trackRepo, interactionRepo, 7)
	svc := NewPersonalizedService(trackRepo, interactionRepo, trending, 20)

	got, err := svc.GetPersonalizedRecommendations(1, 10)
	if err != nil {
		t.Fatalf("GetPersonalizedRecommendations: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unresolvable history should produce empty result, got %+v", got)
	}
}

func TestTasteProfileMeansSkipMissingFeatures(t *testing.T) {
	tracks := []models.Track{
		track("a", "A", "", map[string]float64{"energy": 0.2, "valence": 0.9}),
		track("b", "B", "", map[string]float64{"energy": 0.4}),
	}

	profile := tasteProfile(tracks)

	if got := profile["energy"]; math.Abs(got-0.3) > 1e-12 {
		t.Errorf("energy mean = %v, want 0.3", got)
	}
	// valence present on only one track: mean over that track alone.
	if got := profile["valence"]; math.Abs(got-0.9) > 1e-12 {
		t.Errorf("valence mean = %v, want 0.9", got)
	}
	if _, ok := profile["tempo"]; ok {
		t.Error("tempo should be absent from profile when no track has it")
	}
}

func TestFavoriteGenre(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		want   string
	}{
		{"clear winner", []string{"Pop", "Rock", "Pop"}, "Pop"},
		{"tie goes to first listed", []string{"Rock", "Pop", "Pop", "Rock"}, "Rock"},
		{"empty genres ignored", []string{"", "Jazz", ""}, "Jazz"},
		{"no genres", []string{"", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks := make([]models.Track, 0, len(tt.genres))
			for i, g := range tt.genres {
				tracks = append(tracks, track(string(rune('a'+i)), "T", g, nil))
			}
			if got := favoriteGenre(tracks); got != tt.want {
				t.Errorf("favoriteGenre(%v) = %q, want %q", tt.genres, got, tt.want)
			}
		})
	}
}
