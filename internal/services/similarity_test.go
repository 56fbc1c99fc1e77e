package services

import (
	"math"
	"testing"

	"music_recs/internal/models"
)

func TestCalculateSimilarityIdenticalRecords(t *testing.T) {
	a := models.FeatureVector{"tempo": 120, "energy": 0.8}
	b := models.FeatureVector{"tempo": 120, "energy": 0.8}

	got := CalculateSimilarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("similarity of identical records = %v, want 1.0", got)
	}
}

func TestCalculateSimilarityNoSharedFeatures(t *testing.T) {
	a := models.FeatureVector{"tempo": 120, "energy": 0.8}
	b := models.FeatureVector{"danceability": 0.5}

	if got := CalculateSimilarity(a, b); got != 0.0 {
		t.Errorf("similarity with no shared features = %v, want 0.0", got)
	}
}

func TestCalculateSimilarityEmptyRecords(t *testing.T) {
	if got := CalculateSimilarity(models.FeatureVector{}, models.FeatureVector{}); got != 0.0 {
		t.Errorf("similarity of empty records = %v, want 0.0", got)
	}
}

func TestCalculateSimilarityZeroMagnitude(t *testing.T) {
	// energy 0 normalizes to 0, leaving a zero-magnitude vector.
	a := models.FeatureVector{"energy": 0}
	b := models.FeatureVector{"energy": 0}

	if got := CalculateSimilarity(a, b); got != 0.0 {
		t.Errorf("similarity of zero-magnitude vectors = %v, want 0.0", got)
	}
}

func TestCalculateSimilarityBounded(t *testing.T) {
	tests := []struct {
		name string
		a, b models.FeatureVector
	}{
		{
			name: "full records",
			a: models.FeatureVector{
				"tempo": 128, "energy": 0.9, "danceability": 0.8, "valence": 0.7,
				"acousticness": 0.1, "instrumentalness": 0.05, "loudness": -5, "speechiness": 0.04,
			},
			b: models.FeatureVector{
				"tempo": 70, "energy": 0.2, "danceability": 0.3, "valence": 0.2,
				"acousticness": 0.9, "instrumentalness": 0.8, "loudness": -25, "speechiness": 0.03,
			},
		},
		{
			name: "opposed sparse records",
			a:    models.FeatureVector{"tempo": 40, "valence": 0.1},
			b:    models.FeatureVector{"tempo": 220, "valence": 0.95},
		},
		{
			name: "extreme loudness",
			a:    models.FeatureVector{"loudness": -60, "energy": 0.5},
			b:    models.FeatureVector{"loudness": 0, "energy": 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSimilarity(tt.a, tt.b)
			if got < 0.0 || got > 1.0 {
				t.Errorf("similarity = %v, want within [0,1]", got)
			}
		})
	}
}

func TestCalculateSimilaritySymmetric(t *testing.T) {
	a := models.FeatureVector{"tempo": 100, "energy": 0.4, "valence": 0.9}
	b := models.FeatureVector{"tempo": 150, "energy": 0.7, "danceability": 0.6}

	if ab, ba := CalculateSimilarity(a, b), CalculateSimilarity(b, a); math.Abs(ab-ba) > 1e-12 {
		t.Errorf("similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestNormalizeFeature(t *testing.T) {
	tests := []struct {
		feature string
		value   float64
		want    float64
	}{
		{"tempo", 60, 0},
		{"tempo", 180, 1},
		{"tempo", 240, 1.5}, // extrapolates, no clamping
		{"loudness", -60, 0},
		{"loudness", 0, 1},
		{"energy", 0.37, 0.37}, // passthrough
		{"valence", 1.2, 1.2},  // not clamped either
	}

	for _, tt := range tests {
		if got := normalizeFeature(tt.feature, tt.value); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeFeature(%q, %v) = %v, want %v", tt.feature, tt.value, got, tt.want)
		}
	}
}
