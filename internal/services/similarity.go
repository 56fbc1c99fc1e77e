package services

import (
	"math"
	"sort"

	"music_recs/internal/models"
)

// featureWeights biases the similarity computation toward the features
// that matter most perceptually. The sum is intentionally not 1.
var featureWeights = map[string]float64{
	"tempo":            0.15,
	"energy":           0.20,
	"danceability":     0.15,
	"valence":          0.15,
	"acousticness":     0.10,
	"instrumentalness": 0.10,
	"loudness":         0.05,
	"speechiness":      0.10,
}

// featureNames fixes the iteration order over the feature space.
var featureNames = []string{
	"tempo", "energy", "danceability", "valence",
	"acousticness", "instrumentalness", "loudness", "speechiness",
}

// Genre boosts are fixed relevance heuristics, applied multiplicatively and
// capped at 1.0.
const (
	sameGenreBoost     = 1.2
	favoriteGenreBoost = 1.3
)

// normalizeFeature maps a raw feature value onto roughly [0,1]. Tempo and
// loudness have natural units (BPM, dB); everything else is assumed
// pre-normalized. Out-of-range values extrapolate linearly, no clamping.
func normalizeFeature(name string, value float64) float64 {
	switch name {
	case "tempo":
		return (value - 60) / 120
	case "loudness":
		return (value + 60) / 60
	}
	return value
}

// CalculateSimilarity scores two partial feature records on [0,1], higher
// meaning more similar. Only features present in both records participate;
// with no shared features the score is a defined 0.0, not an error. The raw
// cosine lands in [-1,1] and is rescaled to [0,1] so that the genre boosts
// can never push a score negative.
func CalculateSimilarity(a, b models.FeatureVector) float64 {
	vec1 := make([]float64, 0, len(featureNames))
	vec2 := make([]float64, 0, len(featureNames))

	for _, name := range featureNames {
		v1, ok1 := a[name]
		v2, ok2 := b[name]
		if !ok1 || !ok2 {
			continue
		}
		weight := featureWeights[name]
		vec1 = append(vec1, normalizeFeature(name, v1)*weight)
		vec2 = append(vec2, normalizeFeature(name, v2)*weight)
	}

	if len(vec1) == 0 {
		return 0.0
	}

	var dotProduct, norm1, norm2 float64
	for i := range vec1 {
		dotProduct += vec1[i] * vec2[i]
		norm1 += vec1[i] * vec1[i]
		norm2 += vec2[i] * vec2[i]
	}

	norm1 = math.Sqrt(norm1)
	norm2 = math.Sqrt(norm2)
	if norm1 == 0 || norm2 == 0 {
		return 0.0
	}

	similarity := dotProduct / (norm1 * norm2)

	return (similarity + 1) / 2
}

type scoredTrack struct {
	track *models.Track
	score float64
}

// sortByScore ranks scored tracks descending. The stable sort keeps the
// candidate fetch order for exact ties, so identical inputs rank identically
// on every call.
func sortByScore(scored []scoredTrack) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
}
