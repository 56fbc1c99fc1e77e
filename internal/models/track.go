package models

import (
	"time"
)

// Track is a catalog entry with its audio-feature record. Audio features
// are pointers so that an absent value is distinguishable from a recorded
// zero; the engine skips absent features instead of treating them as 0.
type Track struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(255);not null;index" json:"title"`
	Artist   string `gorm:"type:varchar(255);not null;index" json:"artist"`
	Album    string `gorm:"type:varchar(255)" json:"album,omitempty"`
	Genre    string `gorm:"type:varchar(100);index" json:"genre,omitempty"`
	Duration int    `json:"duration,omitempty"` // seconds

	Tempo            *float64 `json:"tempo,omitempty"` // BPM, typically 60-180
	Energy           *float64 `json:"energy,omitempty"`
	Danceability     *float64 `json:"danceability,omitempty"`
	Valence          *float64 `json:"valence,omitempty"`
	Acousticness     *float64 `json:"acousticness,omitempty"`
	Instrumentalness *float64 `json:"instrumentalness,omitempty"`
	Loudness         *float64 `json:"loudness,omitempty"` // dB, typically -60..0
	Speechiness      *float64 `json:"speechiness,omitempty"`

	Key string `gorm:"type:varchar(10)" json:"key,omitempty"` // musical key, not used for similarity

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// FeatureVector maps feature name to value for the features a track
// actually has recorded.
type FeatureVector map[string]float64

// Features returns the track's recorded audio features; absent features
// are simply not present in the map.
func (t *Track) Features() FeatureVector {
	fv := make(FeatureVector, 8)
	put := func(name string, v *float64) {
		if v != nil {
			fv[name] = *v
		}
	}
	put("tempo", t.Tempo)
	put("energy", t.Energy)
	put("danceability", t.Danceability)
	put("valence", t.Valence)
	put("acousticness", t.Acousticness)
	put("instrumentalness", t.Instrumentalness)
	put("loudness", t.Loudness)
	put("speechiness", t.Speechiness)
	return fv
}

type TrackCreate struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Artist   string `json:"artist" binding:"required,min=1,max=255"`
	Album    string `json:"album" binding:"omitempty,max=255"`
	Genre    string `json:"genre" binding:"omitempty,max=100"`
	Duration int    `json:"duration" binding:"omitempty,min=0"`

	Tempo            *float64 `json:"tempo" binding:"omitempty,min=0,max=300"`
	Energy           *float64 `json:"energy" binding:"omitempty,min=0,max=1"`
	Danceability     *float64 `json:"danceability" binding:"omitempty,min=0,max=1"`
	Valence          *float64 `json:"valence" binding:"omitempty,min=0,max=1"`
	Acousticness     *float64 `json:"acousticness" binding:"omitempty,min=0,max=1"`
	Instrumentalness *float64 `json:"instrumentalness" binding:"omitempty,min=0,max=1"`
	Loudness         *float64 `json:"loudness"`
	Speechiness      *float64 `json:"speechiness" binding:"omitempty,min=0,max=1"`

	Key string `json:"key" binding:"omitempty,max=10"`
}

// ToTrack copies the validated request fields into a Track record.
func (c *TrackCreate) ToTrack() Track {
	return Track{
		Title:            c.Title,
		Artist:           c.Artist,
		Album:            c.Album,
		Genre:            c.Genre,
		Duration:         c.Duration,
		Tempo:            c.Tempo,
		Energy:           c.Energy,
		Danceability:     c.Danceability,
		Valence:          c.Valence,
		Acousticness:     c.Acousticness,
		Instrumentalness: c.Instrumentalness,
		Loudness:         c.Loudness,
		Speechiness:      c.Speechiness,
		Key:              c.Key,
	}
}

type BulkTrackCreate struct {
	Tracks []TrackCreate `json:"tracks" binding:"required,min=1,max=100,dive"`
}
