package models

import (
	"time"
)

// Interaction actions. Skip and dislike are recorded but never feed the
// taste profile.
const (
	ActionPlay        = "play"
	ActionLike        = "like"
	ActionSkip        = "skip"
	ActionPlaylistAdd = "playlist_add"
	ActionDislike     = "dislike"
)

// PositiveActions are the signals the personalization engine builds the
// taste profile from.
var PositiveActions = []string{ActionLike, ActionPlay, ActionPlaylistAdd}

// Interaction is an append-only user-track event. The engine only reads
// these; they are never mutated or deleted.
type Interaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index:idx_user_created,priority:1" json:"user_id"`
	TrackID        string    `gorm:"type:uuid;not null;index" json:"track_id"`
	Action         string    `gorm:"type:varchar(50);not null" json:"action"`
	Rating         *int      `json:"rating,omitempty"`          // 1-5, meaningful for likes
	ListenDuration *int      `json:"listen_duration,omitempty"` // seconds
	CreatedAt      time.Time `gorm:"index:idx_user_created,priority:2" json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Track Track `gorm:"foreignKey:TrackID" json:"-"`
}

type InteractionCreate struct {
	TrackID        string `json:"track_id" binding:"required"`
	Action         string `json:"action" binding:"required,oneof=play like skip playlist_add dislike"`
	Rating         *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	ListenDuration *int   `json:"listen_duration" binding:"omitempty,min=0"`
}
