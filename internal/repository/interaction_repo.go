package repository

import (
	"database/sql"
	"time"

	"music_recs/internal/models"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	CreateInteraction(interaction *models.Interaction) error
	GetUserInteractions(userID uint, limit int) ([]models.Interaction, error)
	GetUserInteractionsByActions(userID uint, actions []string, limit int) ([]models.Interaction, error)
	GetUserTrackIDs(userID uint) ([]string, error)
	GetMostInteractedTracks(since time.Time, limit int) ([]models.Track, error)
	GetTrackStats(trackID string) (*models.TrackStats, error)
	CountInteractions() (int64, error)
}

type interactionRepo struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) CreateInteraction(interaction *models.Interaction) error {
	return r.db.Create(interaction).Error
}

func (r *interactionRepo) GetUserInteractions(userID uint, limit int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	return interactions, nil
}

func (r *interactionRepo) GetUserInteractionsByActions(userID uint, actions []string, limit int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := r.db.Where("user_id = ? AND action IN ?", userID, actions).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	return interactions, nil
}

// GetUserTrackIDs returns every track the user has interacted with,
// regardless of action. This is the personalization exclusion set.
func (r *interactionRepo) GetUserTrackIDs(userID uint) ([]string, error) {
	var trackIDs []string
	err := r.db.Model(&models.Interaction{}).
		Distinct("track_id").
		Where("user_id = ?", userID).
		Pluck("track_id", &trackIDs).Error
	if trackIDs == nil {
		trackIDs = []string{}
	}
	return trackIDs, err
}

// GetMostInteractedTracks returns tracks ordered by interaction count
// within the window. Ties resolve by track recency then id, so the ranking
// is deterministic at the database.
func (r *interactionRepo) GetMostInteractedTracks(since time.Time, limit int) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Model(&models.Track{}).
		Select("tracks.*").
		Joins("JOIN interactions ON interactions.track_id = tracks.id").
		Where("interactions.created_at >= ?", since).
		Group("tracks.id").
		Order("COUNT(interactions.id) DESC, tracks.created_at DESC, tracks.id").
		Limit(limit).
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *interactionRepo) GetTrackStats(trackID string) (*models.TrackStats, error) {
	stats := &models.TrackStats{TrackID: trackID}

	counts := map[string]*int64{
		models.ActionPlay: &stats.PlayCount,
		models.ActionLike: &stats.LikeCount,
		models.ActionSkip: &stats.SkipCount,
	}
	for action, dest := range counts {
		err := r.db.Model(&models.Interaction{}).
			Where("track_id = ? AND action = ?", trackID, action).
			Count(dest).Error
		if err != nil {
			return nil, err
		}
	}

	var avg sql.NullFloat64
	err := r.db.Model(&models.Interaction{}).
		Where("track_id = ? AND rating IS NOT NULL", trackID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg.Valid {
		value := avg.Float64
		stats.AverageRating = &value
	}

	return stats, nil
}

func (r *interactionRepo) CountInteractions() (int64, error) {
	var count int64
	err := r.db.Model(&models.Interaction{}).Count(&count).Error
	return count, err
}
