package repository

import (
	"errors"

	"music_recs/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTrackNotFound = errors.New("track not found")

type TrackRepository interface {
	CreateTrack(track *models.Track) error
	CreateTracks(tracks []models.Track) error
	GetTrackByID(id string) (*models.Track, error)
	GetAllTracks() ([]models.Track, error)
	GetAllTracksExcept(id string) ([]models.Track, error)
	GetTracksByIDs(ids []string) ([]models.Track, error)
	GetTracksExcluding(ids []string) ([]models.Track, error)
	GetRecentTracks(limit int) ([]models.Track, error)
	SearchTracks(query string, limit int) ([]models.Track, error)
	ListTracks(genre, artist string, offset, limit int) ([]models.Track, error)
	GetGenres() ([]string, error)
	CountTracks() (int64, error)
}

type trackRepo struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepo{db: db}
}

func (r *trackRepo) CreateTrack(track *models.Track) error {
	if track.ID == "" {
		track.ID = uuid.NewString()
	}
	return r.db.Create(track).Error
}

func (r *trackRepo) CreateTracks(tracks []models.Track) error {
	for i := range tracks {
		if tracks[i].ID == "" {
			tracks[i].ID = uuid.NewString()
		}
	}
	return r.db.Create(&tracks).Error
}

func (r *trackRepo) GetTrackByID(id string) (*models.Track, error) {
	var track models.Track
	err := r.db.First(&track, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return &track, nil
}

// Candidate fetches are ordered newest-first with id as tie-break so that
// score ties in the engine resolve the same way on every call.

func (r *trackRepo) GetAllTracks() ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Order("created_at DESC, id").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) GetAllTracksExcept(id string) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Where("id <> ?", id).Order("created_at DESC, id").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) GetTracksByIDs(ids []string) ([]models.Track, error) {
	if len(ids) == 0 {
		return []models.Track{}, nil
	}
	var tracks []models.Track
	err := r.db.Where("id IN ?", ids).Order("created_at DESC, id").Find(&tracks).Error
	return tracks, err
}

func (r *trackRepo) GetTracksExcluding(ids []string) ([]models.Track, error) {
	if len(ids) == 0 {
		return r.GetAllTracks()
	}
	var tracks []models.Track
	err := r.db.Where("id NOT IN ?", ids).Order("created_at DESC, id").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) GetRecentTracks(limit int) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Order("created_at DESC, id").Limit(limit).Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) SearchTracks(query string, limit int) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Where("title ILIKE ? OR artist ILIKE ?",
		"%"+query+"%", "%"+query+"%").
		Limit(limit).
		Find(&tracks).Error
	return tracks, err
}

func (r *trackRepo) ListTracks(genre, artist string, offset, limit int) ([]models.Track, error) {
	q := r.db.Order("created_at DESC, id")
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if artist != "" {
		q = q.Where("artist ILIKE ?", "%"+artist+"%")
	}
	var tracks []models.Track
	err := q.Offset(offset).Limit(limit).Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = []models.Track{}
	}
	return tracks, nil
}

func (r *trackRepo) GetGenres() ([]string, error) {
	var genres []string
	err := r.db.Model(&models.Track{}).
		Distinct("genre").
		Where("genre <> ''").
		Order("genre").
		Pluck("genre", &genres).Error
	if genres == nil {
		genres = []string{}
	}
	return genres, err
}

func (r *trackRepo) CountTracks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Track{}).Count(&count).Error
	return count, err
}
