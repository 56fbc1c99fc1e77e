package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"music_recs/internal/models"
	"music_recs/internal/repository"
)

type sampleTrack struct {
	title  string
	artist string
	genre  string
	album  string
}

var sampleTracks = []sampleTrack{
	{"Blinding Lights", "The Weeknd", "Pop", "After Hours"},
	{"Shape of You", "Ed Sheeran", "Pop", "Divide"},
	{"Bohemian Rhapsody", "Queen", "Rock", "A Night at the Opera"},
	{"Stairway to Heaven", "Led Zeppelin", "Rock", "Led Zeppelin IV"},
	{"God's Plan", "Drake", "Hip Hop", "Scorpion"},
	{"HUMBLE.", "Kendrick Lamar", "Hip Hop", "DAMN."},
	{"One More Time", "Daft Punk", "Electronic", "Discovery"},
	{"Strobe", "deadmau5", "Electronic", "For Lack of a Better Name"},
	{"Take Five", "Dave Brubeck", "Jazz", "Time Out"},
	{"So What", "Miles Davis", "Jazz", "Kind of Blue"},
	{"Symphony No. 5", "Beethoven", "Classical", "Various"},
	{"Four Seasons", "Vivaldi", "Classical", "Various"},
	{"Redbone", "Childish Gambino", "R&B", "Awaken, My Love!"},
	{"Earned It", "The Weeknd", "R&B", "Beauty Behind the Madness"},
	{"Jolene", "Dolly Parton", "Country", "Jolene"},
	{"Take Me Home, Country Roads", "John Denver", "Country", "Poems, Prayers & Promises"},
	{"Mr. Brightside", "The Killers", "Indie", "Hot Fuss"},
	{"Take Me Out", "Franz Ferdinand", "Indie", "Franz Ferdinand"},
	{"Enter Sandman", "Metallica", "Metal", "Metallica"},
	{"Master of Puppets", "Metallica", "Metal", "Master of Puppets"},
}

var sampleUsers = []struct {
	email    string
	username string
}{
	{"alice@example.com", "alice_music"},
	{"bob@example.com", "bob_beats"},
	{"charlie@example.com", "charlie_tunes"},
	{"diana@example.com", "diana_sound"},
	{"eve@example.com", "eve_melody"},
}

var seedActions = []string{
	models.ActionPlay,
	models.ActionLike,
	models.ActionSkip,
	models.ActionPlaylistAdd,
}

type Service struct {
	userRepo        repository.UserRepository
	trackRepo       repository.TrackRepository
	interactionRepo repository.InteractionRepository
}

func NewService(
	userRepo repository.UserRepository,
	trackRepo repository.TrackRepository,
	interactionRepo repository.InteractionRepository,
) *Service {
	return &Service{
		userRepo:        userRepo,
		trackRepo:       trackRepo,
		interactionRepo: interactionRepo,
	}
}

// Run populates the database with the sample catalog, users and a month of
// randomized interaction history. It is idempotent: a database that already
// has users is left untouched.
func (s *Service) Run() error {
	count, err := s.userRepo.CountUsers()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		log.Println("[Seed] Database already seeded, skipping")
		return nil
	}

	log.Println("[Seed] Seeding users...")
	users := make([]*models.User, 0, len(sampleUsers))
	for _, su := range sampleUsers {
		hashed, err := s.userRepo.HashPassword("password123")
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		user := &models.User{
			Username: su.username,
			Email:    su.email,
			Password: hashed,
			Role:     "user",
		}
		if err := s.userRepo.CreateUser(user); err != nil {
			return fmt.Errorf("seed user %s: %w", su.email, err)
		}
		users = append(users, user)
	}

	log.Println("[Seed] Seeding tracks...")
	tracks := make([]models.Track, 0, len(sampleTracks))
	for _, st := range sampleTracks {
		track := models.Track{
			Title:  st.title,
			Artist: st.artist,
			Genre:  st.genre,
			Album:  st.album,
		}
		applyRandomFeatures(&track)
		tracks = append(tracks, track)
	}
	if err := s.trackRepo.CreateTracks(tracks); err != nil {
		return fmt.Errorf("seed tracks: %w", err)
	}

	log.Println("[Seed] Seeding interactions...")
	interactionCount := 0
	for _, user := range users {
		n := 15 + rand.Intn(16) // 15-30 events per user
		for i := 0; i < n; i++ {
			track := tracks[rand.Intn(len(tracks))]
			action := seedActions[rand.Intn(len(seedActions))]

			interaction := models.Interaction{
				UserID:    user.ID,
				TrackID:   track.ID,
				Action:    action,
				CreatedAt: randomTimeWithin(30 * 24 * time.Hour),
			}
			if action == models.ActionLike {
				rating := 3 + rand.Intn(3) // likes rate 3-5
				interaction.Rating = &rating
			}
			if action == models.ActionPlay {
				duration := 30 + rand.Intn(270)
				interaction.ListenDuration = &duration
			}

			if err := s.interactionRepo.CreateInteraction(&interaction); err != nil {
				return fmt.Errorf("seed interaction: %w", err)
			}
			interactionCount++
		}
	}

	log.Printf("[Seed] Done: %d users, %d tracks, %d interactions",
		len(users), len(tracks), interactionCount)
	return nil
}

// applyRandomFeatures fills a track with realistic audio features.
func applyRandomFeatures(track *models.Track) {
	track.Tempo = randFloat(60, 180)
	track.Energy = randFloat(0.1, 1.0)
	track.Danceability = randFloat(0.1, 1.0)
	track.Valence = randFloat(0.1, 1.0)
	track.Acousticness = randFloat(0.0, 0.9)
	track.Instrumentalness = randFloat(0.0, 0.9)
	track.Loudness = randFloat(-20, -3)
	track.Speechiness = randFloat(0.0, 0.5)
	track.Duration = 120 + rand.Intn(240)
}

func randFloat(min, max float64) *float64 {
	v := min + rand.Float64()*(max-min)
	return &v
}

func randomTimeWithin(window time.Duration) time.Time {
	offset := time.Duration(rand.Int63n(int64(window)))
	return time.Now().Add(-offset)
}
