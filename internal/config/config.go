package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string
	JWTSecret  string

	TrendingWindowDays int
	RecentHistorySize  int
	SeedOnStartup      bool
}

var GlobalConfig *Config

func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("ENV", "development")

	// Engine tuning:
	// - TRENDING_WINDOW_DAYS is the lookback window for interaction counts
	// - RECENT_HISTORY_SIZE caps how many recent positive interactions feed
	//   the taste profile
	trendingWindowDays, _ := strconv.Atoi(getEnv("TRENDING_WINDOW_DAYS", "7"))
	if trendingWindowDays <= 0 {
		trendingWindowDays = 7
	}
	recentHistorySize, _ := strconv.Atoi(getEnv("RECENT_HISTORY_SIZE", "20"))
	if recentHistorySize <= 0 {
		recentHistorySize = 20
	}
	seedOnStartup, _ := strconv.ParseBool(getEnv("SEED_ON_STARTUP", "true"))

	// Set DB defaults based on environment
	var dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode string
	if env == "production" {
		dbHost = getEnv("DB_HOST", "")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "")
		dbPassword = getEnv("DB_PASSWORD", "")
		dbName = getEnv("DB_NAME", "")
		dbSSLMode = getEnv("DB_SSLMODE", "require")
	} else {
		dbHost = getEnv("DB_HOST", "localhost")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "postgres")
		dbPassword = getEnv("DB_PASSWORD", "password")
		dbName = getEnv("DB_NAME", "music_recs")
		dbSSLMode = getEnv("DB_SSLMODE", "disable")
	}

	GlobalConfig = &Config{
		DBHost:     dbHost,
		DBPort:     dbPort,
		DBUser:     dbUser,
		DBPassword: dbPassword,
		DBName:     dbName,
		DBSSLMode:  dbSSLMode,

		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "default-jwt-secret-change-in-production"),

		TrendingWindowDays: trendingWindowDays,
		RecentHistorySize:  recentHistorySize,
		SeedOnStartup:      seedOnStartup,
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
