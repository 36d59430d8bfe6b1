package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Match    MatchConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// MatchConfig tunes the candidate retrieval stage of the matching engine.
type MatchConfig struct {
	RadiusKm     float64
	CandidateCap int
	MaxResults   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	radiusKm, err := strconv.ParseFloat(getEnv("MATCH_RADIUS_KM", "50"), 64)
	if err != nil || radiusKm <= 0 {
		return nil, errors.New("invalid match radius")
	}

	candidateCap, err := strconv.Atoi(getEnv("MATCH_CANDIDATE_CAP", "500"))
	if err != nil || candidateCap <= 0 {
		return nil, errors.New("invalid match candidate cap")
	}

	maxResults, err := strconv.Atoi(getEnv("MATCH_MAX_RESULTS", "50"))
	if err != nil || maxResults <= 0 {
		return nil, errors.New("invalid match max results")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "GiveLocal API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "givelocal"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Match: MatchConfig{
			RadiusKm:     radiusKm,
			CandidateCap: candidateCap,
			MaxResults:   maxResults,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
