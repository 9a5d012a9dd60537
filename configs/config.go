package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	GinMode   string
	LogLevel  slog.Level

	// replace | confirm
	CartConflictPolicy string
	CORSOrigins        []string
	SeedDemo           bool
}

func LoadConfig() *Config {
	// .env เป็น optional (container ส่ง env มาตรง ๆ)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("cannot load .env", slog.Any("error", err))
	}

	return &Config{
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBSource:           getEnv("DB_SOURCE", "food.db"),
		Port:               getEnv("PORT", "8000"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		JWTTTL:             getDuration("JWT_TTL", 24*time.Hour),
		GinMode:            getEnv("GIN_MODE", "release"),
		LogLevel:           getLogLevel("LOG_LEVEL", slog.LevelInfo),
		CartConflictPolicy: strings.ToLower(getEnv("CART_CONFLICT_POLICY", "replace")),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		SeedDemo:           getBool("SEED_DEMO", true),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getLogLevel(key string, fallback slog.Level) slog.Level {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return l
}
