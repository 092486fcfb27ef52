package config

import (
	"os"
	"strings"
	"time"
)

// Config collects every tunable the service reads from the
// environment. Cache TTLs are per entity kind: subjects are treated as
// volatile, the rest as rarely changing.
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	// Empty list disables event publishing and the audit consumer.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret string
	TokenTTL  time.Duration

	SubjectTTL      time.Duration
	ClassTTL        time.Duration
	StudentTTL      time.Duration
	StudentClassTTL time.Duration

	SeedUsername string
	SeedPassword string
}

// Load reads the configuration from the environment, falling back to
// local development defaults.
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", "127.0.0.1"),
		DBPort: getEnv("DB_PORT", "3306"),
		DBUser: getEnv("DB_USER", "root"),
		DBPass: getEnv("DB_PASS", ""),
		DBName: getEnv("DB_NAME", "school-db"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "entity-topic"),

		JWTSecret: getEnv("JWT_SECRET", "secret"),
		TokenTTL:  getDuration("TOKEN_TTL", 30*time.Minute),

		SubjectTTL:      getDuration("SUBJECT_CACHE_TTL", 60*time.Second),
		ClassTTL:        getDuration("CLASS_CACHE_TTL", time.Hour),
		StudentTTL:      getDuration("STUDENT_CACHE_TTL", time.Hour),
		StudentClassTTL: getDuration("STUDENTCLASS_CACHE_TTL", time.Hour),

		SeedUsername: getEnv("SEED_USERNAME", ""),
		SeedPassword: getEnv("SEED_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
