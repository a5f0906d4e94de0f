package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server needs from the environment so main
// stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// DatabaseURL points at the crime_evidence schema holding the income
	// evidence requirement tables. Empty means the in-memory seed store.
	DatabaseURL string

	// RedisURL enables the requirement lookup cache when set.
	RedisURL            string
	RequirementCacheTTL time.Duration

	// Collaborator base URLs.
	CourtDataAPIURL       string
	MeansAssessmentAPIURL string

	// KafkaBrokers enables the Kafka audit sink when non-empty.
	KafkaBrokers []string
	AuditTopic   string
}

// FromEnv builds a Config from environment variables with dev defaults.
func FromEnv() Config {
	cfg := Config{
		Addr:                  envOr("CRIME_EVIDENCE_ADDR", ":8080"),
		JWTSigningKey:         envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:             envOr("JWT_ISSUER", "laa-crime-apps"),
		JWTAudience:           envOr("JWT_AUDIENCE", "crime-evidence"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisURL:              os.Getenv("REDIS_URL"),
		RequirementCacheTTL:   15 * time.Minute,
		CourtDataAPIURL:       envOr("MAAT_API_BASE_URL", "http://localhost:8090"),
		MeansAssessmentAPIURL: envOr("CMA_API_BASE_URL", "http://localhost:8091"),
		AuditTopic:            envOr("AUDIT_TOPIC", "crime-evidence.audit"),
	}
	if ttl := os.Getenv("REQUIREMENT_CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.RequirementCacheTTL = d
		}
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
