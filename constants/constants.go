package constants

import (
	"os"
	"time"
)

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

// GetDynamoEndpoint is empty unless history should go to DynamoDB, e.g.
// http://localhost:8000 for DynamoDB Local.
func GetDynamoEndpoint() string {
	return getEnv("DYNAMO_ENDPOINT", "")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMO_REGION", "localhost")
}

func GetDynamoTable() string {
	return getEnv("DYNAMO_TABLE", "harmondrill-history")
}

func GetSentryDSN() string {
	return getEnv("SENTRY_DSN", "")
}

// GetSessionTTL is how long an idle drill session is kept. Zero keeps
// sessions until the server stops.
func GetSessionTTL() time.Duration {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl < 0 {
		return 24 * time.Hour
	}
	return ttl
}

func GetAllowedOrigins() string {
	return getEnv("ALLOWED_ORIGINS", "*")
}

// MIDI export defaults
const (
	TicksPerQuarter = 960
	DefaultTempo    = 60
	DefaultVelocity = 80
)
