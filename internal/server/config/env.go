package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables.
//
// A .env file in the working directory is loaded first if present, so local
// development does not need to export anything; real environments set the
// variables directly and no file is involved.
//
// Recognized variables:
//
//	SERVER_ADDRESS               HTTP bind address (e.g., ":8080")
//	DATABASE_DSN                 PostgreSQL DSN
//	JWT_SECRET                   HMAC secret for signing tokens
//	TOKEN_VALIDITY_MINUTES       access token lifetime, minutes
//	BCRYPT_COST                  password hashing work factor
//	CORS_ALLOWED_ORIGINS         comma-separated list of allowed origins
//	DB_MAX_OPEN_CONNS            connection pool: max open connections
//	DB_MAX_IDLE_CONNS            connection pool: max idle connections
//	DB_CONN_MAX_LIFETIME_MINUTES connection pool: max connection age, minutes
//
// Unset variables leave the current value untouched. A variable that is set
// but not parseable causes a panic, matching how the rest of the loading
// chain treats unusable configuration.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MINUTES"); ok {
		config.TokenValidityDuration = time.Duration(mustAtoi("TOKEN_VALIDITY_MINUTES", v)) * time.Minute
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		config.BCryptCost = mustAtoi("BCRYPT_COST", v)
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
	if v, ok := os.LookupEnv("DB_MAX_OPEN_CONNS"); ok {
		config.DBMaxOpenConns = mustAtoi("DB_MAX_OPEN_CONNS", v)
	}
	if v, ok := os.LookupEnv("DB_MAX_IDLE_CONNS"); ok {
		config.DBMaxIdleConns = mustAtoi("DB_MAX_IDLE_CONNS", v)
	}
	if v, ok := os.LookupEnv("DB_CONN_MAX_LIFETIME_MINUTES"); ok {
		config.DBConnMaxLifetime = time.Duration(mustAtoi("DB_CONN_MAX_LIFETIME_MINUTES", v)) * time.Minute
	}
}

func mustAtoi(name, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", name, err))
	}
	return n
}

// splitOrigins turns a comma-separated origin list into a slice, trimming
// whitespace and skipping empty entries.
func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
