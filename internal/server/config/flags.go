package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-c int      bcrypt cost for password hashing
//	-o string   comma-separated list of allowed CORS origins
//	-m int      connection pool: max open connections
//	-i int      connection pool: max idle connections
//	-l int      connection pool: max connection age, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-c", "-o", "-m", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.IntVar(&config.BCryptCost, "c", config.BCryptCost, "bcrypt cost")

	corsAllowedOrigins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "allowed CORS origins (comma-separated)")

	fs.IntVar(&config.DBMaxOpenConns, "m", config.DBMaxOpenConns, "db pool max open connections")
	fs.IntVar(&config.DBMaxIdleConns, "i", config.DBMaxIdleConns, "db pool max idle connections")

	connMaxLifetime := fs.Int("l", int(config.DBConnMaxLifetime.Minutes()), "db pool connection max lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
	config.CORSAllowedOrigins = splitOrigins(*corsAllowedOrigins)
	config.DBConnMaxLifetime = time.Duration(*connMaxLifetime) * time.Minute
}
