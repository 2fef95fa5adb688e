package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURL     string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8000"
	defaultTokenTTLMin     = 60
	defaultShutdownTimeout = 10 * time.Second
	defaultAllowedOrigins  = "*"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURL:     getString(lookup, "DATABASE_URL", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", ""),
		BcryptCost:      getInt(lookup, "BCRYPT_COST", 0),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	ttlMin := getInt(lookup, "JWT_EXPIRES_MIN", defaultTokenTTLMin)
	origins := getString(lookup, "CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)

	fs := flag.NewFlagSet("authd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&ttlMin, "jwt-expires", ttlMin, "Auth token lifetime in minutes")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for password hashing (0 = library default)")
	fs.StringVar(&origins, "cors-origins", origins, "Comma-separated list of allowed CORS origins")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if ttlMin <= 0 {
		ttlMin = defaultTokenTTLMin
	}
	cfg.TokenTTL = time.Duration(ttlMin) * time.Minute

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BcryptCost < 0 {
		cfg.BcryptCost = 0
	}

	cfg.AllowedOrigins = splitOrigins(origins)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL must be provided")
	}

	// No insecure development fallback: an unset secret is a startup failure.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret must be provided")
	}

	return cfg, nil
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		result = []string{defaultAllowedOrigins}
	}
	return result
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
