package config

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Google    GoogleConfig
	Gemini    GeminiConfig
	Directory DirectoryConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
	SeedsPath       string
}

type JWTConfig struct {
	SessionTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	RateLimitPerSecond   int
	RateLimitBurst       int
	CancelOpenDebounce   time.Duration
	GuideDebounce        time.Duration
	TokenEncryptionKey   [32]byte
	AnonymousStateTTL    time.Duration
	OAuthStateCookieName string
	AuditRetention       time.Duration
}

// GoogleConfig holds the OAuth client and the inbox scan knobs.
type GoogleConfig struct {
	ClientID          string
	ClientSecret      string
	RedirectURL       string
	AuthURL           string
	TokenURL          string
	Scopes            []string
	ScanWindow        string
	ScanMaxMessages   int
	ScanPageSize      int64
	ScanConcurrency   int
	ScanRatePerSecond int
	ScanTimeout       time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type DirectoryConfig struct {
	CSVPath          string
	DefaultsEnabled  bool
	SearchLimit      int
	MatchMaxDistance int
}

// Load reads the configuration from the environment. Secrets that are
// missing outside production are generated per process.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "nomo_user"),
			Password:        getEnv("DB_PASSWORD", "nomo_password"),
			Name:            getEnv("DB_NAME", "nomo_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond:   getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:       getIntEnv("RATE_LIMIT_BURST", 20),
			CancelOpenDebounce:   getDurationEnv("CANCEL_OPEN_DEBOUNCE", 800*time.Millisecond),
			GuideDebounce:        getDurationEnv("GUIDE_DEBOUNCE", 700*time.Millisecond),
			AnonymousStateTTL:    getDurationEnv("ANONYMOUS_STATE_TTL", 24*time.Hour),
			OAuthStateCookieName: getEnv("OAUTH_STATE_COOKIE", "nomo_oauth_state"),
			AuditRetention:       getDurationEnv("AUDIT_RETENTION", 90*24*time.Hour),
		},
		JWT: JWTConfig{
			SessionTokenDuration: getDurationEnv("JWT_SESSION_TOKEN_DURATION", 24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "nomo-api"),
		},
		Google: GoogleConfig{
			ClientID:          getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret:      getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:       getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
			AuthURL:           getEnv("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/auth"),
			TokenURL:          getEnv("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token"),
			Scopes:            getListEnv("GOOGLE_SCOPES", []string{"openid", "email", "profile", "https://www.googleapis.com/auth/gmail.readonly"}),
			ScanWindow:        getEnv("SCAN_WINDOW", "18m"),
			ScanMaxMessages:   getIntEnv("SCAN_MAX_MESSAGES", 400),
			ScanPageSize:      int64(getIntEnv("SCAN_PAGE_SIZE", 100)),
			ScanConcurrency:   getIntEnv("SCAN_CONCURRENCY", 8),
			ScanRatePerSecond: getIntEnv("SCAN_RATE_PER_SECOND", 40),
			ScanTimeout:       getDurationEnv("SCAN_TIMEOUT", 45*time.Second),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: getDurationEnv("GEMINI_TIMEOUT", 30*time.Second),
		},
		Directory: DirectoryConfig{
			CSVPath:          getEnv("DIRECTORY_CSV_PATH", "data/cancel_directory.csv"),
			DefaultsEnabled:  getBoolEnv("DEFAULT_SUBSCRIPTIONS_ENABLED", true),
			SearchLimit:      getIntEnv("DIRECTORY_SEARCH_LIMIT", 6),
			MatchMaxDistance: getIntEnv("DIRECTORY_MATCH_MAX_DISTANCE", 3),
		},
	}

	config.Server.CORSAllowOrigins = getListEnv("CORS_ALLOW_ORIGINS", []string{"*"})
	if config.IsProduction() && len(config.Server.CORSAllowOrigins) == 1 && config.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
	}

	var err error
	if config.JWT.PrivateKey, config.JWT.PublicKey, err = config.sessionKeys(); err != nil {
		return nil, fmt.Errorf("session signing keys: %w", err)
	}
	if config.Security.TokenEncryptionKey, err = config.tokenEncryptionKey(); err != nil {
		return nil, fmt.Errorf("token encryption key: %w", err)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// GoogleEnabled reports whether Google sign-in and inbox scans can run.
func (c *Config) GoogleEnabled() bool {
	return c.Google.ClientID != "" && c.Google.ClientSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
