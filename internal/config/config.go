package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the application configuration.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	BootstrapAdminPhone    string
	BootstrapAdminPassword string

	VerificationCodeTTL time.Duration

	SMSAPIURL      string
	SMSAPIToken    string
	SMSAlphaNameID string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "tapeta"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "tapeta"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		AccessTokenSecret:  strings.TrimSpace(getenv("ACCESS_TOKEN_SECRET", "")),
		RefreshTokenSecret: strings.TrimSpace(getenv("REFRESH_TOKEN_SECRET", "")),
		AccessTokenTTL:     getenvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL:    getenvDuration("REFRESH_TOKEN_TTL", 180*24*time.Hour),

		BootstrapAdminPhone:    strings.TrimSpace(getenv("BOOTSTRAP_ADMIN_PHONE", "")),
		BootstrapAdminPassword: getenv("BOOTSTRAP_ADMIN_PASSWORD", ""),

		VerificationCodeTTL: getenvDuration("VERIFICATION_CODE_TTL", 10*time.Minute),

		SMSAPIURL:      getenv("SMS_API_URL", "https://app.sms.by/api/v1/sendQuickSMS"),
		SMSAPIToken:    strings.TrimSpace(getenv("SMS_API_TOKEN", "")),
		SMSAlphaNameID: strings.TrimSpace(getenv("SMS_ALPHA_NAME_ID", "")),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
