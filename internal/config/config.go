package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	LogLevel       string
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	AccountStore   string // "dynamo" | "memory"
	OTP            OTPConfig
	RedisURL       string
	Mail           MailConfig
	Predictor      PredictorConfig
	CatalogBucket  string
	CatalogKey     string // optional S3 object replacing the built-in carrier table
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool // honour X-Forwarded-For / X-Real-IP from a fronting proxy
	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	OTPs       string
	Startups   string
	Businesses string
	Customers  string
}

// OTPConfig controls issuance of one-time passcodes.
type OTPConfig struct {
	TTL   time.Duration
	Store string // "dynamo" | "redis" | "memory"
}

// MailConfig selects and configures the outbound mail provider.
type MailConfig struct {
	Provider         string // "smtp" | "sendgrid" | "mailersend" | "log"
	From             string
	FromName         string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SendGridAPIKey   string
	MailerSendAPIKey string
}

// PredictorConfig points the recommendation gateway at its prediction backend.
// When URL is set the HTTP predictor is used, otherwise the script is executed.
type PredictorConfig struct {
	URL     string
	Command string
	Script  string
	Timeout time.Duration
}

// Load reads all configuration from environment variables.
func Load() *Config {
	mailFrom := getEnv("MAIL_FROM", getEnv("GMAIL_USER", "noreply@logistics-net.app"))
	return &Config{
		AppPort:        getEnv("APP_PORT", getEnv("PORT", "3000")),
		AppEnv:         getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			OTPs:       getEnv("DYNAMO_TABLE_OTPS", "otps"),
			Startups:   getEnv("DYNAMO_TABLE_STARTUPS", "startups"),
			Businesses: getEnv("DYNAMO_TABLE_BUSINESSES", "businesses"),
			Customers:  getEnv("DYNAMO_TABLE_CUSTOMERS", "customers"),
		},
		AccountStore: getEnv("ACCOUNT_STORE", "dynamo"),
		OTP: OTPConfig{
			TTL:   getEnvDuration("OTP_TTL", 5*time.Minute),
			Store: getEnv("OTP_STORE", "dynamo"),
		},
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		Mail: MailConfig{
			Provider:         getEnv("MAIL_PROVIDER", "smtp"),
			From:             mailFrom,
			FromName:         getEnv("MAIL_FROM_NAME", "Logistics Net"),
			SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:         getEnv("SMTP_PORT", "587"),
			SMTPUsername:     getEnv("SMTP_USERNAME", getEnv("GMAIL_USER", "")),
			SMTPPassword:     getEnv("SMTP_PASSWORD", getEnv("GMAIL_APP_PASS", "")),
			SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
			MailerSendAPIKey: getEnv("MAILERSEND_API_KEY", ""),
		},
		Predictor: PredictorConfig{
			URL:     getEnv("PREDICTOR_URL", ""),
			Command: getEnv("PREDICTOR_COMMAND", "python3"),
			Script:  getEnv("PREDICTOR_SCRIPT", "predict_api.py"),
			Timeout: getEnvDuration("PREDICTOR_TIMEOUT", 30*time.Second),
		},
		CatalogBucket:  getEnv("CATALOG_S3_BUCKET", ""),
		CatalogKey:     getEnv("CATALOG_S3_KEY", ""),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", getEnv("FRONTEND_URL", "https://logistics-net.vercel.app")), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("90s", "5m") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
