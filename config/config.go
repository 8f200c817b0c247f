package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Image catalog
	ImageBasePath string
	// SMTP Configuration (Brevo)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	SMTPFromName   string
	ContactEmailTo string // Operator inbox for enquiry notifications
	// Spreadsheet webhook (Google Apps Script web app)
	SheetsWebhookURL   string
	SheetsSharedSecret string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Contact dispatch
	DispatchTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Strip trailing slashes so joined image URLs never double up
		ImageBasePath: strings.TrimRight(getEnv("IMAGE_BASE_PATH", "/images"), "/"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "info@veasacoustics.com"), // Must be verified in Brevo
		SMTPFromName:   getEnv("SMTP_FROM_NAME", "Veas Acoustics"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "phil@veasacoustics.com"),
		// Spreadsheet webhook
		SheetsWebhookURL:   getEnv("SHEETS_WEBAPP_URL", ""),
		SheetsSharedSecret: getEnv("SHEETS_SHARED_SECRET", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Contact dispatch
		DispatchTimeoutSeconds: getEnvInt("DISPATCH_TIMEOUT_SECONDS", 10),
	}

	// Warn early about missing optional integrations so operators know
	// which side effects will be skipped at dispatch time.
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials missing. Contact emails will be skipped.")
	}
	if cfg.SheetsWebhookURL == "" || cfg.SheetsSharedSecret == "" {
		log.Println("WARNING: SHEETS_WEBAPP_URL or SHEETS_SHARED_SECRET missing. Spreadsheet logging will be skipped.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
