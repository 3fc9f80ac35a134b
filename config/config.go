package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	AllowedOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string
	// Inbox that receives the "new application" notifications and the
	// daily digest.
	MailNotifyTo string

	// Fixed-window rate limit applied to the public submission endpoints.
	SubmitRateLimit  int
	SubmitRateWindow time.Duration

	// Client-side submission timeout. The HTTP transport aborts a hung
	// request after this long so the form never stays locked forever.
	SubmitTimeout time.Duration

	DigestCronSpec string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "tomatoplanet")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "leads")
	ServerPort = getEnv("SERVER_PORT", "8080")

	AllowedOrigins = strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	SendGridAPIKey = getEnv("SENDGRID_API_KEY", "")
	MailFrom = getEnv("MAIL_FROM", "noreply@tomatoplanet.io")
	MailFromName = getEnv("MAIL_FROM_NAME", "Tomato Planet")
	MailNotifyTo = getEnv("MAIL_NOTIFY_TO", "partnerships@tomatoplanet.io")

	SubmitRateLimit, _ = strconv.Atoi(getEnv("SUBMIT_RATE_LIMIT", "10"))
	SubmitRateWindow = getDuration("SUBMIT_RATE_WINDOW", time.Minute)
	SubmitTimeout = getDuration("SUBMIT_TIMEOUT", 15*time.Second)

	DigestCronSpec = getEnv("DIGEST_CRON_SPEC", "0 8 * * *")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
