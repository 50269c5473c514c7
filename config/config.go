package config

import (
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EncryptionKeyLength is the required decoded length of DATA_ENCRYPTION_KEY (AES-256)
	EncryptionKeyLength = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	UploadDir   string
	// Classifier (external text-analysis API)
	ClassifierBaseURL  string
	ClassifierAPIKey   string
	ClassifierModel    string
	ClassifierTimeout  time.Duration
	ClassifierMaxChars int
	// Compliance defaults applied when classification omits a suggestion
	DefaultCourtID      string
	DefaultJurisdiction string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Field encryption
	DataEncryptionKey string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	// Validate encryption key - this will fatal in production if invalid
	ValidateEncryptionKey(getEnv("DATA_ENCRYPTION_KEY", ""), environment)

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "db/app.db"),
		Environment:         environment,
		UploadDir:           getEnv("UPLOAD_DIR", "static/uploads"),
		ClassifierBaseURL:   getEnv("CLASSIFIER_BASE_URL", "https://api.openai.com"),
		ClassifierAPIKey:    getEnv("CLASSIFIER_API_KEY", ""),
		ClassifierModel:     getEnv("CLASSIFIER_MODEL", "gpt-4o-mini"),
		ClassifierTimeout:   getEnvDuration("CLASSIFIER_TIMEOUT", 20*time.Second),
		ClassifierMaxChars:  getEnvInt("CLASSIFIER_MAX_CHARS", 6000),
		DefaultCourtID:      getEnv("DEFAULT_COURT_ID", "ma-fed-district"),
		DefaultJurisdiction: getEnv("DEFAULT_JURISDICTION", "Massachusetts"),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "noreply@macourtfiling.org"),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "MA Court Filing"),
		EmailTestMode:       getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		DataEncryptionKey:   getEnv("DATA_ENCRYPTION_KEY", ""),
		R2AccountID:         getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:       getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:   getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:        getEnv("R2_BUCKET_NAME", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// ValidateEncryptionKey validates the field-encryption key meets requirements.
// In production it must be set and decode to exactly 32 bytes; in development
// an empty key falls back to plaintext storage with a warning.
func ValidateEncryptionKey(key string, environment string) error {
	if key == "" {
		if environment == "production" {
			log.Fatal("[CRITICAL] DATA_ENCRYPTION_KEY must be set in production. Generate with: openssl rand -base64 32")
		}
		log.Println("[WARNING] DATA_ENCRYPTION_KEY not set. Extracted document text will be stored in plaintext. This is acceptable only in development.")
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		if environment == "production" {
			log.Fatalf("[CRITICAL] DATA_ENCRYPTION_KEY is not valid base64: %v", err)
		}
		log.Printf("[WARNING] DATA_ENCRYPTION_KEY is not valid base64: %v", err)
		return err
	}

	if len(decoded) != EncryptionKeyLength {
		if environment == "production" {
			log.Fatalf("[CRITICAL] DATA_ENCRYPTION_KEY must decode to %d bytes (got %d). Generate with: openssl rand -base64 32", EncryptionKeyLength, len(decoded))
		}
		log.Printf("[WARNING] DATA_ENCRYPTION_KEY must decode to %d bytes (got %d)", EncryptionKeyLength, len(decoded))
	}

	return nil
}
