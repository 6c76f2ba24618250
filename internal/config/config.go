package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	UsersCollection       string `json:"mongo_users_collection"`
	RatingsCollection     string `json:"mongo_ratings_collection"`
	ReportsCollection     string `json:"mongo_reports_collection"`
	SuggestionsCollection string `json:"mongo_suggestions_collection"`

	// Phone verification configuration
	PhoneVerificationTTL      time.Duration `json:"phone_verification_ttl"`
	PhoneVerificationCooldown time.Duration `json:"phone_verification_cooldown"`

	// WhatsApp Cloud API configuration
	WhatsAppEnabled       bool   `json:"whatsapp_enabled"`
	WhatsAppBaseURL       string `json:"whatsapp_base_url"`
	WhatsAppAccessToken   string `json:"whatsapp_access_token"`
	WhatsAppPhoneNumberID string `json:"whatsapp_phone_number_id"`
	WhatsAppTemplateName  string `json:"whatsapp_template_name"`

	// Authorization
	AdminRole string `json:"admin_role"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	phoneVerificationTTL, err := time.ParseDuration(getEnvOrDefault("PHONE_VERIFICATION_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("invalid PHONE_VERIFICATION_TTL: %w", err)
	}

	phoneVerificationCooldown, err := time.ParseDuration(getEnvOrDefault("PHONE_VERIFICATION_COOLDOWN", "60s"))
	if err != nil {
		return fmt.Errorf("invalid PHONE_VERIFICATION_COOLDOWN: %w", err)
	}

	whatsappEnabled := getEnvOrDefault("WHATSAPP_ENABLED", "false") == "true"
	if whatsappEnabled {
		// Fail fast instead of discovering missing credentials on the first send
		if os.Getenv("WHATSAPP_ACCESS_TOKEN") == "" {
			return fmt.Errorf("WHATSAPP_ACCESS_TOKEN is required when WHATSAPP_ENABLED=true")
		}
		if os.Getenv("WHATSAPP_PHONE_NUMBER_ID") == "" {
			return fmt.Errorf("WHATSAPP_PHONE_NUMBER_ID is required when WHATSAPP_ENABLED=true")
		}
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "avalia"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		UsersCollection:       getEnvOrDefault("MONGODB_USERS_COLLECTION", "users"),
		RatingsCollection:     getEnvOrDefault("MONGODB_RATINGS_COLLECTION", "ratings"),
		ReportsCollection:     getEnvOrDefault("MONGODB_REPORTS_COLLECTION", "reports"),
		SuggestionsCollection: getEnvOrDefault("MONGODB_SUGGESTIONS_COLLECTION", "suggestions"),

		// Phone verification configuration
		PhoneVerificationTTL:      phoneVerificationTTL,
		PhoneVerificationCooldown: phoneVerificationCooldown,

		// WhatsApp Cloud API configuration
		WhatsAppEnabled:       whatsappEnabled,
		WhatsAppBaseURL:       getEnvOrDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com/v21.0"),
		WhatsAppAccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppPhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppTemplateName:  getEnvOrDefault("WHATSAPP_TEMPLATE_NAME", ""),

		// Authorization
		AdminRole: getEnvOrDefault("ADMIN_ROLE", "avalia:admin"),

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
