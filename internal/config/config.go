package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Public form rate limiting (requests/sec and burst, per IP)
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Pricing (dollars)
	PricePerPound   float64
	PressingPerItem float64

	// Pickup window driving the time-slot picker
	PickupStartHour   int
	PickupEndHour     int
	PickupStepMinutes int

	// Email dispatch
	EmailProvider     string // sendgrid, ses, or stub
	BusinessEmail     string
	BusinessName      string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SESFromEmail      string
	SESFromName       string
	AWSRegion         string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 2),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		PricePerPound:   getEnvAsFloat("PRICE_PER_POUND", 1.85),
		PressingPerItem: getEnvAsFloat("PRESSING_PER_ITEM", 1.25),

		PickupStartHour:   getEnvAsInt("PICKUP_START_HOUR", 7),
		PickupEndHour:     getEnvAsInt("PICKUP_END_HOUR", 21),
		PickupStepMinutes: getEnvAsInt("PICKUP_STEP_MINUTES", 15),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "stub"))),
		BusinessEmail:     getEnv("BUSINESS_EMAIL", ""),
		BusinessName:      getEnv("BUSINESS_NAME", "The Laundry Lady"),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "The Laundry Lady"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "The Laundry Lady"),
		AWSRegion:         getEnv("AWS_REGION", ""),
	}
}

// Validate rejects configurations the rest of the system assumes away: the
// slot generator's behavior is undefined for an inverted window, and pricing
// below zero (or a free pound rate) has no meaning for the estimate.
func (c *Config) Validate() error {
	if c.PickupStartHour < 0 || c.PickupEndHour > 24 || c.PickupStartHour > c.PickupEndHour {
		return fmt.Errorf("config: invalid pickup window %d-%d", c.PickupStartHour, c.PickupEndHour)
	}
	if c.PickupStepMinutes <= 0 {
		return fmt.Errorf("config: pickup step must be positive, got %d", c.PickupStepMinutes)
	}
	if c.PricePerPound <= 0 {
		return fmt.Errorf("config: price per pound must be positive, got %g", c.PricePerPound)
	}
	if c.PressingPerItem < 0 {
		return fmt.Errorf("config: pressing per item must not be negative, got %g", c.PressingPerItem)
	}
	switch c.EmailProvider {
	case "sendgrid", "ses", "stub":
	default:
		return fmt.Errorf("config: unknown email provider %q", c.EmailProvider)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
