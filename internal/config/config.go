package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Leave    LeaveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LeaveConfig holds the quota policy knobs. Entitlements are expressed in
// days here and converted to working minutes by the quota calculator.
type LeaveConfig struct {
	AnnualDays       float64
	SickDays         float64
	PersonalDays     float64
	ProrateFirstYear bool
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fieldops"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	annualDays, err := strconv.ParseFloat(getEnv("LEAVE_ANNUAL_DAYS", "12"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ANNUAL_DAYS: %w", err)
	}
	sickDays, err := strconv.ParseFloat(getEnv("LEAVE_SICK_DAYS", "14"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_SICK_DAYS: %w", err)
	}
	personalDays, err := strconv.ParseFloat(getEnv("LEAVE_PERSONAL_DAYS", "3"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_PERSONAL_DAYS: %w", err)
	}

	config.Leave = LeaveConfig{
		AnnualDays:       annualDays,
		SickDays:         sickDays,
		PersonalDays:     personalDays,
		ProrateFirstYear: getEnv("LEAVE_PRORATE_FIRST_YEAR", "true") == "true",
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Leave.AnnualDays < 0 || c.Leave.SickDays < 0 || c.Leave.PersonalDays < 0 {
		return fmt.Errorf("leave entitlements must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
