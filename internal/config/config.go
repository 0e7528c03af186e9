package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Services ServicesConfig
	Email    EmailConfig
	Agent    AgentConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey      string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	ResendAPIKey      string
}

// EmailConfig holds sender and notification addresses
type EmailConfig struct {
	FromAddress         string
	NotificationAddress string
}

// AgentConfig holds the voice agent persona settings
type AgentConfig struct {
	Name  string
	Voice string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port       int
	BackendURL string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioAccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioAuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioPhoneNumber, err = requireEnv("TWILIO_PHONE_NUMBER"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}

	// Email configuration
	cfg.Email.FromAddress = getEnvWithDefault("FROM_EMAIL", "noreply@example.com")
	cfg.Email.NotificationAddress = getEnvWithDefault("NOTIFICATION_EMAIL", "alerts@example.com")

	// Agent configuration
	cfg.Agent.Name = getEnvWithDefault("AI_AGENT_NAME", "Jack")
	cfg.Agent.Voice = getEnvWithDefault("AI_AGENT_VOICE", "alloy")

	// Server configuration
	if cfg.Server.BackendURL, err = requireEnv("BACKEND_URL"); err != nil {
		return nil, err
	}
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
