package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Logger   LoggerConfig
	Upay     UpayConfig
	DynamoDB DynamoDBConfig
}

// AppConfig holds application-wide settings
type AppConfig struct {
	Env          string
	AuditEnabled bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// UpayConfig holds the Upay merchant settings
type UpayConfig struct {
	BaseURL        string
	MerchantID     string
	MerchantKey    string
	RequestTimeout time.Duration
	Mock           bool
}

// DynamoDBConfig holds the gateway call store settings
type DynamoDBConfig struct {
	Region            string
	AccessKeyID       string
	SecretAccessKey   string
	Endpoint          string
	GatewayCallsTable string
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:          getEnv("APP_ENV", "development"),
			AuditEnabled: getEnvAsBool("AUDIT_ENABLED", true),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "30s"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Upay: UpayConfig{
			BaseURL:        getEnv("UPAY_BASE_URL", "https://uat-pg.upay.systems"),
			MerchantID:     os.Getenv("UPAY_MERCHANT_ID"),
			MerchantKey:    os.Getenv("UPAY_MERCHANT_KEY"),
			RequestTimeout: getEnvAsDuration("UPAY_REQUEST_TIMEOUT", "10s"),
			Mock:           isMockFlag(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		},
		DynamoDB: DynamoDBConfig{
			Region:            getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:       getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:   getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:          os.Getenv("DYNAMODB_ENDPOINT"),
			GatewayCallsTable: getEnv("GATEWAY_CALLS_TABLE", "gateway_calls"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Upay.RequestTimeout <= 0 {
		return fmt.Errorf("upay request timeout must be positive, got %s", c.Upay.RequestTimeout)
	}

	u, err := url.Parse(c.Upay.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid upay base url: %q", c.Upay.BaseURL)
	}

	if !c.Upay.Mock && (c.Upay.MerchantID == "" || c.Upay.MerchantKey == "") {
		return errors.New("UPAY_MERCHANT_ID and UPAY_MERCHANT_KEY are required unless PAYMENT_GATEWAY_MOCK is set")
	}

	if c.App.AuditEnabled && c.DynamoDB.GatewayCallsTable == "" {
		return errors.New("gateway calls table cannot be empty when audit is enabled")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}

func isMockFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
