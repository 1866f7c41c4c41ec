package config

import (
	"fmt"
	"os"
	"strconv"
)

// TestConfig holds configuration for E2E/smoke tests
type TestConfig struct {
	// API endpoint configuration
	BaseURL string // e.g., "http://localhost:8080"

	// Credentials of an account with at least the Usuário role
	Username string
	Password string

	// Test timeouts
	HealthCheckTimeout int // seconds
	APICallTimeout     int // seconds
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() (*TestConfig, error) {
	baseURL := os.Getenv("TEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080" // Default for local testing
	}

	username := os.Getenv("TEST_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("TEST_USERNAME is required")
	}

	password := os.Getenv("TEST_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("TEST_PASSWORD is required")
	}

	apiTimeout := 10
	if v := os.Getenv("TEST_API_TIMEOUT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TEST_API_TIMEOUT: %w", err)
		}
		apiTimeout = parsed
	}

	return &TestConfig{
		BaseURL:            baseURL,
		Username:           username,
		Password:           password,
		HealthCheckTimeout: 30,
		APICallTimeout:     apiTimeout,
	}, nil
}
