package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setAuthDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if ttl := os.Getenv("AUTH_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_TOKEN_TTL: %w", err)
		}
		config.TokenTTL = parsed
	}

	// Validate configuration
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "rental-portal-backend")
	v.SetDefault("token_ttl", time.Hour)
	// No default JWT secret - must be provided via config file or environment variable
}
