package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/langgenius/niutrans-plugin/niutrans"
)

// EnvFileVar points at an optional .env file loaded before the
// environment is read.
const EnvFileVar = "NIUTRANS_ENV_FILE"

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	AppID  string `envconfig:"NIUTRANS_APP_ID" required:"true"`
	APIKey string `envconfig:"NIUTRANS_API_KEY" required:"true"`
	APIURL string `envconfig:"NIUTRANS_API_URL" default:"https://api.niutrans.com"`
}

func Load() (*Config, error) {
	loadEnvFile()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("NIUTRANS_APP_ID is required")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("NIUTRANS_API_KEY is required")
	}
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("NIUTRANS_API_URL is required")
	}
	return nil
}

// Credentials returns the credential pair for client construction.
func (c *Config) Credentials() niutrans.Credentials {
	return niutrans.Credentials{
		AppID:  strings.TrimSpace(c.AppID),
		APIKey: strings.TrimSpace(c.APIKey),
	}
}

// loadEnvFile loads an optional .env file. NIUTRANS_ENV_FILE wins over
// a ./.env in the working directory; both are best-effort.
func loadEnvFile() {
	if custom := strings.TrimSpace(os.Getenv(EnvFileVar)); custom != "" {
		if err := godotenv.Overload(custom); err != nil {
			log.Printf("Warning: failed to load %s=%s", EnvFileVar, custom)
		}
		return
	}
	_ = godotenv.Load()
}
