package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// BaseURLEnv names the environment variable holding the API base URL
const BaseURLEnv = "API_BASE_URL"

// Config represents client configuration
type Config struct {
	BaseURL string `yaml:"baseURL" json:"baseURL"`
}

// Load reads optional dotenv files (".env" when none given) into the process
// environment, then builds the config from it. Variables already set in the
// environment take precedence over file values. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %v: %w", file, err)
		}
	}
	cfg := &Config{BaseURL: os.Getenv(BaseURLEnv)}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s environment variable is required", BaseURLEnv)
	}
	return cfg, nil
}
