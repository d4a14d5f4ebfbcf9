package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadEnv loads .env style files into the process environment.
// Missing files are ignored; malformed ones are reported.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return errors.Wrapf(err, "could not load environment file (%s)", file)
		}
	}
	return nil
}

// ConfigPathFromEnv returns the config file named by PONGAI_CONFIG, if any.
func ConfigPathFromEnv() string {
	return os.Getenv(EnvConfigPath)
}

// ApplyEnv overrides cfg with the PONGAI_* variables that are set.
func ApplyEnv(cfg Config) (Config, error) {
	if addr := os.Getenv(EnvAddress); addr != "" {
		cfg.Address = addr
	}
	if controller := os.Getenv(EnvController); controller != "" {
		cfg.Controller = controller
	}
	if raw := os.Getenv(EnvWinningScore); raw != "" {
		score, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid %s", EnvWinningScore)
		}
		cfg.WinningScore = score
	}
	return cfg, cfg.Validate()
}
