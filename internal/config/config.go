// Package config loads the command's settings from the
// environment.
//
// Variables may also come from a dotenv file, by default .env in
// the working directory. Variables already present in the
// environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvFileVar names the variable holding the dotenv file path.
const EnvFileVar = "RADIX_ENV_FILE"

// DefaultEnvFile is the dotenv file read when EnvFileVar is
// unset.
const DefaultEnvFile = ".env"

// Config holds the command's settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `env:"RADIX_LOG_LEVEL" envDefault:"warn"`

	// DefaultCodec is the codec selected when the interactive
	// mode starts.
	DefaultCodec string `env:"RADIX_CODEC" envDefault:"base64"`

	// Copy copies every result to the system clipboard.
	Copy bool `env:"RADIX_COPY" envDefault:"false"`

	// EnvFile is the dotenv file that was consulted.
	EnvFile string `env:"RADIX_ENV_FILE" envDefault:".env"`
}

// Load reads the dotenv file, if any, then parses the
// environment into a Config.
//
// A missing dotenv file is not an error.
func Load() (Config, error) {
	file := os.Getenv(EnvFileVar)
	if file == "" {
		file = DefaultEnvFile
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading %s: %w", file, err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
