package tombola

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv overrides c with the TOMBOLA_* environment variables that are
// set.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadEnv() error {
	return GlobalConfig.LoadEnv()
}

// WithEnv applies the TOMBOLA_* environment variables.
func WithEnv() ConfigOption {
	return func(o *Config) error {
		return o.LoadEnv()
	}
}

// WithEnvFile loads the dotenv files into the process environment, without
// overriding variables that are already set, and then applies WithEnv.
func WithEnvFile(filenames ...string) ConfigOption {
	return func(o *Config) error {
		if err := godotenv.Load(filenames...); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return o.LoadEnv()
	}
}
