package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds runtime overrides read from the process environment
type Env struct {
	Seed       int64  `env:"POLYHOP_SEED"`
	ConfigDir  string `env:"POLYHOP_CONFIG_DIR"`
	SensorAddr string `env:"POLYHOP_SENSOR_ADDR" envDefault:"127.0.0.1:8765"`
	DBPath     string `env:"POLYHOP_DB_PATH" envDefault:"polyhop.db"`
	Audio      bool   `env:"POLYHOP_AUDIO" envDefault:"true"`
	TPS        int    `env:"POLYHOP_TPS" envDefault:"60"`
}

// LoadEnv reads the optional dotenv files and parses Env.
// Variables already set in the environment win over the files.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}
