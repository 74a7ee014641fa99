package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var validate = validator.New()

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TABLETOP_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Game      string    `yaml:"game" env:"TABLETOP_GAME" env-default:"tictactoe" validate:"oneof=tictactoe twentyone rps"`
	Seed      int64     `yaml:"seed" env:"TABLETOP_SEED" env-default:"0"`
	Storage   string    `yaml:"storage" env:"TABLETOP_STORAGE" env-default:"memory" validate:"oneof=memory redis"`
	Redis     Redis     `yaml:"redis"`
	TwentyOne TwentyOne `yaml:"twentyone"`
}

type Redis struct {
	Host string `yaml:"host" env:"TABLETOP_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TABLETOP_REDIS_PORT" env-default:"6379" validate:"required,numeric"`
}

type TwentyOne struct {
	StartingBankroll int `yaml:"starting-bankroll" env:"TABLETOP_STARTING_BANKROLL" env-default:"5" validate:"gt=0"`
	RichAt           int `yaml:"rich-at" env:"TABLETOP_RICH_AT" env-default:"10" validate:"gtfield=StartingBankroll"`
}

// MustLoad reads path when it exists and the environment otherwise.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags: known names, a numeric redis port and a bankroll below rich-at.
func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
