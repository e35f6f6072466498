package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay      = "play"
	ModeEnumerate = "enumerate"
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrInvalidBoard = errors.New("invalid board")
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode        string      `yaml:"mode" env:"MODE" env-default:"enumerate"`
	Redis       Redis       `yaml:"redis"`
	Play        Play        `yaml:"play"`
	Enumeration Enumeration `yaml:"enumeration"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Play struct {
	AutoMoves []string `yaml:"auto-moves" env:"PLAY_AUTO_MOVES" env-separator:","`
	NoColor   bool     `yaml:"no-color" env:"PLAY_NO_COLOR" env-default:"false"`
}

type Enumeration struct {
	OpeningBoard int           `yaml:"opening-board" env:"ENUMERATION_OPENING_BOARD" env-default:"1"`
	ClosedBoards []int         `yaml:"closed-boards" env:"ENUMERATION_CLOSED_BOARDS" env-separator:","`
	Pace         time.Duration `yaml:"pace" env:"ENUMERATION_PACE" env-default:"0s"`
	Quiet        bool          `yaml:"quiet" env:"ENUMERATION_QUIET" env-default:"false"`
}

// MustLoad - load all configurations from the yaml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModePlay, ModeEnumerate:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if !isBoard(that.Enumeration.OpeningBoard) {
		return fmt.Errorf("%w: opening board %d", ErrInvalidBoard, that.Enumeration.OpeningBoard)
	}

	for _, board := range that.Enumeration.ClosedBoards {
		if !isBoard(board) {
			return fmt.Errorf("%w: closed board %d", ErrInvalidBoard, board)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func isBoard(board int) bool {
	return board >= 1 && board <= 4
}
