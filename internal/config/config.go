// internal/config/config.go
//
// Runtime configuration for the server and the CLI.
//
// Sources, in order:
//   1. A .env file in the working directory, if present (godotenv).
//   2. Process environment, parsed into Config with struct-tag defaults.
//
// Environment variables:
//   WORD_LENGTH=5           letters per word
//   MAX_GUESSES=6           guesses per game
//   WORDS_FILE=             word list path; empty uses the embedded list
//   LOG_LEVEL=info          zerolog level
//   PORT=5175               HTTP listen port
//   CLIENT_ORIGIN=...       CORS origin for credentialed requests
//   DAILY_SALT=...          HMAC salt for the daily word
//   RATE_LIMIT_RPS=5        per-client request rate on mutating routes
//   RATE_LIMIT_BURST=10     per-client burst
//   GAME_TTL=2h             idle games older than this are swept

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/internal/game"
)

// Config is passed explicitly to every component that needs it.
type Config struct {
	WordLength     int           `env:"WORD_LENGTH" envDefault:"5"`
	MaxGuesses     int           `env:"MAX_GUESSES" envDefault:"6"`
	WordsFile      string        `env:"WORDS_FILE"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Port           string        `env:"PORT" envDefault:"5175"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	DailySalt      string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	GameTTL        time.Duration `env:"GAME_TTL" envDefault:"2h"`
}

// Validation errors.
var (
	ErrWordLength = errors.New("word length must be at least 1")
	ErrMaxGuesses = errors.New("max guesses must be at least 1")
	ErrRateLimit  = errors.New("rate limit rps and burst must be at least 1")
)

// Load reads .env (if any) and the environment into a validated Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses the current environment without touching .env files.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		WordLength:     5,
		MaxGuesses:     6,
		LogLevel:       "info",
		Port:           "5175",
		ClientOrigin:   "http://localhost:5173",
		DailySalt:      "local_dev_salt",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		GameTTL:        2 * time.Hour,
	}
}

// Validate checks the fields the game depends on.
func (c Config) Validate() error {
	if c.WordLength < 1 {
		return ErrWordLength
	}
	if c.MaxGuesses < 1 {
		return ErrMaxGuesses
	}
	if c.RateLimitRPS < 1 || c.RateLimitBurst < 1 {
		return ErrRateLimit
	}
	return nil
}

// Rules is the game configuration derived from c.
func (c Config) Rules() game.Rules {
	return game.Rules{Letters: c.WordLength, Guesses: c.MaxGuesses}
}
