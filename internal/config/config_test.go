package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/internal/game"
)

var allKeys = []string{
	"WORD_LENGTH", "MAX_GUESSES", "WORDS_FILE", "LOG_LEVEL", "PORT",
	"CLIENT_ORIGIN", "DAILY_SALT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "GAME_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(game.DefaultRules(), cfg.Rules()); diff != "" {
		t.Errorf("rules (-want +got)\n%s", diff)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_GUESSES", "8")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("GAME_TTL", "15m")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.WordLength != 6 || cfg.MaxGuesses != 8 {
		t.Errorf("got length %d guesses %d", cfg.WordLength, cfg.MaxGuesses)
	}
	if cfg.WordsFile != "/tmp/words.txt" {
		t.Errorf("WordsFile = %q", cfg.WordsFile)
	}
	if cfg.GameTTL != 15*time.Minute {
		t.Errorf("GameTTL = %v", cfg.GameTTL)
	}
	if diff := cmp.Diff(game.Rules{Letters: 6, Guesses: 8}, cfg.Rules()); diff != "" {
		t.Errorf("rules (-want +got)\n%s", diff)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	cases := []struct {
		key, val string
		want     error
	}{
		{"WORD_LENGTH", "0", ErrWordLength},
		{"MAX_GUESSES", "-1", ErrMaxGuesses},
		{"RATE_LIMIT_RPS", "0", ErrRateLimit},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(c.key, c.val)
			if _, err := FromEnv(); !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestFromEnvUnparsable(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORD_LENGTH", "five")
	if _, err := FromEnv(); err == nil {
		t.Error("expected parse error")
	}
}
