// internal/cli/root.go
//
// Command-line entry point.
// Responsibilities:
//   - Build the cobra command tree (serve, play, score).
//   - Configure the global zerolog logger.
//   - Load configuration and the word list for subcommands.
//
// Log level precedence: --log-level, then LOG_LEVEL (process env or .env),
// then info. The level is re-applied once .env has been read.

package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/words"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "wordle",
		Short:        "Guess the hidden word in a fixed number of tries",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "zerolog level (overrides LOG_LEVEL)")
	cmd.AddCommand(newServeCmd(), newPlayCmd(), newScoreCmd())
	return cmd
}

// setupLogging points the global logger at w. An empty level falls back to
// LOG_LEVEL, then info.
func setupLogging(w io.Writer, level string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// loadEnv reads configuration and the word list. An empty word list is fatal.
// The logger is reconfigured from cfg.LogLevel unless --log-level was given.
func loadEnv(cmd *cobra.Command) (config.Config, *words.List, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.LogLevel
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}
	setupLogging(cmd.ErrOrStderr(), level)

	list := words.Open(cfg.WordsFile, cfg.WordLength)
	if list.Len() == 0 {
		return config.Config{}, nil, errEmptyWordList
	}
	log.Debug().Int("words", list.Len()).Int("length", cfg.WordLength).Msg("word list loaded")
	return cfg, list, nil
}
