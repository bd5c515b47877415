// internal/cli/serve.go
//
// `wordle serve`: run the HTTP game server until SIGINT/SIGTERM.

package cli

import (
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
)

var errEmptyWordList = errors.New("word list is empty")

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, list, err := loadEnv(cmd)
			if err != nil {
				log.Error().Err(err).Msg("failed to load configuration")
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := httpserver.New(cfg, list, store.NewMemoryStore())
			log.Info().Str("port", cfg.Port).Int("words", list.Len()).Msg("starting server")
			if err := srv.Start(ctx, ":"+cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			return nil
		},
	}
}
