// internal/cli/play.go
//
// `wordle play`: an interactive game on stdin/stdout.
// Responsibilities:
//   - Choose the secret (--answer, --daily, or random).
//   - Read guesses line by line and print a square row per scored guess.
//   - Print the result and the share grid when the game ends.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
)

// revealCommand prints the secret mid-game.
const revealCommand = ":reveal"

func newPlayCmd() *cobra.Command {
	var (
		answer   string
		useDaily bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, list, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			secret := strings.ToLower(strings.TrimSpace(answer))
			switch {
			case secret != "":
				if utf8.RuneCountInString(secret) != cfg.WordLength {
					return fmt.Errorf("answer must have %d letters", cfg.WordLength)
				}
			case useDaily:
				secret = daily.Pick(list, time.Now(), cfg.DailySalt)
			default:
				secret = list.RandomElement()
			}

			g := game.New(secret, game.NewEvaluator(cfg.Rules(), list))
			log.Debug().Str("gameId", g.ID).Str("answer", g.Secret).Msg("game started")
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().StringVar(&answer, "answer", "", "fix the secret word")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play today's word")
	return cmd
}

// play drives g from lines read on in until the game ends or input runs out.
func play(in io.Reader, out io.Writer, g *game.Game) error {
	rules := g.Rules()
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d tries.\n", rules.Letters, rules.Guesses)

	sc := bufio.NewScanner(in)
	for !g.Finished() {
		fmt.Fprintf(out, "%d/%d> ", g.Row()+1, rules.Guesses)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case revealCommand:
			fmt.Fprintln(out, strings.ToUpper(g.Reveal()))
			continue
		}

		res, err := g.Submit(line)
		switch {
		case errors.Is(err, game.ErrWrongLength):
			fmt.Fprintf(out, "Please enter all %d letters.\n", rules.Letters)
		case errors.Is(err, game.ErrInvalidWord):
			fmt.Fprintf(out, "%s is not in our dictionary.\n", capitalize(line))
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "%s  %s\n", strings.ToUpper(line), game.ShareGrid([]game.Result{res}))
		}
	}

	if g.Won() {
		fmt.Fprintln(out, "You Win!")
	} else {
		fmt.Fprintf(out, "You Lose! The word was %s.\n", strings.ToUpper(g.Reveal()))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, g.Share())
	return nil
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[n:]
}
