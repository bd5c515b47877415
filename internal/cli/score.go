// internal/cli/score.go
//
// `wordle score SECRET GUESS`: evaluate one guess and print the verdicts.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/game"
)

func newScoreCmd() *cobra.Command {
	var noDict bool

	cmd := &cobra.Command{
		Use:   "score SECRET GUESS",
		Short: "Score one guess against a secret word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, list, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			var dict game.Dictionary = list
			if noDict {
				dict = nil
			}

			res := game.NewEvaluator(cfg.Rules(), dict).Evaluate(args[0], args[1])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Outcome)
			if !res.Scored() {
				return nil
			}
			guess := []rune(strings.ToUpper(args[1]))
			for i, v := range res.Verdicts {
				fmt.Fprintf(out, "%c %s\n", guess[i], v)
			}
			fmt.Fprintln(out, game.ShareGrid([]game.Result{res}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDict, "no-dict", false, "skip the dictionary check")
	return cmd
}
