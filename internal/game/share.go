// internal/game/share.go
//
// Spoiler-free summary of a game.
// Responsibilities:
//   - Render each scored guess as a row of coloured squares.
//   - Prefix the grid with a "Wordle n/m" header (X/m for a loss).

package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	greenSquare  = "🟩"
	yellowSquare = "🟨"
	blackSquare  = "⬛"
)

// Emoji returns the share-grid square for a verdict.
func (v Verdict) Emoji() string {
	switch v {
	case VerdictCorrect:
		return greenSquare
	case VerdictPresent:
		return yellowSquare
	default:
		return blackSquare
	}
}

// ShareGrid renders scored results as rows of coloured squares, one row per
// guess. Rejected results are skipped.
func ShareGrid(results []Result) string {
	rows := lo.FilterMap(results, func(r Result, _ int) (string, bool) {
		if !r.Scored() {
			return "", false
		}
		return strings.Join(lo.Map(r.Verdicts, func(v Verdict, _ int) string { return v.Emoji() }), ""), true
	})
	return strings.Join(rows, "\n")
}

// Share returns the grid with a "Wordle n/m" header; n is X for a loss.
func (g *Game) Share() string {
	tries := "X"
	if g.Won() {
		tries = fmt.Sprint(len(g.Results))
	}
	header := fmt.Sprintf("Wordle %s/%d", tries, g.Rules().Guesses)
	if len(g.Results) == 0 {
		return header
	}
	return header + "\n\n" + ShareGrid(g.Results)
}
