// internal/game/engine.go
//
// Turn tracker for a single game.
// Responsibilities:
//   - Hold the secret, the rules and the scored guesses so far.
//   - Feed each submitted guess to the Evaluator.
//   - Track state transitions: playing → won/lost.
//
// Rejected guesses (wrong length, unknown word) are reported but do not use
// up a turn. Game is not safe for concurrent mutation; callers serialise
// Submit (see store.Update).

package game

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game session.
type Game struct {
	ID      string   // uuid
	Secret  string   // lowercase
	Guesses []string // accepted guesses, lowercased
	Results []Result // one per accepted guess
	State   State

	eval *Evaluator
}

// New constructs a game for secret, scored by eval.
func New(secret string, eval *Evaluator) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Secret:  strings.ToLower(secret),
		Guesses: []string{},
		Results: []Result{},
		State:   StatePlaying,
		eval:    eval,
	}
}

// Rules returns the rules the game is played under.
func (g *Game) Rules() Rules { return g.eval.Rules() }

// Submit evaluates guess and advances the game.
//
// Returns ErrFinished once the game is over. For rejected guesses the Result
// carries the rejection outcome and the error is ErrWrongLength or
// ErrInvalidWord; the turn is not consumed.
func (g *Game) Submit(guess string) (Result, error) {
	if g.Finished() {
		return Result{}, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))

	res := g.eval.Evaluate(g.Secret, guess)
	if err := res.Err(); err != nil {
		return res, err
	}

	g.Guesses = append(g.Guesses, guess)
	g.Results = append(g.Results, res)

	switch {
	case res.Outcome == OutcomeCorrect:
		g.State = StateWon
	case len(g.Results) >= g.Rules().Guesses:
		g.State = StateLost
	}
	return res, nil
}

// Row is the zero-based index of the next guess.
func (g *Game) Row() int { return len(g.Results) }

// Remaining is the number of guesses left in the budget.
func (g *Game) Remaining() int {
	if g.Finished() {
		return 0
	}
	return g.Rules().Guesses - len(g.Results)
}

// Finished reports whether the game has been won or lost.
func (g *Game) Finished() bool { return g.State != StatePlaying }

// Won reports whether the secret was guessed.
func (g *Game) Won() bool { return g.State == StateWon }

// Clone returns a copy that can be read while g keeps changing.
func (g *Game) Clone() *Game {
	c := *g
	c.Guesses = slices.Clone(g.Guesses)
	c.Results = slices.Clone(g.Results)
	return &c
}

// Reveal returns the secret regardless of state.
func (g *Game) Reveal() string { return g.Secret }
