// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Outcome: overall result of one evaluation.
//   - Result:  verdicts paired with an outcome.
//   - Rules:   word length and guess budget, passed in explicitly.

package game

import "errors"

// Verdict represents the evaluation result for a single letter in a guess.
//   - "correct": letter is in the secret at this position.
//   - "present": letter is in the secret at another, unconsumed position.
//   - "absent":  no unconsumed occurrence of the letter remains.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
)

// Outcome is the overall classification of an evaluated guess.
type Outcome string

const (
	OutcomeInvalidWord Outcome = "invalid_word"
	OutcomeWrongLength Outcome = "wrong_length"
	OutcomeCorrect     Outcome = "correct"
	OutcomeIncorrect   Outcome = "incorrect"
)

// Sentinel errors for rejected guesses and finished games.
var (
	ErrWrongLength = errors.New("wrong number of letters")
	ErrInvalidWord = errors.New("not in word list")
	ErrFinished    = errors.New("game finished")
)

// Result is the outcome of one evaluation. Verdicts is nil for rejected
// guesses and otherwise has one entry per letter of the guess.
type Result struct {
	Verdicts []Verdict `json:"verdicts"`
	Outcome  Outcome   `json:"outcome"`
}

// Scored reports whether the guess passed validation and was scored.
func (r Result) Scored() bool {
	return r.Outcome == OutcomeCorrect || r.Outcome == OutcomeIncorrect
}

// Err maps rejection outcomes to their sentinel errors.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeWrongLength:
		return ErrWrongLength
	case OutcomeInvalidWord:
		return ErrInvalidWord
	}
	return nil
}

// Rules configures the word length and the number of guesses per game.
type Rules struct {
	Letters int // required length of secret and guesses
	Guesses int // turn budget per game
}

// DefaultRules returns the classic 5 letters, 6 guesses.
func DefaultRules() Rules {
	return Rules{Letters: 5, Guesses: 6}
}
