// internal/game/evaluate.go
//
// Guess evaluation: validation plus the duplicate-safe two-pass scorer.
//
// Order of checks:
//   1. Length:     guess must match the secret and the configured length.
//   2. Dictionary: lowercased guess must be a known word.
//   3. Scoring:    exact matches first, then left-to-right loose matches
//                  against secret positions not yet consumed.
//
// Evaluation is pure; an Evaluator can be shared across goroutines as long as
// its Dictionary is read-only.

package game

import (
	"strings"
	"unicode/utf8"
)

// Dictionary answers membership queries for guesses.
type Dictionary interface {
	Contains(word string) bool
}

// Evaluator scores guesses under a fixed set of rules.
type Evaluator struct {
	rules Rules
	dict  Dictionary
}

// NewEvaluator binds rules and a dictionary. A nil dictionary accepts every
// word of the right length.
func NewEvaluator(rules Rules, dict Dictionary) *Evaluator {
	return &Evaluator{rules: rules, dict: dict}
}

// Rules returns the rules the evaluator was built with.
func (e *Evaluator) Rules() Rules { return e.rules }

// Evaluate scores guess against secret.
func (e *Evaluator) Evaluate(secret, guess string) Result {
	secret = strings.ToLower(secret)
	guess = strings.ToLower(guess)

	n := utf8.RuneCountInString(guess)
	if n != utf8.RuneCountInString(secret) || (e.rules.Letters > 0 && n != e.rules.Letters) {
		return Result{Outcome: OutcomeWrongLength}
	}
	if e.dict != nil && !e.dict.Contains(guess) {
		return Result{Outcome: OutcomeInvalidWord}
	}

	verdicts := Score(secret, guess)
	if allCorrect(verdicts) {
		return Result{Verdicts: verdicts, Outcome: OutcomeCorrect}
	}
	return Result{Verdicts: verdicts, Outcome: OutcomeIncorrect}
}

// Evaluate scores guess against secret using the secret's length as the
// configured word length.
func Evaluate(secret, guess string, dict Dictionary) Result {
	rules := DefaultRules()
	rules.Letters = utf8.RuneCountInString(secret)
	return NewEvaluator(rules, dict).Evaluate(secret, guess)
}

// Score runs the two-pass scorer on equal-length, already-lowercased input.
//
// Pass 1 marks exact matches and consumes those secret positions before any
// loose matching, so a later loose match can never steal an exact one.
// Pass 2 gives each remaining guess letter the first unconsumed occurrence in
// the secret, scanning left to right; with more copies guessed than remain,
// the leftmost guessed copies win and the rest are absent.
func Score(secret, guess string) []Verdict {
	s := []rune(secret)
	g := []rune(guess)
	out := make([]Verdict, len(g))
	consumed := make([]bool, len(s))

	for i := range g {
		if i < len(s) && g[i] == s[i] {
			out[i] = VerdictCorrect
			consumed[i] = true
		}
	}

	for i := range g {
		if out[i] == VerdictCorrect {
			continue
		}
		out[i] = VerdictAbsent
		for j := range s {
			if !consumed[j] && s[j] == g[i] {
				out[i] = VerdictPresent
				consumed[j] = true
				break
			}
		}
	}
	return out
}

func allCorrect(vs []Verdict) bool {
	for _, v := range vs {
		if v != VerdictCorrect {
			return false
		}
	}
	return len(vs) > 0
}
