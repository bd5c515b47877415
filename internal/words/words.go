// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Parse a newline-delimited word source into an immutable List.
//   - Load from a file or fall back to the embedded default list.
//   - Answer membership queries and pick random or indexed words.
//
// Normalisation rules:
//   • Lines are trimmed and lowercased; empty lines are dropped.
//   • Entries whose length differs from the configured word length are dropped.
//   • Duplicates are removed, keeping first-seen order.
//
// Loading never fails: an unreadable source yields an empty List and a logged
// warning. Callers decide whether an empty List is fatal.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/assets"
)

// List is a read-only set of lowercase words of a single length.
// It is safe for concurrent use once constructed.
type List struct {
	length int
	words  []string            // first-seen order, used for random/indexed picks
	set    map[string]struct{} // membership
}

// Parse builds a List from newline-delimited text.
func Parse(text string, length int) *List {
	return build(strings.Split(text, "\n"), length)
}

// Load reads one word per line from r. Lines have no length limit; overlong
// ones are dropped like any other wrong-length entry.
// A read error produces an empty List rather than an error.
func Load(r io.Reader, length int) *List {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("words: read failed, using empty list")
			return build(nil, length)
		}
	}
	return build(lines, length)
}

// LoadFile loads a word list from path. Missing or unreadable files yield an
// empty List.
func LoadFile(path string, length int) *List {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("words: open failed, using empty list")
		return build(nil, length)
	}
	defer f.Close()
	return Load(f, length)
}

// Embedded returns the bundled default list.
func Embedded(length int) *List {
	return Parse(assets.Words(), length)
}

// Open loads path, or the embedded list when path is empty.
func Open(path string, length int) *List {
	if path == "" {
		return Embedded(length)
	}
	return LoadFile(path, length)
}

func build(lines []string, length int) *List {
	normalized := lo.Map(lines, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	kept := lo.Filter(normalized, func(w string, _ int) bool {
		return w != "" && utf8.RuneCountInString(w) == length
	})
	if dropped := len(lo.Compact(normalized)) - len(kept); dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("length", length).Msg("words: skipped entries of wrong length")
	}
	uniq := lo.Uniq(kept)
	return &List{
		length: length,
		words:  uniq,
		set:    lo.SliceToMap(uniq, func(w string) (string, struct{}) { return w, struct{}{} }),
	}
}

// Contains reports whether word is in the list, ignoring case.
func (l *List) Contains(word string) bool {
	_, ok := l.set[strings.ToLower(word)]
	return ok
}

// RandomElement returns a uniformly random word, or "" if the list is empty.
func (l *List) RandomElement() string {
	if len(l.words) == 0 {
		return ""
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		log.Warn().Err(err).Msg("words: crypto/rand failed, using first word")
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// At returns the i-th word in load order, or "" if i is out of range.
func (l *List) At(i int) string {
	if i < 0 || i >= len(l.words) {
		return ""
	}
	return l.words[i]
}

// Len is the number of distinct words.
func (l *List) Len() int { return len(l.words) }

// Length is the configured word length every member satisfies.
func (l *List) Length() int { return l.length }

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}
