// internal/daily/daily.go
//
// Daily word selection.
// Responsibilities:
//   - Key each day by its UTC calendar date.
//   - Map that key onto a word list index with a salted HMAC, so every
//     client picks the same word without shared state.
//
// Changing DAILY_SALT reshuffles the whole calendar.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Source is the subset of a word list needed to pick a daily word.
type Source interface {
	Len() int
	At(i int) string
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps the UTC day of date into [0, n). It returns 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	// Uint64 only reads the leading 8 bytes of the digest.
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Pick returns the word for date, or "" for an empty source.
func Pick(src Source, date time.Time, salt string) string {
	return src.At(WordIndex(date, salt, src.Len()))
}
