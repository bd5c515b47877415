// internal/httpserver/routes_daily.go
//
// HTTP route for the daily word.
//   - POST /daily/new → start a game whose answer is today's word
//
// Everyone gets the same word on the same UTC date; selection is a
// deterministic HMAC of the date with DAILY_SALT. Guesses go through the
// regular POST /game/guess endpoint.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/internal/daily"
)

// dailyRes is returned by /daily/new.
type dailyRes struct {
	GameID  string `json:"gameId"`
	Date    string `json:"date"`
	Letters int    `json:"letters"`
	Guesses int    `json:"guesses"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Post("/daily/new", s.handleDailyNew)
}

// handleDailyNew starts a game for today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	answer := daily.Pick(s.words, now, s.cfg.DailySalt)
	if answer == "" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_words"})
		return
	}
	g, err := s.startGame(r.Context(), answer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
		return
	}
	writeJSON(w, http.StatusOK, dailyRes{
		GameID:  g.ID,
		Date:    daily.DateKey(now),
		Letters: s.cfg.WordLength,
		Guesses: s.cfg.MaxGuesses,
	})
}
