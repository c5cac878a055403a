package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// Known ids served by the fake server. Anything else 404s.
const (
	SleeperLeagueID = "924039165950484480"
	SleeperDraftID  = "924039166538645504"
)

type FakeSleeperServer struct {
	s *httptest.Server

	mu            sync.Mutex
	rateLimitOnce bool
}

func NewFakeSleeperServer() *FakeSleeperServer {
	f := &FakeSleeperServer{}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", f.nflPlayersHandler)
		r.Get("/state/nfl", func(w http.ResponseWriter, r *http.Request) {
			serveFile(w, "state.json")
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", f.leagueHandler)
			r.Get("/rosters", f.leagueFileHandler("rosters.json"))
			r.Get("/users", f.leagueFileHandler("users.json"))
			r.Get("/matchups/{week}", f.matchupsHandler)
			r.Get("/drafts", f.leagueFileHandler("drafts.json"))
		})

		r.Get("/draft/{draftID}/picks", f.draftPicksHandler)
		r.Get("/stats/nfl/regular/{season}", f.statsHandler)
		r.Get("/projections/nfl/regular/{season}/{week}", f.projectionsHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

// RateLimitNextRequest makes the server answer the next request with a 429
// before serving normally again, to exercise the client's retry.
func (f *FakeSleeperServer) RateLimitNextRequest() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateLimitOnce = true
}

func (f *FakeSleeperServer) consumeRateLimit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rateLimitOnce {
		f.rateLimitOnce = false
		return true
	}
	return false
}

func (f *FakeSleeperServer) nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	if f.consumeRateLimit() {
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}
	serveFile(w, "players.json")
}

func (f *FakeSleeperServer) leagueHandler(w http.ResponseWriter, r *http.Request) {
	if f.consumeRateLimit() {
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}
	if chi.URLParam(r, "leagueID") != SleeperLeagueID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "league.json")
}

func (f *FakeSleeperServer) leagueFileHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.consumeRateLimit() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		if chi.URLParam(r, "leagueID") != SleeperLeagueID {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		serveFile(w, name)
	}
}

func (f *FakeSleeperServer) matchupsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != SleeperLeagueID {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	week := chi.URLParam(r, "week")
	switch week {
	case "1", "2":
		serveFile(w, fmt.Sprintf("matchups_%s.json", week))
	default:
		// Unplayed weeks return an empty list, matching the real API.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func (f *FakeSleeperServer) draftPicksHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "draftID") != SleeperDraftID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "picks.json")
}

func (f *FakeSleeperServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "season") != "2024" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "stats.json")
}

func (f *FakeSleeperServer) projectionsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "season") != "2024" || chi.URLParam(r, "week") != "1" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "projections.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
