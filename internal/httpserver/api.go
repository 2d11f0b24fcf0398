package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eabrahm-wq/GameDirectory/internal/browse"
	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/daily"
)

// mountAPI registers the read-only JSON endpoints.
func (s *Server) mountAPI(r chi.Router) {
	r.Get("/games", s.handleAPIGames)
	r.Get("/collections", s.handleAPICollections)
	r.Get("/collections/{slug}", s.handleAPICollection)
	r.Get("/favorites", s.handleAPIFavorites)
	r.Get("/reset", s.handleAPIReset)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
}

type gamesRes struct {
	Criteria browse.Criteria `json:"criteria"`
	Count    int             `json:"count"`
	Games    []catalog.Game  `json:"games"`
}

func (s *Server) handleAPIGames(w http.ResponseWriter, r *http.Request) {
	crit := browse.ParseCriteria(r.URL.Query())
	games := browse.Apply(s.catalog.Games(), crit)
	writeJSON(w, http.StatusOK, gamesRes{Criteria: crit, Count: len(games), Games: games})
}

func (s *Server) handleAPICollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cols.All())
}

type collectionRes struct {
	Collection collections.Config `json:"collection"`
	Games      []catalog.Game     `json:"games"`
}

func (s *Server) handleAPICollection(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.cols.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, collectionRes{Collection: cfg, Games: collections.Match(cfg, s.catalog.Games())})
}

type favoritesRes struct {
	IDs   []string       `json:"ids"`
	Games []catalog.Game `json:"games"`
}

func (s *Server) handleAPIFavorites(w http.ResponseWriter, r *http.Request) {
	set := s.favStore(w, r).Load(r.Context())
	writeJSON(w, http.StatusOK, favoritesRes{IDs: set, Games: browse.MorningMenu(s.catalog.Games(), set)})
}

type resetRes struct {
	Hours    int    `json:"hours"`
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
}

func (s *Server) handleAPIReset(w http.ResponseWriter, r *http.Request) {
	now := s.clock(r)
	writeJSON(w, http.StatusOK, resetRes{
		Hours:    daily.HoursUntilMidnight(now),
		Date:     daily.DateKey(now),
		Timezone: now.Location().String(),
	})
}
