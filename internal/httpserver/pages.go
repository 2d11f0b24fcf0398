package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/eabrahm-wq/GameDirectory/internal/browse"
	"github.com/eabrahm-wq/GameDirectory/internal/daily"
	"github.com/eabrahm-wq/GameDirectory/internal/favorites"
	"github.com/eabrahm-wq/GameDirectory/internal/site"
)

// clock returns the current time in the zone selected by ?tz=, falling back
// to the server default.
func (s *Server) clock(r *http.Request) time.Time {
	return s.now().In(daily.Location(r.URL.Query().Get("tz"), s.loc))
}

func (s *Server) favStore(w http.ResponseWriter, r *http.Request) *favorites.Store {
	return favorites.NewStore(s.cookieStore(w, r))
}

// handleHome renders the dashboard for the query-string filters.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	view := s.site.Dashboard(site.DashboardInput{
		Catalog:     s.catalog,
		Collections: s.cols,
		Criteria:    browse.ParseCriteria(r.URL.Query()),
		Favorites:   s.favStore(w, r).Load(r.Context()),
		Now:         s.clock(r),
		ToggleAction: func(id string) string {
			return s.site.Base() + "/favorites/" + url.PathEscape(id) + "/toggle"
		},
		Return: r.URL.RequestURI(),
	})
	s.render(w, r, http.StatusOK, site.PageHome, view)
}

// handleCollection renders one collection page. The slug is resolved before
// any matching happens; unknown slugs get the 404 page.
func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.cols.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	view, err := s.site.Collection(cfg, s.cols, s.catalog.Games())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("slug", cfg.Slug).Msg("build collection view")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, http.StatusOK, site.PageCollection, view)
}

// handleToggle flips one favorite in the cookie and redirects back.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.catalog.Get(id); !ok {
		s.handleNotFound(w, r)
		return
	}
	next := s.favStore(w, r).Toggle(r.Context(), id)
	hlog.FromRequest(r).Debug().Str("game", id).Int("favorites", len(next)).Msg("favorite toggled")
	http.Redirect(w, r, s.returnTo(r), http.StatusSeeOther)
}

// returnTo picks the redirect target after a toggle. Only same-site paths
// under the site base are honoured.
func (s *Server) returnTo(r *http.Request) string {
	home := s.site.Base() + "/"
	ret := r.FormValue("return")
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") || strings.Contains(ret, "\\") {
		return home
	}
	if base := s.site.Base(); base != "" && ret != base && !strings.HasPrefix(ret, base+"/") && !strings.HasPrefix(ret, base+"?") {
		return home
	}
	return ret
}

// handleNotFound serves the HTML 404 page, or a JSON error under /api.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, s.site.Base()+"/api/") {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	s.render(w, r, http.StatusNotFound, site.PageNotFound, s.site.NotFound(r.URL.Path))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf strings.Builder
	if err := s.site.Render(&buf, page, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("page", page).Msg("render failed")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the {"error":"code"} envelope.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
