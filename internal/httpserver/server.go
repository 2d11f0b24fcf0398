// internal/httpserver/server.go
//
// HTTP server wiring for the directory.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts, access logs).
//   - Pages: "/", "/collections/{slug}", POST "/favorites/{id}/toggle".
//   - Read-only JSON API under /api, plus "/health".
//   - Graceful shutdown when the serve context is cancelled.
//
// Notes:
//   - Page routes are mounted under the path of SITE_URL so links rendered by
//     the site package resolve both live and on a project-pages host.
//   - Favorites live in a signed cookie owned by the browser (see cookie.go).

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/site"
)

// Options configures a Server. Site, Catalog and Collections are required.
type Options struct {
	Site        *site.Site
	Catalog     *catalog.Catalog
	Collections *collections.Set

	CookieSecret string
	Secure       bool           // mark cookies Secure (production)
	Location     *time.Location // default reset-clock zone; nil = time.Local
	Now          func() time.Time
}

// Server bundles the router and the read-only directory data.
type Server struct {
	r       *chi.Mux
	site    *site.Site
	catalog *catalog.Catalog
	cols    *collections.Set
	cookies *cookieCodec
	loc     *time.Location
	now     func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) (*Server, error) {
	if opts.Site == nil || opts.Catalog == nil || opts.Collections == nil {
		return nil, errors.New("httpserver: site, catalog and collections are required")
	}
	codec, err := newCookieCodec(opts.CookieSecret, opts.Secure)
	if err != nil {
		return nil, err
	}
	s := &Server{
		r:       chi.NewRouter(),
		site:    opts.Site,
		catalog: opts.Catalog,
		cols:    opts.Collections,
		cookies: codec,
		loc:     opts.Location,
		now:     opts.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(requestIDField)                  // tag logs with the chi request id
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.catalog.Len()})
	})

	app := chi.NewRouter()
	app.Get("/", s.handleHome)
	app.Get("/collections/{slug}", s.handleCollection)
	app.Post("/favorites/{id}/toggle", s.handleToggle)
	app.Route("/api", s.mountAPI)
	app.NotFound(s.handleNotFound)

	if base := s.site.Base(); base != "" {
		s.r.Mount(base, app)
		s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base+"/", http.StatusFound)
		})
	} else {
		s.r.Mount("/", app)
	}
	s.r.NotFound(s.handleNotFound)

	return s, nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// requestIDField copies chi's request id onto the request logger.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}
