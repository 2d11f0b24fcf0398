// commands.go
//
// gamedir subcommands:
//   - serve        HTTP server (pages + JSON API), graceful shutdown on SIGINT/SIGTERM.
//   - build        static export for project-pages hosting.
//   - games        filtered catalog listing in the terminal.
//   - collections  collection configs, or one collection's games.
//   - favorites    "My Morning Menu" kept in a local SQLite file.
//   - reset        hours until the daily reset, optionally refreshed every minute.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eabrahm-wq/GameDirectory/internal/browse"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/daily"
	"github.com/eabrahm-wq/GameDirectory/internal/export"
	"github.com/eabrahm-wq/GameDirectory/internal/favorites"
	"github.com/eabrahm-wq/GameDirectory/internal/httpserver"
	"github.com/eabrahm-wq/GameDirectory/internal/site"
	"github.com/eabrahm-wq/GameDirectory/internal/store"
)

// signalContext is cancelled on Ctrl-C or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ------------------------------ serve --------------------------------------

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = ":" + a.cfg.Port
			}
			st, err := site.New(a.cfg.SiteURL)
			if err != nil {
				return err
			}
			srv, err := httpserver.New(httpserver.Options{
				Site:         st,
				Catalog:      a.games,
				Collections:  a.topics,
				CookieSecret: a.cfg.CookieKey,
				Secure:       a.cfg.Production(),
				Location:     a.cfg.Location(),
			})
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			log.Info().Str("addr", addr).Str("site", a.cfg.SiteURL).Str("env", a.cfg.Env).Msg("starting gamedir server")
			return srv.Start(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":$PORT\")")
	return cmd
}

// ------------------------------ build --------------------------------------

func (a *app) buildCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the directory as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = a.cfg.OutDir
			}
			st, err := site.New(a.cfg.SiteURL)
			if err != nil {
				return err
			}
			written, err := export.Build(cmd.Context(), out, export.Options{
				Site:        st,
				Catalog:     a.games,
				Collections: a.topics,
				Now:         time.Now().In(a.cfg.Location()),
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("Wrote "+strconv.Itoa(len(written))+" files to "+out))
			for _, p := range written {
				fmt.Fprintln(w, "  "+p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (default $OUT_DIR)")
	return cmd
}

// ------------------------------ games --------------------------------------

func (a *app) gamesCmd() *cobra.Command {
	var (
		q, category, reset, difficulty, bucket, sortBy string
		asJSON                                         bool
	)
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List games matching the filters",
		Long: "List games matching the filters. Values outside the known sets are " +
			"treated as \"all\" (or the popular sort).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			crit := browse.ParseCriteria(url.Values{
				browse.ParamSearch:     {q},
				browse.ParamCategory:   {category},
				browse.ParamReset:      {reset},
				browse.ParamDifficulty: {difficulty},
				browse.ParamTime:       {bucket},
				browse.ParamSort:       {sortBy},
			})
			games := browse.Apply(a.games.Games(), crit)

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, games)
			}
			fmt.Fprintln(w, gameTable(games))
			fmt.Fprintln(w, mutedStyle.Render(strconv.Itoa(len(games))+" games"))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&q, "q", "q", "", "case-insensitive name search")
	f.StringVar(&category, "category", browse.All, "category, e.g. \"Word Games\"")
	f.StringVar(&reset, "reset", browse.All, "Daily or Unlimited")
	f.StringVar(&difficulty, "difficulty", browse.All, "Easy, Med or Hard")
	f.StringVar(&bucket, "time", string(browse.AnyTime), "any, lte3, 4to10 or gt10")
	f.StringVar(&sortBy, "sort", string(browse.ByPopular), "popular, avgTime or difficulty")
	f.BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ---------------------------- collections ----------------------------------

func (a *app) collectionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "collections [slug]",
		Short: "List collections, or the games of one collection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				if asJSON {
					return writeJSON(w, a.topics.All())
				}
				t := newTable("SLUG", "TITLE", "GAMES")
				for _, c := range a.topics.All() {
					t.Row(c.Slug, c.Title, strconv.Itoa(len(collections.Match(c, a.games.Games()))))
				}
				fmt.Fprintln(w, t.Render())
				return nil
			}

			cfg, err := a.topics.Lookup(args[0])
			if err != nil {
				return err
			}
			games := collections.Match(cfg, a.games.Games())
			if asJSON {
				return writeJSON(w, games)
			}
			fmt.Fprintln(w, titleStyle.Render(cfg.Title))
			fmt.Fprintln(w, mutedStyle.Render(cfg.Intro))
			fmt.Fprintln(w, gameTable(games))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ----------------------------- favorites -----------------------------------

// openFavorites opens the SQLite-backed Favorites Store. The returned func
// closes the database.
func (a *app) openFavorites() (*favorites.Store, func(), error) {
	db, err := store.OpenSQLite(a.cfg.FavoriteDB)
	if err != nil {
		return nil, nil, err
	}
	return favorites.NewStore(db), func() { _ = db.Close() }, nil
}

func (a *app) favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage My Morning Menu (stored in $FAVORITES_DB)",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show favorite games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fav, done, err := a.openFavorites()
			if err != nil {
				return err
			}
			defer done()
			games := browse.MorningMenu(a.games.Games(), fav.Load(cmd.Context()))
			w := cmd.OutOrStdout()
			if len(games) == 0 {
				fmt.Fprintln(w, mutedStyle.Render("No favorites yet. Add one with: gamedir favorites toggle <id>"))
				return nil
			}
			fmt.Fprintln(w, titleStyle.Render("My Morning Menu"))
			fmt.Fprintln(w, gameTable(games))
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Add or remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.games.Lookup(args[0])
			if err != nil {
				return err
			}
			fav, done, err := a.openFavorites()
			if err != nil {
				return err
			}
			defer done()
			next := fav.Toggle(cmd.Context(), g.ID)
			if next.Contains(g.ID) {
				fmt.Fprintln(cmd.OutOrStdout(), "★ Added "+g.Name)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "☆ Removed "+g.Name)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fav, done, err := a.openFavorites()
			if err != nil {
				return err
			}
			defer done()
			fav.Save(cmd.Context(), favorites.Set{})
			fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared")
			return nil
		},
	}

	cmd.AddCommand(listCmd, toggleCmd, clearCmd)
	return cmd
}

// ------------------------------ reset --------------------------------------

func (a *app) resetCmd() *cobra.Command {
	var (
		watch bool
		tz    string
	)
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Show hours until the next daily reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc := daily.Location(tz, a.cfg.Location())
			now := func() time.Time { return time.Now().In(loc) }
			w := cmd.OutOrStdout()
			show := func(hours int) {
				fmt.Fprintf(w, "Daily resets in ~%dh (%s, %s)\n", hours, daily.DateKey(now()), loc)
			}
			if !watch {
				show(daily.HoursUntilMidnight(now()))
				return nil
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			daily.Watch(ctx, daily.DefaultInterval, now, show)
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "recompute once a minute until interrupted")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone (default $TIMEZONE)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
