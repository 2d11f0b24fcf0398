// internal/site/site.go
//
// Page rendering for the directory.
// Responsibilities:
//   - Parse the embedded html/template pages once.
//   - Build the view models for the dashboard, collection, and not-found pages.
//   - SEO metadata: title template, description, canonical URL.
//
// Both the HTTP server and the static exporter render through a Site, so a
// page looks the same whether it is served live or pre-generated.

package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/eabrahm-wq/GameDirectory/assets"
	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/daily"
)

// Name is the site-wide title suffix.
const Name = "Daily Mind Games Directory"

// Description is the default meta description.
const Description = "A curated daily games directory for word, geography, logic, strategy, trivia, visual, and math puzzle players."

// Page names accepted by Render.
const (
	PageHome       = "home"
	PageCollection = "collection"
	PageNotFound   = "notfound"
)

// Meta is the per-page SEO block.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Base        string // path prefix for internal links, no trailing slash
}

// FullTitle applies the "%s | Daily Mind Games Directory" template.
func (m Meta) FullTitle() string {
	if m.Title == "" || m.Title == Name {
		return Name
	}
	return m.Title + " | " + Name
}

// Site renders pages for one public base URL.
type Site struct {
	origin string // scheme://host
	base   string // URL path prefix, e.g. /GameDirectory
	pages  map[string]*template.Template
}

var funcs = template.FuncMap{
	"isDaily": func(g catalog.Game) bool { return g.ResetType == catalog.Daily },
	// resetTickMs is the browser-side refresh period of the reset clock.
	"resetTickMs": func() int64 { return daily.DefaultInterval.Milliseconds() },
}

// New parses the templates for a site published at siteURL.
func New(siteURL string) (*Site, error) {
	u, err := url.Parse(strings.TrimRight(siteURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("site: invalid site url %q", siteURL)
	}
	s := &Site{
		origin: u.Scheme + "://" + u.Host,
		base:   strings.TrimRight(u.Path, "/"),
		pages:  make(map[string]*template.Template, 3),
	}
	for _, page := range []string{PageHome, PageCollection, PageNotFound} {
		t, err := template.New(page).Funcs(funcs).ParseFS(assets.Templates(), "layout.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", page, err)
		}
		s.pages[page] = t
	}
	return s, nil
}

// Base returns the path prefix internal links are rooted at.
func (s *Site) Base() string { return s.base }

// URL returns the absolute URL of a site path such as "/collections/x".
func (s *Site) URL(path string) string {
	if path == "" {
		path = "/"
	}
	return s.origin + s.base + path
}

func (s *Site) meta(title, description, path string) Meta {
	if description == "" {
		description = Description
	}
	return Meta{Title: title, Description: description, Canonical: s.URL(path), Base: s.base}
}

// Render executes page with data into w. Output is buffered so a template
// error never leaves a half-written page.
func (s *Site) Render(w io.Writer, page string, data any) error {
	t, ok := s.pages[page]
	if !ok {
		return fmt.Errorf("site: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("site: render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
