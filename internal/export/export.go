// internal/export/export.go
//
// Static site generation.
// Writes the pages a project-pages host serves without a backend:
//   - index.html                      (dashboard, default filters, no favorites)
//   - collections/<slug>/index.html   (one per configured collection)
//   - 404.html
//   - games.json                      (the catalog in popularity order)
//   - sitemap.xml
//
// Output depends only on the catalog, the collections and Options.Now, so two
// builds with the same inputs are byte-identical.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eabrahm-wq/GameDirectory/internal/browse"
	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/site"
)

// Options carries the inputs of a build.
type Options struct {
	Site        *site.Site
	Catalog     *catalog.Catalog
	Collections *collections.Set
	Now         time.Time
}

// Build renders the site into outDir and returns the written paths, relative
// to outDir, in write order.
func Build(ctx context.Context, outDir string, opts Options) ([]string, error) {
	if opts.Site == nil || opts.Catalog == nil || opts.Collections == nil {
		return nil, errors.New("export: site, catalog and collections are required")
	}
	b := &builder{ctx: ctx, out: outDir, opts: opts}

	// The date and hours rendered from opts.Now are initial text only; the
	// page's reset-clock script replaces them with the visitor's local values.
	home := opts.Site.Dashboard(site.DashboardInput{
		Catalog:     opts.Catalog,
		Collections: opts.Collections,
		Criteria:    browse.Defaults(),
		Now:         opts.Now,
	})
	b.page("index.html", site.PageHome, home)

	for _, cfg := range opts.Collections.All() {
		view, err := opts.Site.Collection(cfg, opts.Collections, opts.Catalog.Games())
		if err != nil {
			return b.written, fmt.Errorf("export: collection %s: %w", cfg.Slug, err)
		}
		b.page(filepath.Join("collections", cfg.Slug, "index.html"), site.PageCollection, view)
	}

	b.page("404.html", site.PageNotFound, opts.Site.NotFound("/404.html"))
	b.json("games.json", browse.Sort(opts.Catalog.Games(), browse.ByPopular))
	b.sitemap(opts.Collections.All())

	if b.err != nil {
		return b.written, b.err
	}
	log.Info().Str("out", outDir).Int("files", len(b.written)).Msg("static export finished")
	return b.written, nil
}

// builder accumulates the first error; later steps become no-ops.
type builder struct {
	ctx     context.Context
	out     string
	opts    Options
	written []string
	err     error
}

func (b *builder) write(rel string, data []byte) {
	if b.err != nil {
		return
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
		return
	}
	path := filepath.Join(b.out, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		b.err = fmt.Errorf("export: mkdir: %w", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.err = fmt.Errorf("export: write %s: %w", rel, err)
		return
	}
	log.Debug().Str("file", rel).Int("bytes", len(data)).Msg("wrote")
	b.written = append(b.written, filepath.ToSlash(rel))
}

func (b *builder) page(rel, page string, data any) {
	if b.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := b.opts.Site.Render(&buf, page, data); err != nil {
		b.err = fmt.Errorf("export: %s: %w", rel, err)
		return
	}
	b.write(rel, buf.Bytes())
}

func (b *builder) json(rel string, v any) {
	if b.err != nil {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b.err = fmt.Errorf("export: %s: %w", rel, err)
		return
	}
	b.write(rel, append(data, '\n'))
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod"`
}

func (b *builder) sitemap(cols []collections.Config) {
	if b.err != nil {
		return
	}
	lastmod := b.opts.Now.Format("2006-01-02")
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: b.opts.Site.URL("/"), LastMod: lastmod})
	for _, c := range cols {
		set.URLs = append(set.URLs, sitemapURL{Loc: b.opts.Site.URL(c.Path()), LastMod: lastmod})
	}
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		b.err = fmt.Errorf("export: sitemap: %w", err)
		return
	}
	b.write("sitemap.xml", append([]byte(xml.Header), append(data, '\n')...))
}
