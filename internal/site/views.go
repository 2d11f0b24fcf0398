package site

import (
	"html/template"
	"strings"
	"time"

	"github.com/eabrahm-wq/GameDirectory/internal/browse"
	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/daily"
	"github.com/eabrahm-wq/GameDirectory/internal/favorites"
)

// Option is a labelled <option> value.
type Option struct {
	Value string
	Label string
}

// FilterOptions feeds the dashboard's <select> controls.
type FilterOptions struct {
	Categories   []catalog.Category
	ResetTypes   []catalog.ResetType
	Difficulties []catalog.Difficulty
	TimeBuckets  []Option
	SortKeys     []Option
}

var (
	timeBucketOptions = []Option{
		{string(browse.AnyTime), "Any"},
		{string(browse.Quick), "≤3 min"},
		{string(browse.Medium), "4-10 min"},
		{string(browse.Long), "10+ min"},
	}
	sortKeyOptions = []Option{
		{string(browse.ByPopular), "Popular"},
		{string(browse.ByAvgTime), "Avg Time"},
		{string(browse.ByDifficulty), "Difficulty"},
	}
)

// Card is one game tile.
type Card struct {
	Game       catalog.Game
	Favorite   bool
	ResetHours int
	Toggle     string // form action; empty hides the star
	Return     string // where the toggle redirects back to
}

// Section is a titled grid of cards.
type Section struct {
	Slug  string
	Title string
	Cards []Card
}

// HomeView is the dashboard model.
type HomeView struct {
	Meta        Meta
	Today       string
	ResetHours  int
	Count       int
	Criteria    browse.Criteria
	Options     FilterOptions
	MorningMenu []catalog.Game
	Essentials  *Section // nil when the filters exclude every essential
	Trending    []catalog.TrendingGame
	Sections    []Section // non-empty categories, in catalog order
	Collections []collections.Config
}

// DashboardInput is everything the dashboard derives from.
type DashboardInput struct {
	Catalog     *catalog.Catalog
	Collections *collections.Set
	Criteria    browse.Criteria
	Favorites   favorites.Set
	Now         time.Time

	// ToggleAction returns the form action toggling a favorite. Nil means
	// favorites are read-only (static export).
	ToggleAction func(id string) string
	Return       string
}

// Dashboard builds the home page model. It is a pure derivation of in.
func (s *Site) Dashboard(in DashboardInput) HomeView {
	games := in.Catalog.Games()
	filtered := browse.Apply(games, in.Criteria)
	hours := daily.HoursUntilMidnight(in.Now)

	card := func(g catalog.Game) Card {
		c := Card{Game: g, Favorite: in.Favorites.Contains(g.ID), ResetHours: hours, Return: in.Return}
		if in.ToggleAction != nil {
			c.Toggle = in.ToggleAction(g.ID)
		}
		return c
	}
	cards := func(gs []catalog.Game) []Card {
		out := make([]Card, len(gs))
		for i, g := range gs {
			out[i] = card(g)
		}
		return out
	}

	var essentials *Section
	if ess := browse.WithIDs(filtered, in.Catalog.EssentialIDs()); len(ess) > 0 {
		essentials = &Section{Slug: "essentials", Title: "Essentials", Cards: cards(ess)}
	}
	var sections []Section
	for _, cat := range in.Catalog.CategoryOrder() {
		if gs := browse.InCategory(filtered, cat); len(gs) > 0 {
			sections = append(sections, Section{Slug: slugify(string(cat)), Title: string(cat), Cards: cards(gs)})
		}
	}

	var cols []collections.Config
	if in.Collections != nil {
		cols = in.Collections.All()
	}

	return HomeView{
		Meta:       s.meta(Name, Description, "/"),
		Today:      in.Now.Format("Monday, January 2, 2006"),
		ResetHours: hours,
		Count:      len(filtered),
		Criteria:   in.Criteria,
		Options: FilterOptions{
			Categories:   in.Catalog.CategoryOrder(),
			ResetTypes:   catalog.ResetTypes,
			Difficulties: catalog.Difficulties,
			TimeBuckets:  timeBucketOptions,
			SortKeys:     sortKeyOptions,
		},
		MorningMenu: browse.MorningMenu(games, in.Favorites),
		Essentials:  essentials,
		Trending:    in.Catalog.Trending(),
		Sections:    sections,
		Collections: cols,
	}
}

// CollectionView is the collection page model.
type CollectionView struct {
	Meta       Meta
	Collection collections.Config
	Games      []catalog.Game
	Related    []collections.Config
	FAQJSON    template.JS
}

// Collection builds the page model for cfg. Callers resolve the slug first.
func (s *Site) Collection(cfg collections.Config, set *collections.Set, games []catalog.Game) (CollectionView, error) {
	ld, err := collections.FAQJSON(cfg)
	if err != nil {
		return CollectionView{}, err
	}
	v := CollectionView{
		Meta:       s.meta(cfg.Title, cfg.Description, cfg.Path()),
		Collection: cfg,
		Games:      collections.Match(cfg, games),
		FAQJSON:    template.JS(ld),
	}
	if set != nil {
		v.Related = set.Related(cfg.Slug)
	}
	return v, nil
}

// NotFoundView is the 404 page model.
type NotFoundView struct {
	Meta Meta
}

// NotFound builds the 404 page model for path.
func (s *Site) NotFound(path string) NotFoundView {
	return NotFoundView{Meta: s.meta("Collection Not Found", "The collection page you requested was not found.", path)}
}

func slugify(v string) string {
	return strings.ReplaceAll(strings.ToLower(v), " ", "-")
}
