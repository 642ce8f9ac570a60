package views

import (
	"net/url"
	"strconv"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
)

// Routes shared by the templates and the router
const (
	HomePath           = "/"
	GridFragmentPath   = "/fragments/pokemon"
	DetailPathPrefix   = "/pokemon/"
	DetailFragmentPath = "/fragments/pokemon/"

	// Container ids swapped by htmx
	GridContainerID   = "pokemon-grid"
	DetailContainerID = "pokemon-detail"

	// SiteTitle is the page title when no record is shown
	SiteTitle = "Pokemon Explorer"
)

// User-facing error messages
const (
	MessageListFailed   = "Failed to load Pokemon list"
	MessageNotFound     = "Pokemon not found"
	MessageDetailFailed = "Failed to load Pokemon details"
)

// DetailPath is the page route for id
func DetailPath(id int) string {
	return DetailPathPrefix + strconv.Itoa(id)
}

// ListingPage is the listing shell rendered before any data is fetched
type ListingPage struct {
	ViewID     string
	SearchTerm string
	GridURL    string
}

// NewListingPage builds the shell for a fresh view
func NewListingPage(viewID, term string) *ListingPage {
	q := url.Values{}
	q.Set("view", viewID)
	if term != "" {
		q.Set("q", term)
	}

	return &ListingPage{
		ViewID:     viewID,
		SearchTerm: term,
		GridURL:    GridFragmentPath + "?" + q.Encode(),
	}
}

// Card is one listing entry
type Card struct {
	ID        int
	Name      string
	SpriteURL string
	Href      string
}

// Grid is the listing fragment
type Grid struct {
	ViewID     string
	SearchTerm string
	Total      int
	Cards      []Card
}

// NewGrid builds the listing fragment from the filtered collection
func NewGrid(viewID, term string, total int, pokemon []*entities.PokemonSummary, spriteBase string) *Grid {
	cards := make([]Card, 0, len(pokemon))
	for _, p := range pokemon {
		cards = append(cards, Card{
			ID:        p.ID,
			Name:      p.Name,
			SpriteURL: SpriteURL(spriteBase, p.ID),
			Href:      DetailPath(p.ID),
		})
	}

	return &Grid{
		ViewID:     viewID,
		SearchTerm: term,
		Total:      total,
		Cards:      cards,
	}
}

// ShowEmptyState reports whether the "no match" message replaces the grid
func (g *Grid) ShowEmptyState() bool {
	return len(g.Cards) == 0 && g.SearchTerm != ""
}

// DetailPage is the detail shell rendered before the record is fetched
type DetailPage struct {
	ID          int
	FragmentURL string
}

// NewDetailPage builds the shell for id
func NewDetailPage(id int) *DetailPage {
	return &DetailPage{
		ID:          id,
		FragmentURL: DetailFragmentPath + strconv.Itoa(id),
	}
}

// StatBar is one row of the stats section
type StatBar struct {
	Label string
	Value int
	Width string
}

// AbilityItem is one entry of the abilities list
type AbilityItem struct {
	Name   string
	Hidden bool
}

// MoveList is the leading moves plus a count of the rest
type MoveList struct {
	Shown     []string
	Remaining int
}

// NewMoveList keeps the first MaxMoves moves in source order
func NewMoveList(moves []entities.Move) MoveList {
	shown := moves
	if len(shown) > MaxMoves {
		shown = shown[:MaxMoves]
	}

	names := make([]string, 0, len(shown))
	for _, m := range shown {
		names = append(names, m.Name)
	}

	return MoveList{
		Shown:     names,
		Remaining: len(moves) - len(shown),
	}
}

// Nav holds the links around a detail record. Next has no upper bound.
type Nav struct {
	ShowPrevious bool
	PreviousHref string
	NextHref     string
	HomeHref     string
}

// NewNav builds the navigation for id
func NewNav(id int) Nav {
	nav := Nav{
		ShowPrevious: id > 1,
		NextHref:     DetailPath(id + 1),
		HomeHref:     HomePath,
	}
	if nav.ShowPrevious {
		nav.PreviousHref = DetailPath(id - 1)
	}
	return nav
}

// Detail is the populated detail fragment
type Detail struct {
	ID          int
	Name        string
	DisplayName string
	ImageURL    string
	Types       []string
	Height      string
	Weight      string
	Stats       []StatBar
	Abilities   []AbilityItem
	Moves       MoveList
	Nav         Nav
}

// NewDetail builds the detail fragment from a record
func NewDetail(p *entities.Pokemon, spriteBase string) *Detail {
	d := &Detail{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: Capitalize(p.Name),
		ImageURL:    HeaderImage(p, spriteBase),
		Height:      FormatMeasure(p.Height),
		Weight:      FormatMeasure(p.Weight),
		Moves:       NewMoveList(p.Moves),
		Nav:         NewNav(p.ID),
	}

	for _, t := range p.Types {
		d.Types = append(d.Types, t.Name)
	}
	for _, s := range p.Stats {
		d.Stats = append(d.Stats, StatBar{
			Label: FormatStatName(s.Name),
			Value: s.Value,
			Width: FormatPercent(StatBarWidth(s.Value)),
		})
	}
	for _, a := range p.Abilities {
		d.Abilities = append(d.Abilities, AbilityItem{Name: a.Name, Hidden: a.IsHidden})
	}

	return d
}

// Title is the document title while the record is shown
func (d *Detail) Title() string {
	return d.DisplayName + " | " + SiteTitle
}

// Description is the meta description while the record is shown
func (d *Detail) Description() string {
	return "Details about " + d.Name
}

// ErrorState replaces a container's content when a fetch fails
type ErrorState struct {
	ContainerID string
	Message     string
	Kind        errors.Kind
}

// NewListError builds the listing error state for err
func NewListError(err error) *ErrorState {
	return &ErrorState{
		ContainerID: GridContainerID,
		Message:     MessageListFailed,
		Kind:        errors.KindOf(err),
	}
}

// NewDetailError builds the detail error state for err
func NewDetailError(err error) *ErrorState {
	kind := errors.KindOf(err)

	message := MessageDetailFailed
	if kind == errors.KindNotFound {
		message = MessageNotFound
	}

	return &ErrorState{
		ContainerID: DetailContainerID,
		Message:     message,
		Kind:        kind,
	}
}
