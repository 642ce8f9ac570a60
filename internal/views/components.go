package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("views").ParseFS(templateFS, "templates/*.html"))

// Template names
const (
	tmplLayout     = "layout"
	tmplHeadUpdate = "head-update"
	tmplListing    = "listing"
	tmplGrid       = "grid"
	tmplDetailPage = "detail-page"
	tmplDetail     = "detail"
	tmplError      = "error"
)

type layoutData struct {
	Title       string
	Description string
	Body        template.HTML
}

type headData struct {
	Title       string
	Description string
}

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

// ListingShell renders the search box and the grid loading state
func ListingShell(page *ListingPage) templ.Component {
	return component(tmplListing, page)
}

// GridFragment renders the listing cards or the empty state
func GridFragment(grid *Grid) templ.Component {
	return component(tmplGrid, grid)
}

// DetailShell renders the detail loading state
func DetailShell(page *DetailPage) templ.Component {
	return component(tmplDetailPage, page)
}

// DetailFragment renders a populated record
func DetailFragment(detail *Detail) templ.Component {
	return component(tmplDetail, detail)
}

// ErrorFragment renders a failed fetch in place of its container
func ErrorFragment(state *ErrorState) templ.Component {
	return component(tmplError, state)
}

// Layout wraps content in the document shell
func Layout(title, description string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := templ.ToGoHTML(ctx, content)
		if err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, tmplLayout, layoutData{
			Title:       title,
			Description: description,
			Body:        body,
		})
	})
}

// HeadUpdate renders the title and an out-of-band description swap for
// htmx responses
func HeadUpdate(title, description string) templ.Component {
	return component(tmplHeadUpdate, headData{Title: title, Description: description})
}
