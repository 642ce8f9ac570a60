package views

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HTMXRequestHeader is set by htmx on every request it issues
const HTMXRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HTMXRequestHeader), "true")
}

// Page describes one HTML response for both full-page and htmx flows
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Content     templ.Component
}

// WritePage writes page.Content inside the layout, or on its own for htmx
// requests. htmx responses carry the title and description when set.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) {
	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}

	title := page.Title
	if title == "" {
		title = SiteTitle
	}

	var target templ.Component
	if IsHTMXRequest(r) {
		target = page.Content
		if page.Title != "" {
			target = templ.Join(HeadUpdate(page.Title, page.Description), page.Content)
		}
	} else {
		target = Layout(title, page.Description, page.Content)
	}

	var buf bytes.Buffer
	if err := target.Render(r.Context(), &buf); err != nil {
		slog.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
