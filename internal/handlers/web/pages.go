package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

// handleHome renders the listing shell for a new view
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	page := views.NewListingPage(h.idGen.Generate(), r.URL.Query().Get("q"))

	views.WritePage(w, r, views.Page{
		Content: views.ListingShell(page),
	})
}

// handleGridFragment renders the cards of a view filtered by the search term
func (h *Handler) handleGridFragment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.catalog.ListPokemon(r.Context(), &catalog.ListPokemonInput{
		ViewID:     query.Get("view"),
		SearchTerm: query.Get("q"),
	})
	if err != nil {
		logFetchError(r, "list pokemon", err)
		views.WritePage(w, r, views.Page{
			StatusCode: errors.GetCode(err).HTTPStatus(),
			Content:    views.ErrorFragment(views.NewListError(err)),
		})
		return
	}

	grid := views.NewGrid(output.ViewID, output.SearchTerm, output.Total, output.Pokemon, h.spriteBase)
	views.WritePage(w, r, views.Page{
		Content: views.GridFragment(grid),
	})
}

// handleDetailPage renders the detail shell, or the not found state when
// the id can never exist
func (h *Handler) handleDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeDetailError(w, r, err)
		return
	}

	views.WritePage(w, r, views.Page{
		Content: views.DetailShell(views.NewDetailPage(id)),
	})
}

// handleDetailFragment renders a populated record
func (h *Handler) handleDetailFragment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeDetailError(w, r, err)
		return
	}

	output, err := h.catalog.GetPokemon(r.Context(), &catalog.GetPokemonInput{ID: id})
	if err != nil {
		logFetchError(r, "get pokemon", err)
		h.writeDetailError(w, r, err)
		return
	}

	detail := views.NewDetail(output.Pokemon, h.spriteBase)
	views.WritePage(w, r, views.Page{
		Title:       detail.Title(),
		Description: detail.Description(),
		Content:     views.DetailFragment(detail),
	})
}

func (h *Handler) writeDetailError(w http.ResponseWriter, r *http.Request, err error) {
	views.WritePage(w, r, views.Page{
		StatusCode: errors.GetCode(err).HTTPStatus(),
		Content:    views.ErrorFragment(views.NewDetailError(err)),
	})
}

func logFetchError(r *http.Request, operation string, err error) {
	attrs := []any{
		"operation", operation,
		"request_id", middleware.GetReqID(r.Context()),
		"code", errors.GetCode(err),
		"kind", errors.KindOf(err),
		"error", err,
	}

	if errors.IsNotFound(err) {
		slog.Info("catalog fetch found nothing", attrs...)
		return
	}
	slog.Error("catalog fetch failed", attrs...)
}
