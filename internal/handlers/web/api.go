package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

// ListResponse is the JSON body of GET /api/pokemon
type ListResponse struct {
	ViewID     string                     `json:"view_id"`
	Total      int                        `json:"total"`
	SearchTerm string                     `json:"search_term"`
	Results    []*entities.PokemonSummary `json:"results"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

// ErrorResponse is the JSON body of every failed API request
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// handleAPIList returns the filtered listing of a view
func (h *Handler) handleAPIList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.catalog.ListPokemon(r.Context(), &catalog.ListPokemonInput{
		ViewID:     query.Get("view"),
		SearchTerm: query.Get("q"),
	})
	if err != nil {
		logFetchError(r, "list pokemon", err)
		respondError(w, err, views.MessageListFailed)
		return
	}

	respondJSON(w, http.StatusOK, ListResponse{
		ViewID:     output.ViewID,
		Total:      output.Total,
		SearchTerm: output.SearchTerm,
		Results:    output.Pokemon,
	})
}

// handleAPIGet returns a single record
func (h *Handler) handleAPIGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err, views.MessageNotFound)
		return
	}

	output, err := h.catalog.GetPokemon(r.Context(), &catalog.GetPokemonInput{ID: id})
	if err != nil {
		logFetchError(r, "get pokemon", err)
		respondError(w, err, views.NewDetailError(err).Message)
		return
	}

	respondJSON(w, http.StatusOK, output.Pokemon)
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error, message string) {
	code := errors.GetCode(err)
	respondJSON(w, code.HTTPStatus(), ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Kind:    errors.KindOf(err),
			Message: message,
		},
	})
}
