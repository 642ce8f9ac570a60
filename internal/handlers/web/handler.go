// Package web serves the explorer's pages, htmx fragments and JSON API
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CatalogService catalog.Service
	IDGenerator    idgen.Generator

	// SpriteBaseURL of the static sprites (optional, defaults to views.DefaultSpriteBaseURL)
	SpriteBaseURL string

	// AllowedOrigins for the JSON API (optional, defaults to any origin)
	AllowedOrigins []string
}

// Validate ensures all required dependencies are present and sets defaults
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.SpriteBaseURL == "" {
		c.SpriteBaseURL = views.DefaultSpriteBaseURL
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// Handler routes browser and API requests to the catalog service
type Handler struct {
	catalog        catalog.Service
	idGen          idgen.Generator
	spriteBase     string
	allowedOrigins []string
	router         chi.Router
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		catalog:        cfg.CatalogService,
		idGen:          cfg.IDGenerator,
		spriteBase:     cfg.SpriteBaseURL,
		allowedOrigins: cfg.AllowedOrigins,
		router:         chi.NewRouter(),
	}

	h.setupMiddleware()
	h.setupRoutes()

	return h, nil
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) setupMiddleware() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(middleware.Logger)
	h.router.Use(middleware.Recoverer)
	h.router.Use(middleware.Compress(5))
}

func (h *Handler) setupRoutes() {
	h.router.Get(views.HomePath, h.handleHome)
	h.router.Get("/pokemon/{id}", h.handleDetailPage)

	h.router.Route("/fragments", func(r chi.Router) {
		r.Get("/pokemon", h.handleGridFragment)
		r.Get("/pokemon/{id}", h.handleDetailFragment)
	})

	h.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/pokemon", h.handleAPIList)
		r.Get("/pokemon/{id}", h.handleAPIGet)
	})

	// Health check
	h.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// parseID reads the {id} route parameter. Anything but a positive integer
// is an InvalidArgument, which the views present as an absent record.
func parseID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid pokemon id %q", raw)
	}
	if id <= 0 {
		return 0, errors.InvalidArgumentf("pokemon id must be positive, got %d", id)
	}
	return id, nil
}
