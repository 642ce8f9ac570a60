// Package catalog implements the listing and detail operations behind the
// explorer's views
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/idgen"
	listingview "github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view"
)

// ListingPageSize is the fixed number of summaries fetched for a listing
const ListingPageSize = 151

// Service defines the catalog operations
type Service interface {
	// ListPokemon returns the listing for a view, fetching the collection
	// when the view is new or has expired, and filters it by name
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error)

	// GetPokemon fetches a single record
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client      pokeapi.Client
	ViewRepo    listingview.Repository
	IDGenerator idgen.Generator
	ViewTTL     time.Duration // defaults to listingview.DefaultTTL
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.ViewRepo == nil {
		vb.RequiredField("ViewRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ViewTTL < 0 {
		vb.Field("ViewTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	client   pokeapi.Client
	viewRepo listingview.Repository
	idGen    idgen.Generator
	viewTTL  time.Duration
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.ViewTTL
	if ttl == 0 {
		ttl = listingview.DefaultTTL
	}

	return &orchestrator{
		client:   cfg.Client,
		viewRepo: cfg.ViewRepo,
		idGen:    cfg.IDGenerator,
		viewTTL:  ttl,
	}, nil
}

// ListPokemon implements Service
func (o *orchestrator) ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	view, err := o.loadView(ctx, input.ViewID)
	if err != nil {
		return nil, err
	}

	return &ListPokemonOutput{
		ViewID:     view.ViewID,
		Total:      len(view.Pokemon),
		SearchTerm: input.SearchTerm,
		Pokemon:    FilterByName(view.Pokemon, input.SearchTerm),
	}, nil
}

// loadView returns the stored view, or fetches the collection and stores it
// as a new view when there is none
func (o *orchestrator) loadView(ctx context.Context, viewID string) (*listingview.View, error) {
	if viewID != "" {
		out, err := o.viewRepo.Get(ctx, listingview.GetInput{ViewID: viewID})
		switch {
		case err == nil:
			return out.View, nil
		case errors.IsNotFound(err):
			slog.Debug("listing view missing, refetching", "view_id", viewID)
		default:
			slog.Warn("failed to load listing view, refetching", "view_id", viewID, "error", err)
		}
	} else {
		viewID = o.idGen.Generate()
	}

	pokemon, err := o.client.ListPokemon(ctx, ListingPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}

	created, err := o.viewRepo.Create(ctx, listingview.CreateInput{
		ViewID:  viewID,
		Pokemon: pokemon,
		TTL:     o.viewTTL,
	})
	if err != nil {
		// the page still renders; the next keystroke refetches
		slog.Warn("failed to store listing view", "view_id", viewID, "error", err)
		return &listingview.View{ViewID: viewID, Pokemon: pokemon}, nil
	}

	return created.View, nil
}

// GetPokemon implements Service
func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID <= 0 {
		return nil, errors.InvalidArgumentf("pokemon id must be positive, got %d", input.ID)
	}

	pokemon, err := o.client.GetPokemon(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %d", input.ID)
	}

	return &GetPokemonOutput{Pokemon: pokemon}, nil
}

// FilterByName returns the summaries whose name contains term, ignoring
// case, in their original order. An empty term matches everything.
func FilterByName(pokemon []*entities.PokemonSummary, term string) []*entities.PokemonSummary {
	if term == "" {
		return append([]*entities.PokemonSummary(nil), pokemon...)
	}

	needle := strings.ToLower(term)
	filtered := make([]*entities.PokemonSummary, 0, len(pokemon))
	for _, p := range pokemon {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
