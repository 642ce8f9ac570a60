// Package listingview stores the collection fetched by one rendered listing
// page so keystroke searches filter it instead of refetching
package listingview

//go:generate mockgen -destination=mock/mock_repository.go -package=listingviewmock github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
)

// DefaultTTL is how long a listing view lives without being recreated
const DefaultTTL = 30 * time.Minute

// View is the state owned by one listing page
type View struct {
	// ViewID identifies the rendered page that owns this state
	ViewID string

	// Pokemon is the full collection fetched on mount, in API order
	Pokemon []*entities.PokemonSummary

	// When this view was created
	CreatedAt time.Time

	// When this view expires
	ExpiresAt time.Time
}

// CreateInput contains parameters for storing a view
type CreateInput struct {
	ViewID  string
	Pokemon []*entities.PokemonSummary
	TTL     time.Duration // defaults to DefaultTTL
}

// CreateOutput contains the stored view
type CreateOutput struct {
	View *View
}

// GetInput contains parameters for retrieving a view
type GetInput struct {
	ViewID string
}

// GetOutput contains the retrieved view
type GetOutput struct {
	View *View
}

// Repository defines the storage operations for listing views
type Repository interface {
	// Create stores a view, replacing any previous view with the same id
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a live view. Missing and expired views are NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

const (
	errViewIDEmpty = "view ID cannot be empty"
	errNegativeTTL = "ttl cannot be negative"
)

func newView(input CreateInput, now time.Time) *View {
	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &View{
		ViewID:    input.ViewID,
		Pokemon:   input.Pokemon,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
