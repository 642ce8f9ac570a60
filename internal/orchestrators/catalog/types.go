package catalog

import "github.com/KirkDiggler/pokemon-explorer/internal/entities"

// ListPokemonInput defines the request for a listing
type ListPokemonInput struct {
	// ViewID of the rendered page; empty starts a new view
	ViewID     string
	SearchTerm string
}

// ListPokemonOutput defines the response for a listing
type ListPokemonOutput struct {
	ViewID     string
	Total      int // size of the unfiltered collection
	SearchTerm string
	Pokemon    []*entities.PokemonSummary
}

// GetPokemonInput defines the request for a single record
type GetPokemonInput struct {
	ID int
}

// GetPokemonOutput defines the response for a single record
type GetPokemonOutput struct {
	Pokemon *entities.Pokemon
}
