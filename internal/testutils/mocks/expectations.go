// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog/mock"
)

// ExpectListFetch sets up a single upstream listing fetch
func ExpectListFetch(ctx context.Context, mockClient *pokeapimock.MockClient, summaries []*entities.PokemonSummary, err error) *gomock.Call {
	return mockClient.EXPECT().
		ListPokemon(ctx, catalog.ListingPageSize).
		Return(summaries, err)
}

// ExpectCatalogList sets up a listing for viewID that returns summaries
// filtered by term, or err
func ExpectCatalogList(
	mockService *catalogmock.MockService,
	viewID, term string,
	summaries []*entities.PokemonSummary,
	err error,
) *gomock.Call {
	call := mockService.EXPECT().
		ListPokemon(gomock.Any(), &catalog.ListPokemonInput{ViewID: viewID, SearchTerm: term})

	if err != nil {
		return call.Return(nil, err)
	}

	if viewID == "" {
		viewID = "view_test"
	}
	return call.Return(&catalog.ListPokemonOutput{
		ViewID:     viewID,
		Total:      len(summaries),
		SearchTerm: term,
		Pokemon:    catalog.FilterByName(summaries, term),
	}, nil)
}

// ExpectCatalogGet sets up a detail lookup for id
func ExpectCatalogGet(mockService *catalogmock.MockService, id int, pokemon *entities.Pokemon, err error) *gomock.Call {
	call := mockService.EXPECT().
		GetPokemon(gomock.Any(), &catalog.GetPokemonInput{ID: id})

	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&catalog.GetPokemonOutput{Pokemon: pokemon}, nil)
}
