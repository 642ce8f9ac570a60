package testutils

import (
	"fmt"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
)

// SummaryURL is the detail locator the listing endpoint returns for id
func SummaryURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id)
}

// PokemonSummaries returns the first few listing records plus pikachu
func PokemonSummaries() []*entities.PokemonSummary {
	names := []struct {
		id   int
		name string
	}{
		{1, "bulbasaur"},
		{2, "ivysaur"},
		{3, "venusaur"},
		{4, "charmander"},
		{5, "charmeleon"},
		{6, "charizard"},
		{7, "squirtle"},
		{25, "pikachu"},
	}

	out := make([]*entities.PokemonSummary, 0, len(names))
	for _, n := range names {
		out = append(out, &entities.PokemonSummary{
			ID:        n.id,
			Name:      n.name,
			DetailURL: SummaryURL(n.id),
		})
	}
	return out
}

// Bulbasaur returns a complete detail record
func Bulbasaur() *entities.Pokemon {
	return &entities.Pokemon{
		ID:     1,
		Name:   "bulbasaur",
		Height: 7,
		Weight: 69,
		Abilities: []entities.Ability{
			{Name: "overgrow"},
			{Name: "chlorophyll", IsHidden: true},
		},
		Types: []entities.Type{
			{Name: "grass"},
			{Name: "poison"},
		},
		Stats: []entities.Stat{
			{Name: "hp", Value: 45},
			{Name: "attack", Value: 49},
			{Name: "defense", Value: 49},
			{Name: "special-attack", Value: 65},
			{Name: "special-defense", Value: 65},
			{Name: "speed", Value: 45},
		},
		Moves: []entities.Move{
			{Name: "razor-wind"},
			{Name: "swords-dance"},
			{Name: "cut"},
		},
		Images: entities.Images{
			Default: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png",
			Artwork: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/1.png",
		},
	}
}

// PokemonWithMoves returns a record for id carrying count generated moves
// and no images
func PokemonWithMoves(id, count int) *entities.Pokemon {
	p := &entities.Pokemon{
		ID:     id,
		Name:   fmt.Sprintf("pokemon-%d", id),
		Height: 10,
		Weight: 100,
		Types:  []entities.Type{{Name: "normal"}},
		Stats:  []entities.Stat{{Name: "hp", Value: 300}},
	}
	for i := 1; i <= count; i++ {
		p.Moves = append(p.Moves, entities.Move{Name: fmt.Sprintf("move-%d", i)})
	}
	return p
}
