package pokeapi

import (
	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
)

// namedResource is the API's {name, url} reference shape
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
	} `json:"abilities"`
	Types []struct {
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// convertListResponse derives the id of every result. A single result with
// an unparseable url fails the whole page.
func convertListResponse(resp *listResponse) ([]*entities.PokemonSummary, error) {
	summaries := make([]*entities.PokemonSummary, 0, len(resp.Results))
	for _, ref := range resp.Results {
		id, err := ParseResourceID(ref.URL, ResourcePokemon)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed listing entry %q", ref.Name)
		}
		summaries = append(summaries, &entities.PokemonSummary{
			ID:        id,
			Name:      ref.Name,
			DetailURL: ref.URL,
		})
	}
	return summaries, nil
}

func convertPokemonResponse(resp *pokemonResponse) (*entities.Pokemon, error) {
	if resp.ID <= 0 || resp.Name == "" {
		return nil, errors.DataLoss("pokemon record is missing its id or name")
	}

	pokemon := &entities.Pokemon{
		ID:        resp.ID,
		Name:      resp.Name,
		Height:    resp.Height,
		Weight:    resp.Weight,
		Abilities: make([]entities.Ability, 0, len(resp.Abilities)),
		Types:     make([]entities.Type, 0, len(resp.Types)),
		Stats:     make([]entities.Stat, 0, len(resp.Stats)),
		Moves:     make([]entities.Move, 0, len(resp.Moves)),
		Images: entities.Images{
			Default: resp.Sprites.FrontDefault,
			Artwork: resp.Sprites.Other.OfficialArtwork.FrontDefault,
		},
	}

	for _, a := range resp.Abilities {
		pokemon.Abilities = append(pokemon.Abilities, entities.Ability{
			Name:     a.Ability.Name,
			IsHidden: a.IsHidden,
		})
	}
	for _, t := range resp.Types {
		pokemon.Types = append(pokemon.Types, entities.Type{Name: t.Type.Name})
	}
	for _, s := range resp.Stats {
		pokemon.Stats = append(pokemon.Stats, entities.Stat{
			Name:  s.Stat.Name,
			Value: s.BaseStat,
		})
	}
	for _, m := range resp.Moves {
		pokemon.Moves = append(pokemon.Moves, entities.Move{Name: m.Move.Name})
	}

	return pokemon, nil
}
