// Package entities holds the catalog records rendered by the explorer.
package entities

// PokemonSummary is a listing record: a name and the locator of its detail
// resource. ID is derived from DetailURL, never returned by the listing
// endpoint itself.
type PokemonSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DetailURL string `json:"url"`
}

// Pokemon is the full detail record fetched by id.
type Pokemon struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Height    int       `json:"height"` // decimetres
	Weight    int       `json:"weight"` // hectograms
	Abilities []Ability `json:"abilities"`
	Types     []Type    `json:"types"`
	Stats     []Stat    `json:"stats"`
	Moves     []Move    `json:"moves"`
	Images    Images    `json:"images"`
}

// Ability is one of a Pokemon's abilities
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

// Type is an elemental category such as "grass" or "poison"
type Type struct {
	Name string `json:"name"`
}

// Stat is a base stat. Value is nominally within [0, MaxStatValue].
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Move is a learnable move
type Move struct {
	Name string `json:"name"`
}

// Images holds the sprite URLs of a record. Either may be empty.
type Images struct {
	Default string `json:"default"`
	Artwork string `json:"artwork"`
}

// MaxStatValue is the ceiling used to normalise stat bars. It is not
// enforced on Stat.Value.
const MaxStatValue = 255
