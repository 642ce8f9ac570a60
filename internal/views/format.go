// Package views turns catalog records into the HTML pages and htmx fragments
// served to the browser
package views

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
)

const (
	// DefaultSpriteBaseURL serves the static front sprite of every id
	DefaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"

	// MaxMoves is how many moves the detail view lists before summarising
	MaxMoves = 20
)

// FormatStatName turns a hyphenated stat identifier into space separated
// title case: "special-attack" becomes "Special Attack"
func FormatStatName(name string) string {
	// a Caser keeps per-call state, so each call gets its own
	caser := cases.Title(language.English, cases.NoLower)
	tokens := strings.Split(name, "-")
	for i, token := range tokens {
		tokens[i] = caser.String(token)
	}
	return strings.Join(tokens, " ")
}

// Capitalize upper-cases the first letter of name and leaves the rest as is
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// StatBarWidth is the bar width in percent for a stat value, normalised to
// entities.MaxStatValue and clamped to [0, 100]
func StatBarWidth(value int) float64 {
	width := float64(value) / entities.MaxStatValue * 100
	return min(100, max(0, width))
}

// FormatPercent renders a width in its shortest decimal form
func FormatPercent(width float64) string {
	return strconv.FormatFloat(width, 'f', -1, 64)
}

// FormatMeasure converts a tenth-unit measure (decimetres, hectograms) to
// its base unit in shortest decimal form: 7 becomes "0.7", 10 becomes "1"
func FormatMeasure(tenths int) string {
	return strconv.FormatFloat(float64(tenths)/10, 'f', -1, 64)
}

// SpriteURL is the static sprite location for id under base
func SpriteURL(base string, id int) string {
	return strings.TrimSuffix(base, "/") + "/" + strconv.Itoa(id) + ".png"
}

// HeaderImage picks the artwork, then the default sprite, then the static
// sprite for the record's id
func HeaderImage(p *entities.Pokemon, spriteBase string) string {
	switch {
	case p.Images.Artwork != "":
		return p.Images.Artwork
	case p.Images.Default != "":
		return p.Images.Default
	default:
		return SpriteURL(spriteBase, p.ID)
	}
}
