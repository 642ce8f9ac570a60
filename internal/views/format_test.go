package views_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

func TestFormatStatName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "hp", want: "Hp"},
		{in: "attack", want: "Attack"},
		{in: "special-attack", want: "Special Attack"},
		{in: "special-defense", want: "Special Defense"},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, views.FormatStatName(tc.in))
		})
	}
}

func TestFormatStatNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make(chan string, 16*200)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				results <- views.FormatStatName("special-attack")
			}
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		assert.Equal(t, "Special Attack", got)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Bulbasaur", views.Capitalize("bulbasaur"))
	assert.Equal(t, "Mr-mime", views.Capitalize("mr-mime"))
	assert.Equal(t, "", views.Capitalize(""))
}

func TestStatBarWidth(t *testing.T) {
	testCases := []struct {
		name  string
		value int
		want  float64
	}{
		{name: "zero", value: 0, want: 0},
		{name: "ceiling", value: 255, want: 100},
		{name: "above ceiling is clamped", value: 300, want: 100},
		{name: "negative is clamped", value: -5, want: 0},
		{name: "half", value: 51, want: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, views.StatBarWidth(tc.value), 1e-9)
		})
	}
}

func TestFormatMeasure(t *testing.T) {
	assert.Equal(t, "0.7", views.FormatMeasure(7))
	assert.Equal(t, "1", views.FormatMeasure(10))
	assert.Equal(t, "6.9", views.FormatMeasure(69))
	assert.Equal(t, "0", views.FormatMeasure(0))
}

func TestSpriteURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
		views.SpriteURL(views.DefaultSpriteBaseURL, 25))
	assert.Equal(t, "http://sprites.test/4.png", views.SpriteURL("http://sprites.test", 4))
}

func TestHeaderImage(t *testing.T) {
	base := "http://sprites.test/"

	p := &entities.Pokemon{ID: 1, Images: entities.Images{Default: "default.png", Artwork: "art.png"}}
	assert.Equal(t, "art.png", views.HeaderImage(p, base))

	p.Images.Artwork = ""
	assert.Equal(t, "default.png", views.HeaderImage(p, base))

	p.Images.Default = ""
	assert.Equal(t, "http://sprites.test/1.png", views.HeaderImage(p, base))
}
