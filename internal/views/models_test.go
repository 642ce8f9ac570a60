package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/testutils"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

func TestNewMoveList(t *testing.T) {
	testCases := []struct {
		name          string
		count         int
		wantShown     int
		wantRemaining int
	}{
		{name: "no moves", count: 0, wantShown: 0, wantRemaining: 0},
		{name: "under the limit", count: 3, wantShown: 3, wantRemaining: 0},
		{name: "exactly the limit", count: 20, wantShown: 20, wantRemaining: 0},
		{name: "over the limit", count: 25, wantShown: 20, wantRemaining: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moves := testutils.PokemonWithMoves(1, tc.count).Moves

			list := views.NewMoveList(moves)
			assert.Len(t, list.Shown, tc.wantShown)
			assert.Equal(t, tc.wantRemaining, list.Remaining)
			if tc.wantShown > 0 {
				assert.Equal(t, "move-1", list.Shown[0])
			}
		})
	}
}

func TestNewNav(t *testing.T) {
	first := views.NewNav(1)
	assert.False(t, first.ShowPrevious)
	assert.Empty(t, first.PreviousHref)
	assert.Equal(t, "/pokemon/2", first.NextHref)
	assert.Equal(t, "/", first.HomeHref)

	mid := views.NewNav(25)
	assert.True(t, mid.ShowPrevious)
	assert.Equal(t, "/pokemon/24", mid.PreviousHref)
	assert.Equal(t, "/pokemon/26", mid.NextHref)
}

func TestNewDetail(t *testing.T) {
	d := views.NewDetail(testutils.Bulbasaur(), views.DefaultSpriteBaseURL)

	assert.Equal(t, "Bulbasaur | Pokemon Explorer", d.Title())
	assert.Equal(t, "Details about bulbasaur", d.Description())
	assert.Equal(t, "0.7", d.Height)
	assert.Equal(t, "6.9", d.Weight)
	assert.Equal(t, []string{"grass", "poison"}, d.Types)
	assert.Contains(t, d.ImageURL, "official-artwork")

	require.Len(t, d.Stats, 6)
	assert.Equal(t, "Special Attack", d.Stats[3].Label)
	assert.Equal(t, 65, d.Stats[3].Value)

	require.Len(t, d.Abilities, 2)
	assert.False(t, d.Abilities[0].Hidden)
	assert.True(t, d.Abilities[1].Hidden)
}

func TestNewGrid(t *testing.T) {
	grid := views.NewGrid("view_1", "", 2, []*entities.PokemonSummary{
		{ID: 1, Name: "bulbasaur"},
		{ID: 25, Name: "pikachu"},
	}, "http://sprites.test")

	require.Len(t, grid.Cards, 2)
	assert.Equal(t, "/pokemon/25", grid.Cards[1].Href)
	assert.Equal(t, "http://sprites.test/25.png", grid.Cards[1].SpriteURL)
	assert.False(t, grid.ShowEmptyState())

	empty := views.NewGrid("view_1", "", 0, nil, "http://sprites.test")
	assert.False(t, empty.ShowEmptyState(), "empty term never shows the no-match message")

	noMatch := views.NewGrid("view_1", "xyz", 2, nil, "http://sprites.test")
	assert.True(t, noMatch.ShowEmptyState())
}

func TestNewListingPage(t *testing.T) {
	page := views.NewListingPage("view_1", "")
	assert.Equal(t, "/fragments/pokemon?view=view_1", page.GridURL)

	page = views.NewListingPage("view_1", "mr mime")
	assert.Equal(t, "/fragments/pokemon?q=mr+mime&view=view_1", page.GridURL)
}

func TestErrorStates(t *testing.T) {
	testCases := []struct {
		name        string
		state       *views.ErrorState
		wantMessage string
		wantKind    errors.Kind
	}{
		{
			name:        "listing network failure",
			state:       views.NewListError(errors.Unavailable("down")),
			wantMessage: "Failed to load Pokemon list",
			wantKind:    errors.KindNetworkFailure,
		},
		{
			name:        "detail not found",
			state:       views.NewDetailError(errors.NotFound("missing")),
			wantMessage: "Pokemon not found",
			wantKind:    errors.KindNotFound,
		},
		{
			name:        "detail invalid id",
			state:       views.NewDetailError(errors.InvalidArgument("bad id")),
			wantMessage: "Pokemon not found",
			wantKind:    errors.KindNotFound,
		},
		{
			name:        "detail malformed",
			state:       views.NewDetailError(errors.DataLoss("bad body")),
			wantMessage: "Failed to load Pokemon details",
			wantKind:    errors.KindMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantMessage, tc.state.Message)
			assert.Equal(t, tc.wantKind, tc.state.Kind)
		})
	}
}
