package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/idgen"
	listingview "github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view"
	listingviewmock "github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view/mock"
	"github.com/KirkDiggler/pokemon-explorer/internal/testutils"
	"github.com/KirkDiggler/pokemon-explorer/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	viewRepo     listingview.Repository
	orchestrator catalog.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	repo, err := listingview.NewInMemory(&listingview.InMemoryConfig{Clock: clock.New()})
	s.Require().NoError(err)
	s.viewRepo = repo

	s.orchestrator, err = catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		ViewRepo:    s.viewRepo,
		IDGenerator: idgen.NewSequential("view"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name   string
		config *catalog.Config
		errMsg string
	}{
		{
			name:   "nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "missing dependencies",
			config: &catalog.Config{},
			errMsg: "Client: is required",
		},
		{
			name: "negative ttl",
			config: &catalog.Config{
				Client:      s.mockClient,
				ViewRepo:    s.viewRepo,
				IDGenerator: idgen.NewSequential("view"),
				ViewTTL:     -time.Second,
			},
			errMsg: "ViewTTL",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := catalog.NewOrchestrator(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestListPokemonStartsNewView() {
	mocks.ExpectListFetch(s.ctx, s.mockClient, testutils.PokemonSummaries(), nil)

	out, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{})
	s.Require().NoError(err)

	s.Equal("view_1", out.ViewID)
	s.Equal(len(testutils.PokemonSummaries()), out.Total)
	s.Len(out.Pokemon, out.Total)
	s.Equal("bulbasaur", out.Pokemon[0].Name)
}

func (s *OrchestratorTestSuite) TestListPokemonReusesView() {
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), catalog.ListingPageSize).
		Return(testutils.PokemonSummaries(), nil).
		Times(1)

	first, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{})
	s.Require().NoError(err)

	for _, term := range []string{"c", "ch", "cha", "CHAR"} {
		out, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{
			ViewID:     first.ViewID,
			SearchTerm: term,
		})
		s.Require().NoError(err)
		s.Equal(first.ViewID, out.ViewID)
		s.Equal(term, out.SearchTerm)
		s.Equal(first.Total, out.Total)
	}
}

func (s *OrchestratorTestSuite) TestListPokemonUnknownViewRefetches() {
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), catalog.ListingPageSize).
		Return(testutils.PokemonSummaries(), nil)

	out, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{
		ViewID:     "view_expired",
		SearchTerm: "saur",
	})
	s.Require().NoError(err)
	s.Equal("view_expired", out.ViewID)
	s.Require().Len(out.Pokemon, 3)
	s.Equal("bulbasaur", out.Pokemon[0].Name)
	s.Equal("ivysaur", out.Pokemon[1].Name)
	s.Equal("venusaur", out.Pokemon[2].Name)
}

func (s *OrchestratorTestSuite) TestListPokemonNoMatches() {
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), catalog.ListingPageSize).
		Return(testutils.PokemonSummaries(), nil)

	out, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{SearchTerm: "xyz"})
	s.Require().NoError(err)
	s.Empty(out.Pokemon)
	s.Equal(len(testutils.PokemonSummaries()), out.Total)
}

func (s *OrchestratorTestSuite) TestListPokemonClientErrorKeepsKind() {
	testCases := []struct {
		name string
		err  error
		kind errors.Kind
	}{
		{
			name: "network failure",
			err:  errors.Unavailable("connection refused"),
			kind: errors.KindNetworkFailure,
		},
		{
			name: "malformed body",
			err:  errors.DataLoss("bad json"),
			kind: errors.KindMalformed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockClient.EXPECT().
				ListPokemon(gomock.Any(), catalog.ListingPageSize).
				Return(nil, tc.err)

			out, err := s.orchestrator.ListPokemon(s.ctx, &catalog.ListPokemonInput{})
			s.Nil(out)
			s.Equal(tc.kind, errors.KindOf(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestListPokemonStoreFailureStillRenders() {
	mockRepo := listingviewmock.NewMockRepository(s.ctrl)
	svc, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		ViewRepo:    mockRepo,
		IDGenerator: idgen.NewSequential("view"),
	})
	s.Require().NoError(err)

	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), catalog.ListingPageSize).
		Return(testutils.PokemonSummaries(), nil)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := svc.ListPokemon(s.ctx, &catalog.ListPokemonInput{SearchTerm: "pika"})
	s.Require().NoError(err)
	s.Equal("view_1", out.ViewID)
	s.Require().Len(out.Pokemon, 1)
	s.Equal("pikachu", out.Pokemon[0].Name)
}

func (s *OrchestratorTestSuite) TestListPokemonPassesTTL() {
	mockRepo := listingviewmock.NewMockRepository(s.ctrl)
	svc, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		ViewRepo:    mockRepo,
		IDGenerator: idgen.NewSequential("view"),
		ViewTTL:     5 * time.Minute,
	})
	s.Require().NoError(err)

	summaries := testutils.PokemonSummaries()
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), catalog.ListingPageSize).
		Return(summaries, nil)
	mockRepo.EXPECT().
		Create(gomock.Any(), listingview.CreateInput{
			ViewID:  "view_1",
			Pokemon: summaries,
			TTL:     5 * time.Minute,
		}).
		Return(&listingview.CreateOutput{View: &listingview.View{ViewID: "view_1", Pokemon: summaries}}, nil)

	_, err = svc.ListPokemon(s.ctx, &catalog.ListPokemonInput{})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestGetPokemon() {
	pokemon := testutils.Bulbasaur()
	s.mockClient.EXPECT().GetPokemon(s.ctx, 1).Return(pokemon, nil)

	out, err := s.orchestrator.GetPokemon(s.ctx, &catalog.GetPokemonInput{ID: 1})
	s.Require().NoError(err)
	s.Equal(pokemon, out.Pokemon)
}

func (s *OrchestratorTestSuite) TestGetPokemonRejectsNonPositiveID() {
	for _, id := range []int{0, -1} {
		out, err := s.orchestrator.GetPokemon(s.ctx, &catalog.GetPokemonInput{ID: id})
		s.Nil(out)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(errors.KindNotFound, errors.KindOf(err))
	}
}

func (s *OrchestratorTestSuite) TestGetPokemonNotFound() {
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, 99999).
		Return(nil, errors.NotFound("pokemon 99999 not found"))

	out, err := s.orchestrator.GetPokemon(s.ctx, &catalog.GetPokemonInput{ID: 99999})
	s.Nil(out)
	s.Equal(errors.KindNotFound, errors.KindOf(err))
}

func (s *OrchestratorTestSuite) TestNilInputs() {
	_, err := s.orchestrator.ListPokemon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetPokemon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestFilterByName(t *testing.T) {
	all := []*entities.PokemonSummary{
		{ID: 1, Name: "bulbasaur"},
		{ID: 4, Name: "charmander"},
		{ID: 5, Name: "charmeleon"},
		{ID: 25, Name: "pikachu"},
	}

	testCases := []struct {
		name string
		term string
		want []int
	}{
		{name: "empty term returns all", term: "", want: []int{1, 4, 5, 25}},
		{name: "prefix", term: "char", want: []int{4, 5}},
		{name: "case insensitive", term: "CHAR", want: []int{4, 5}},
		{name: "substring", term: "saur", want: []int{1}},
		{name: "whitespace is not trimmed", term: " char", want: []int{}},
		{name: "no match", term: "xyz", want: []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.FilterByName(all, tc.term)

			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterByNameDoesNotAliasInput(t *testing.T) {
	all := []*entities.PokemonSummary{{ID: 1, Name: "bulbasaur"}}

	got := catalog.FilterByName(all, "")
	got[0] = &entities.PokemonSummary{ID: 2, Name: "ivysaur"}

	assert.Equal(t, 1, all[0].ID)
}
