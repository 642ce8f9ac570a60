package listingview_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	mockclock "github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock/mock"
	listingview "github.com/KirkDiggler/pokemon-explorer/internal/repositories/listing_view"
	"github.com/KirkDiggler/pokemon-explorer/internal/testutils"
)

type RedisTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      listingview.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(RedisTestSuite))
}

func (s *RedisTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := listingview.NewRedis(&listingview.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisTestSuite) TestNewRedisValidation() {
	repo, err := listingview.NewRedis(nil)
	s.Error(err)
	s.Nil(repo)

	repo, err = listingview.NewRedis(&listingview.RedisConfig{})
	s.Error(err)
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "Clock: is required")
	s.Nil(repo)
}

func (s *RedisTestSuite) TestCreateStoresWithTTL() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	_, err := s.repo.Create(s.ctx, listingview.CreateInput{
		ViewID:  "view_1",
		Pokemon: testPokemon(),
		TTL:     5 * time.Minute,
	})
	s.Require().NoError(err)

	s.True(s.mr.Exists("listing_view:view_1"))
	s.Equal(5*time.Minute, s.mr.TTL("listing_view:view_1"))

	got, err := s.repo.Get(s.ctx, listingview.GetInput{ViewID: "view_1"})
	s.Require().NoError(err)
	s.Require().Len(got.View.Pokemon, 2)
	s.Equal(4, got.View.Pokemon[1].ID)
	s.Equal("charmander", got.View.Pokemon[1].Name)
}

func (s *RedisTestSuite) TestGetAfterKeyExpiry() {
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.repo.Create(s.ctx, listingview.CreateInput{ViewID: "view_1", TTL: time.Minute})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, listingview.GetInput{ViewID: "view_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisTestSuite) TestGetPastStoredDeadline() {
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.now),
		s.mockClock.EXPECT().Now().Return(s.now.Add(2*time.Minute)),
	)

	_, err := s.repo.Create(s.ctx, listingview.CreateInput{ViewID: "view_1", TTL: time.Minute})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, listingview.GetInput{ViewID: "view_1"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("listing_view:view_1"))
}

func (s *RedisTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, listingview.GetInput{ViewID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisTestSuite) TestGetCorruptValue() {
	s.Require().NoError(s.mr.Set("listing_view:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, listingview.GetInput{ViewID: "bad"})
	s.Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisTestSuite) TestRedisUnavailable() {
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mr.Close()

	_, err := s.repo.Create(s.ctx, listingview.CreateInput{ViewID: "view_1"})
	s.True(errors.IsUnavailable(err))
}
