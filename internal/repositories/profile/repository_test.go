package profile

import (
	"context"
	"testing"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against each backend
type RepositoryTestSuite struct {
	suite.Suite
	backend string
	mr      *miniredis.Miniredis
	client  *redis.Client
	dataDir string
	repo    Repository
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	switch s.backend {
	case "redis":
		mr, err := miniredis.Run()
		s.Require().NoError(err)
		s.mr = mr

		s.client = redis.NewClient(&redis.Options{
			Addr: s.mr.Addr(),
		})

		repo, err := NewRedis(&Config{
			RedisClient: s.client,
		})
		s.Require().NoError(err)
		s.repo = repo
	default:
		s.dataDir = s.T().TempDir()
		repo, err := NewJSON(&JSONConfig{DataDir: s.dataDir})
		s.Require().NoError(err)
		s.repo = repo
	}
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	if s.mr != nil {
		s.mr.Close()
		s.mr = nil
	}
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{backend: "redis"})
}

func TestJSONRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{backend: "json"})
}

func (s *RepositoryTestSuite) TestSaveAndGetProfile() {
	err := s.repo.SaveProfile(s.ctx, &SaveProfileInput{
		Profile: &models.Profile{
			UserID:     "111",
			InGameName: "Rook",
			IsHost:     true,
		},
	})
	s.Require().NoError(err)

	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "111"})
	s.Require().NoError(err)
	s.Equal("111", profile.UserID)
	s.Equal("Rook", profile.InGameName)
	s.True(profile.IsHost)
}

func (s *RepositoryTestSuite) TestSaveProfileOverwrites() {
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{
		Profile: &models.Profile{UserID: "111", InGameName: "Rook"},
	}))
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{
		Profile: &models.Profile{UserID: "111", InGameName: "Bishop", IsHost: true},
	}))

	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "111"})
	s.Require().NoError(err)
	s.Equal("Bishop", profile.InGameName)
	s.True(profile.IsHost)
}

func (s *RepositoryTestSuite) TestGetProfileNotFound() {
	profile, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "missing"})
	s.ErrorIs(err, ErrProfileNotFound)
	s.Nil(profile)
}

func (s *RepositoryTestSuite) TestSaveProfileValidation() {
	s.Error(s.repo.SaveProfile(s.ctx, nil))
	s.Error(s.repo.SaveProfile(s.ctx, &SaveProfileInput{}))
	s.Error(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: &models.Profile{InGameName: "x"}}))
}

func (s *RepositoryTestSuite) TestAddHostIsIdempotent() {
	s.Require().NoError(s.repo.AddHost(s.ctx, &AddHostInput{UserID: "111"}))
	s.Require().NoError(s.repo.AddHost(s.ctx, &AddHostInput{UserID: "222"}))
	s.Require().NoError(s.repo.AddHost(s.ctx, &AddHostInput{UserID: "111"}))

	hosts, err := s.repo.ListHosts(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"111", "222"}, hosts)
}

func (s *RepositoryTestSuite) TestIsHost() {
	s.Require().NoError(s.repo.AddHost(s.ctx, &AddHostInput{UserID: "111"}))

	isHost, err := s.repo.IsHost(s.ctx, &IsHostInput{UserID: "111"})
	s.Require().NoError(err)
	s.True(isHost)

	isHost, err = s.repo.IsHost(s.ctx, &IsHostInput{UserID: "222"})
	s.Require().NoError(err)
	s.False(isHost)
}

func (s *RepositoryTestSuite) TestListHostsEmpty() {
	hosts, err := s.repo.ListHosts(s.ctx)
	s.Require().NoError(err)
	s.Empty(hosts)
}
