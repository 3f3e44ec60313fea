package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/squadup/internal/common/pacer"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/KirkDiggler/squadup/internal/platform/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoiceServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRooms    *mocks.MockVoiceRooms
	voiceService Service
	ctx          context.Context

	// Test data
	testGuildID string
	testRooms   models.GameRooms
	testTeam1   []string
	testTeam2   []string
}

func (s *VoiceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = mocks.NewMockVoiceRooms(s.mockCtrl)
	s.ctx = context.Background()

	s.testGuildID = "guild"
	s.testRooms = models.GameRooms{
		CategoryID:     "cat",
		Team1ChannelID: "red",
		Team2ChannelID: "blue",
	}
	s.testTeam1 = []string{"a", "b"}
	s.testTeam2 = []string{"c", "d"}

	svc, err := New(&Config{
		Rooms: s.mockRooms,
		Pacer: pacer.New(nil),
	})
	s.Require().NoError(err)
	s.voiceService = svc
}

func (s *VoiceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoiceServiceSuite(t *testing.T) {
	suite.Run(t, new(VoiceServiceTestSuite))
}

func (s *VoiceServiceTestSuite) expectRoomsCreated() {
	gomock.InOrder(
		s.mockRooms.EXPECT().CreateCategory(gomock.Any(), s.testGuildID, "Game - Lobby").
			Return(&models.Channel{ID: "cat", GuildID: s.testGuildID, Name: "Game - Lobby"}, nil),
		s.mockRooms.EXPECT().CreateVoiceChannel(gomock.Any(), s.testGuildID, "cat", "🔴 Team 1").
			Return(&models.Channel{ID: "red", ParentID: "cat"}, nil),
		s.mockRooms.EXPECT().CreateVoiceChannel(gomock.Any(), s.testGuildID, "cat", "🔵 Team 2").
			Return(&models.Channel{ID: "blue", ParentID: "cat"}, nil),
	)
}

func (s *VoiceServiceTestSuite) provisionInput() *ProvisionInput {
	return &ProvisionInput{
		GuildID:     s.testGuildID,
		ChannelName: "Lobby",
		Team1:       s.testTeam1,
		Team2:       s.testTeam2,
	}
}

func (s *VoiceServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Pacer: pacer.New(nil)})
	s.ErrorIs(err, ErrNilRooms)

	_, err = New(&Config{Rooms: s.mockRooms})
	s.ErrorIs(err, ErrNilPacer)
}

func (s *VoiceServiceTestSuite) TestProvisionMovesConnectedPlayers() {
	s.expectRoomsCreated()

	s.mockRooms.EXPECT().MemberChannel(gomock.Any(), s.testGuildID, "a").Return("lobby", nil)
	s.mockRooms.EXPECT().MemberChannel(gomock.Any(), s.testGuildID, "b").Return("", nil)
	s.mockRooms.EXPECT().MemberChannel(gomock.Any(), s.testGuildID, "c").Return("lobby", nil)
	s.mockRooms.EXPECT().MemberChannel(gomock.Any(), s.testGuildID, "d").Return("lobby", nil)

	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "a", "red").Return(nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "c", "blue").Return(nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "d", "blue").Return(errors.New("missing permissions"))

	out, err := s.voiceService.Provision(s.ctx, s.provisionInput())
	s.Require().NoError(err)
	s.Equal(s.testRooms, out.Rooms)
	s.Equal(2, out.Moved)
	s.Equal(1, out.Skipped)
	s.Equal(1, out.MoveFailures)
}

func (s *VoiceServiceTestSuite) TestProvisionCategoryFailure() {
	s.mockRooms.EXPECT().CreateCategory(gomock.Any(), s.testGuildID, "Game - Lobby").
		Return(nil, errors.New("forbidden"))

	out, err := s.voiceService.Provision(s.ctx, s.provisionInput())
	s.ErrorIs(err, ErrProvisionFailed)
	s.Nil(out)
}

func (s *VoiceServiceTestSuite) TestProvisionCompensatesPartialCreation() {
	gomock.InOrder(
		s.mockRooms.EXPECT().CreateCategory(gomock.Any(), s.testGuildID, "Game - Lobby").
			Return(&models.Channel{ID: "cat"}, nil),
		s.mockRooms.EXPECT().CreateVoiceChannel(gomock.Any(), s.testGuildID, "cat", "🔴 Team 1").
			Return(&models.Channel{ID: "red"}, nil),
		s.mockRooms.EXPECT().CreateVoiceChannel(gomock.Any(), s.testGuildID, "cat", "🔵 Team 2").
			Return(nil, errors.New("channel limit reached")),
		s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "red").Return(nil),
		s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "cat").Return(nil),
	)

	out, err := s.voiceService.Provision(s.ctx, s.provisionInput())
	s.ErrorIs(err, ErrProvisionFailed)
	s.Nil(out)
}

func (s *VoiceServiceTestSuite) TestProvisionInvalidInput() {
	_, err := s.voiceService.Provision(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.voiceService.Provision(s.ctx, &ProvisionInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *VoiceServiceTestSuite) TestTeardownRelocatesToFallback() {
	s.mockRooms.EXPECT().ListVoiceChannels(gomock.Any(), s.testGuildID).Return([]*models.Channel{
		{ID: "red", ParentID: "cat", Name: "🔴 Team 1"},
		{ID: "other-red", ParentID: "other-cat", Name: "🔴 Team 1"},
		{ID: "afk", ParentID: "cat", Name: "Somehow inside"},
		{ID: "general", Name: "General"},
		{ID: "music", Name: "Music"},
	}, nil)

	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "red").Return([]string{"a"}, nil)
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "blue").Return([]string{"c", "d"}, nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "a", "general").Return(nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "c", "general").Return(nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "d", "general").Return(nil)

	gomock.InOrder(
		s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "red").Return(nil),
		s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "blue").Return(nil),
		s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "cat").Return(nil),
	)

	out, err := s.voiceService.Teardown(s.ctx, &TeardownInput{GuildID: s.testGuildID, Rooms: s.testRooms})
	s.Require().NoError(err)
	s.Equal("general", out.FallbackChannelID)
	s.Equal(3, out.Relocated)
	s.Zero(out.Disconnected)
	s.Empty(out.Errors)
}

func (s *VoiceServiceTestSuite) TestTeardownDisconnectsWithoutFallback() {
	s.mockRooms.EXPECT().ListVoiceChannels(gomock.Any(), s.testGuildID).Return([]*models.Channel{
		{ID: "red", ParentID: "cat", Name: "🔴 Team 1"},
		{ID: "blue", ParentID: "cat", Name: "🔵 Team 2"},
	}, nil)

	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "red").Return([]string{"a"}, nil)
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "blue").Return(nil, nil)
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "a", "").Return(nil)
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	out, err := s.voiceService.Teardown(s.ctx, &TeardownInput{GuildID: s.testGuildID, Rooms: s.testRooms})
	s.Require().NoError(err)
	s.Empty(out.FallbackChannelID)
	s.Equal(1, out.Disconnected)
	s.Empty(out.Errors)
}

func (s *VoiceServiceTestSuite) TestTeardownToleratesMissingRooms() {
	s.mockRooms.EXPECT().ListVoiceChannels(gomock.Any(), s.testGuildID).Return(nil, nil)
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "red").Return(nil, platform.ErrNotFound)
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "blue").Return(nil, platform.ErrNotFound)
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), gomock.Any()).Return(platform.ErrNotFound).Times(3)

	out, err := s.voiceService.Teardown(s.ctx, &TeardownInput{GuildID: s.testGuildID, Rooms: s.testRooms})
	s.Require().NoError(err)
	s.Empty(out.Errors)
}

func (s *VoiceServiceTestSuite) TestTeardownContinuesAfterFailures() {
	s.mockRooms.EXPECT().ListVoiceChannels(gomock.Any(), s.testGuildID).Return(nil, errors.New("gateway down"))
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "red").Return([]string{"a", "b"}, nil)
	s.mockRooms.EXPECT().ChannelMembers(gomock.Any(), s.testGuildID, "blue").Return(nil, errors.New("timeout"))
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "a", "").Return(errors.New("rate limited"))
	s.mockRooms.EXPECT().MoveMember(gomock.Any(), s.testGuildID, "b", "").Return(nil)
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "red").Return(errors.New("forbidden"))
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "blue").Return(nil)
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "cat").Return(nil)

	out, err := s.voiceService.Teardown(s.ctx, &TeardownInput{GuildID: s.testGuildID, Rooms: s.testRooms})
	s.Require().NoError(err)
	s.Equal(1, out.Disconnected)
	s.Len(out.Errors, 4)
}

func (s *VoiceServiceTestSuite) TestTeardownSkipsMissingHandles() {
	s.mockRooms.EXPECT().ListVoiceChannels(gomock.Any(), s.testGuildID).Return(nil, nil)
	s.mockRooms.EXPECT().DeleteChannel(gomock.Any(), "cat").Return(nil)

	out, err := s.voiceService.Teardown(s.ctx, &TeardownInput{
		GuildID: s.testGuildID,
		Rooms:   models.GameRooms{CategoryID: "cat"},
	})
	s.Require().NoError(err)
	s.Empty(out.Errors)
}
