package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/squadup/internal/common/clock/mocks"
	"github.com/KirkDiggler/squadup/internal/models"
	platformMocks "github.com/KirkDiggler/squadup/internal/platform/mocks"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	gamelogMocks "github.com/KirkDiggler/squadup/internal/repositories/gamelog/mocks"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	statsMocks "github.com/KirkDiggler/squadup/internal/repositories/stats/mocks"
	"github.com/KirkDiggler/squadup/internal/services/voice"
	voiceMocks "github.com/KirkDiggler/squadup/internal/services/voice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGameLog   *gamelogMocks.MockRepository
	mockStats     *statsMocks.MockRepository
	mockVoice     *voiceMocks.MockService
	mockClock     *mocks.MockClock
	mockMessenger *platformMocks.MockMessenger
	gameService   Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testGuildID string
	testRooms   models.GameRooms
	testTeam1   []*models.Member
	testTeam2   []*models.Member

	// Reusable test inputs
	startGameInput *StartGameInput
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameLog = gamelogMocks.NewMockRepository(s.mockCtrl)
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockVoice = voiceMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockMessenger = platformMocks.NewMockMessenger(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	s.testGuildID = "guild"
	s.testRooms = models.GameRooms{CategoryID: "cat", Team1ChannelID: "red", Team2ChannelID: "blue"}
	s.testTeam1 = []*models.Member{{ID: "a", DisplayName: "Ada"}, {ID: "b", DisplayName: "Bo"}}
	s.testTeam2 = []*models.Member{{ID: "c", DisplayName: "Cyd"}, {ID: "d", DisplayName: "Dee"}}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.startGameInput = &StartGameInput{
		GuildID:          s.testGuildID,
		VoiceChannelName: "Lobby",
		Team1:            s.testTeam1,
		Team2:            s.testTeam2,
		StartedBy:        "a",
	}

	svc, err := New(&Config{
		GameLogRepo: s.mockGameLog,
		StatsRepo:   s.mockStats,
		Voice:       s.mockVoice,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) expectProvision() {
	s.mockVoice.EXPECT().Provision(gomock.Any(), &voice.ProvisionInput{
		GuildID:     s.testGuildID,
		ChannelName: "Lobby",
		Team1:       []string{"a", "b"},
		Team2:       []string{"c", "d"},
	}).Return(&voice.ProvisionOutput{Rooms: s.testRooms, Moved: 3, Skipped: 1}, nil)
}

// startGame registers game number n
func (s *GameServiceTestSuite) startGame(n uint64) *models.ActiveGame {
	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(n, nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.Require().NoError(err)
	return out.Game
}

func (s *GameServiceTestSuite) expectTeardown() {
	s.mockVoice.EXPECT().Teardown(gomock.Any(), &voice.TeardownInput{
		GuildID: s.testGuildID,
		Rooms:   s.testRooms,
	}).Return(&voice.TeardownOutput{}, nil)
}

func (s *GameServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{StatsRepo: s.mockStats, Voice: s.mockVoice, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilGameLogRepo)

	_, err = New(&Config{GameLogRepo: s.mockGameLog, Voice: s.mockVoice, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilStatsRepo)

	_, err = New(&Config{GameLogRepo: s.mockGameLog, StatsRepo: s.mockStats, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilVoiceService)

	_, err = New(&Config{GameLogRepo: s.mockGameLog, StatsRepo: s.mockStats, Voice: s.mockVoice})
	s.ErrorIs(err, ErrNilClock)
}

func (s *GameServiceTestSuite) TestStartGame() {
	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(7), nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), &gamelogRepo.AppendStartInput{Entry: &models.GameLogEntry{
		GameNumber: 7,
		Timestamp:  s.testTime,
		Status:     models.GameStatusStarted,
		Team1:      []models.LogPlayer{{ID: "a", Name: "Ada"}, {ID: "b", Name: "Bo"}},
		Team2:      []models.LogPlayer{{ID: "c", Name: "Cyd"}, {ID: "d", Name: "Dee"}},
	}}).Return(nil)

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.Require().NoError(err)
	s.Empty(out.Warnings)
	s.Equal(3, out.Moved)
	s.Equal(1, out.Skipped)

	expected := &models.ActiveGame{
		ID:               "guild_7",
		GameNumber:       7,
		GuildID:          s.testGuildID,
		Team1:            []string{"a", "b"},
		Team2:            []string{"c", "d"},
		Rooms:            s.testRooms,
		StartedBy:        "a",
		VoiceChannelName: "Lobby",
		StartedAt:        s.testTime,
	}
	s.Equal(expected, out.Game)

	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "guild_7"})
	s.Require().NoError(err)
	s.Equal(expected, got.Game)
}

func (s *GameServiceTestSuite) TestStartGameProvisionFailure() {
	s.mockVoice.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(nil, voice.ErrProvisionFailed)

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.ErrorIs(err, voice.ErrProvisionFailed)
	s.Nil(out)

	list, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Empty(list.Games)
}

func (s *GameServiceTestSuite) TestStartGameCounterFailureTearsDownRooms() {
	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(0), errors.New("disk full"))
	s.expectTeardown()

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.Error(err)
	s.Nil(out)

	list, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Empty(list.Games)
}

func (s *GameServiceTestSuite) TestStartGameLogFailureStillRegisters() {
	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(3), nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.Require().NoError(err)
	s.Len(out.Warnings, 1)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "guild_3"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestStartGameLogsBeforeRegistering() {
	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(4), nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *gamelogRepo.AppendStartInput) error {
			// nothing can end the game until its started entry exists
			_, err := s.gameService.GetGame(ctx, &GetGameInput{GameID: "guild_4"})
			s.ErrorIs(err, ErrGameNotFound)
			_, err = s.gameService.EndGame(ctx, &EndGameInput{GameID: "guild_4", Outcome: models.OutcomeTeam1Wins})
			s.ErrorIs(err, ErrGameNotFound)
			return nil
		})

	out, err := s.gameService.StartGame(s.ctx, s.startGameInput)
	s.Require().NoError(err)
	s.Empty(out.Warnings)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "guild_4"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestStartGameValidation() {
	tests := []struct {
		name     string
		input    *StartGameInput
		expected error
	}{
		{name: "nil", input: nil, expected: ErrEmptyTeam},
		{name: "no guild", input: &StartGameInput{Team1: s.testTeam1, Team2: s.testTeam2}, expected: ErrInvalidGuild},
		{name: "empty team", input: &StartGameInput{GuildID: "g", Team1: s.testTeam1}, expected: ErrEmptyTeam},
		{name: "overlap", input: &StartGameInput{GuildID: "g", Team1: s.testTeam1, Team2: s.testTeam1[:1]}, expected: ErrTeamsOverlap},
		{name: "empty member id", input: &StartGameInput{GuildID: "g", Team1: s.testTeam1, Team2: []*models.Member{{DisplayName: "Nobody"}}}, expected: ErrEmptyMemberID},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.gameService.StartGame(s.ctx, tt.input)
			s.ErrorIs(err, tt.expected)
		})
	}
}

func (s *GameServiceTestSuite) TestEndGameTeam1Wins() {
	game := s.startGame(1)

	gomock.InOrder(
		s.mockStats.EXPECT().RecordResult(gomock.Any(), &statsRepo.RecordResultInput{
			Winners: []string{"a", "b"},
			Losers:  []string{"c", "d"},
		}).Return(nil),
		s.mockGameLog.EXPECT().Finalize(gomock.Any(), &gamelogRepo.FinalizeInput{
			GameNumber: 1,
			Outcome:    models.OutcomeTeam1Wins,
			EndedAt:    s.testTime,
		}).Return(&models.GameLogEntry{GameNumber: 1, Status: models.GameStatusCompleted}, nil),
		s.mockVoice.EXPECT().Teardown(gomock.Any(), gomock.Any()).Return(&voice.TeardownOutput{}, nil),
	)

	out, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam1Wins})
	s.Require().NoError(err)
	s.Empty(out.Warnings)
	s.Equal(game.ID, out.Game.ID)
	s.Require().NotNil(out.Entry)
	s.Equal(models.GameStatusCompleted, out.Entry.Status)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.ErrorIs(err, ErrGameNotFound)

	// a second press is rejected without touching anything
	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam2Wins})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestEndGameTeam2Wins() {
	game := s.startGame(1)

	s.mockStats.EXPECT().RecordResult(gomock.Any(), &statsRepo.RecordResultInput{
		Winners: []string{"c", "d"},
		Losers:  []string{"a", "b"},
	}).Return(nil)
	s.mockGameLog.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(&models.GameLogEntry{GameNumber: 1}, nil)
	s.expectTeardown()

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam2Wins})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestEndGameCancelledSkipsStats() {
	game := s.startGame(1)

	s.mockGameLog.EXPECT().Finalize(gomock.Any(), &gamelogRepo.FinalizeInput{
		GameNumber: 1,
		Outcome:    models.OutcomeCancelled,
		EndedAt:    s.testTime,
	}).Return(&models.GameLogEntry{GameNumber: 1, Status: models.GameStatusCancelled}, nil)
	s.expectTeardown()

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeCancelled})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestEndGameUnknown() {
	out, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: "guild_99", Outcome: models.OutcomeTeam1Wins})
	s.ErrorIs(err, ErrGameNotFound)
	s.Nil(out)
}

func (s *GameServiceTestSuite) TestEndGameInvalidOutcome() {
	game := s.startGame(1)

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.Outcome(9)})
	s.ErrorIs(err, ErrInvalidOutcome)

	// still active
	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestEndGameContinuesAfterFailures() {
	game := s.startGame(1)

	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	s.mockGameLog.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
	s.mockVoice.EXPECT().Teardown(gomock.Any(), gomock.Any()).Return(&voice.TeardownOutput{
		Errors: []error{errors.New("forbidden")},
	}, nil)

	out, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam1Wins})
	s.Require().NoError(err)
	s.Len(out.Warnings, 3)
	s.Nil(out.Entry)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestEndGameConcurrentCallsFinalizeOnce() {
	game := s.startGame(1)

	release := make(chan struct{})
	entered := make(chan struct{})
	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *statsRepo.RecordResultInput) error {
			close(entered)
			<-release
			return nil
		}).Times(1)
	s.mockGameLog.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(&models.GameLogEntry{GameNumber: 1}, nil).Times(1)
	s.expectTeardown()

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam1Wins})
	}()

	<-entered

	// mid-finalization the game is still visible but cannot be ended again
	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Equal(game.ID, got.Game.ID)

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{GameID: game.ID, Outcome: models.OutcomeTeam2Wins})
	s.ErrorIs(err, ErrGameNotFound)

	close(release)
	wg.Wait()
	s.NoError(firstErr)
}

func (s *GameServiceTestSuite) TestListGames() {
	s.startGame(2)
	s.startGame(1)

	otherGuild := *s.startGameInput
	otherGuild.GuildID = "other"
	s.mockVoice.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(&voice.ProvisionOutput{Rooms: s.testRooms}, nil)
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(3), nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), gomock.Any()).Return(nil)
	_, err := s.gameService.StartGame(s.ctx, &otherGuild)
	s.Require().NoError(err)

	all, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Games, 3)
	s.Equal([]uint64{1, 2, 3}, []uint64{all.Games[0].GameNumber, all.Games[1].GameNumber, all.Games[2].GameNumber})

	guild, err := s.gameService.ListGames(s.ctx, &ListGamesInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Len(guild.Games, 2)
}

func (s *GameServiceTestSuite) TestReturnedGamesAreCopies() {
	game := s.startGame(1)
	game.Team1[0] = "mallory"

	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Equal("a", got.Game.Team1[0])
}

func (s *GameServiceTestSuite) TestAnnouncements() {
	svc, err := New(&Config{
		GameLogRepo:  s.mockGameLog,
		StatsRepo:    s.mockStats,
		Voice:        s.mockVoice,
		Clock:        s.mockClock,
		Messenger:    s.mockMessenger,
		LogChannelID: "log",
	})
	s.Require().NoError(err)

	s.expectProvision()
	s.mockGameLog.EXPECT().NextGameNumber(gomock.Any()).Return(uint64(5), nil)
	s.mockGameLog.EXPECT().AppendStart(gomock.Any(), gomock.Any()).Return(nil)

	var notices []*models.Notice
	s.mockMessenger.EXPECT().SendChannelMessage(gomock.Any(), "log", gomock.Any()).DoAndReturn(
		func(ctx context.Context, channelID string, notice *models.Notice) error {
			notices = append(notices, notice)
			return nil
		}).Times(2)

	started, err := svc.StartGame(s.ctx, s.startGameInput)
	s.Require().NoError(err)

	winner := 2
	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(nil)
	s.mockGameLog.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(&models.GameLogEntry{
		GameNumber: 5,
		Status:     models.GameStatusCompleted,
		Winner:     &winner,
		Team1:      []models.LogPlayer{{ID: "a", Name: "Ada"}},
		Team2:      []models.LogPlayer{{ID: "c", Name: "Cyd"}},
	}, nil)
	s.expectTeardown()

	_, err = svc.EndGame(s.ctx, &EndGameInput{GameID: started.Game.ID, Outcome: models.OutcomeTeam2Wins})
	s.Require().NoError(err)

	s.Require().Len(notices, 2)
	s.Equal("🎮 Game #5 Started", notices[0].Title)
	s.Equal("Ada\nBo", notices[0].Fields[0].Value)
	s.Equal("🎉 Game #5 Completed - Team 2 Wins!", notices[1].Title)
	s.Equal("🏆 Winner", notices[1].Fields[2].Name)
	s.Equal("Team 2", notices[1].Fields[2].Value)
}
