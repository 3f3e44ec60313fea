package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/squadup/internal/common/clock/mocks"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	platformMocks "github.com/KirkDiggler/squadup/internal/platform/mocks"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	gamelogMocks "github.com/KirkDiggler/squadup/internal/repositories/gamelog/mocks"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	statsMocks "github.com/KirkDiggler/squadup/internal/repositories/stats/mocks"
	"github.com/KirkDiggler/squadup/internal/services/draft"
	draftMocks "github.com/KirkDiggler/squadup/internal/services/draft/mocks"
	"github.com/KirkDiggler/squadup/internal/services/game"
	gameMocks "github.com/KirkDiggler/squadup/internal/services/game/mocks"
	"github.com/KirkDiggler/squadup/internal/services/matchmaking"
	matchmakingMocks "github.com/KirkDiggler/squadup/internal/services/matchmaking/mocks"
	"github.com/KirkDiggler/squadup/internal/services/profile"
	profileMocks "github.com/KirkDiggler/squadup/internal/services/profile/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeResponder records what the handlers send back
type fakeResponder struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	followups []*discordgo.WebhookParams
	sent      map[string][]*discordgo.MessageSend
	sendErr   error
}

func newFakeResponder() *fakeResponder {
	return &fakeResponder{sent: make(map[string][]*discordgo.MessageSend)}
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, params *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, params)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent[channelID] = append(f.sent[channelID], data)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) lastResponse() *discordgo.InteractionResponse {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

func (f *fakeResponder) lastEditContent() string {
	if len(f.edits) == 0 || f.edits[len(f.edits)-1].Content == nil {
		return ""
	}
	return *f.edits[len(f.edits)-1].Content
}

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockDrafts      *draftMocks.MockService
	mockGames       *gameMocks.MockService
	mockProfiles    *profileMocks.MockService
	mockMatchmaking *matchmakingMocks.MockService
	mockStats       *statsMocks.MockRepository
	mockGameLog     *gamelogMocks.MockRepository
	mockVoice       *platformMocks.MockVoiceRooms
	mockMembers     *platformMocks.MockMemberDirectory
	mockMessenger   *platformMocks.MockMessenger
	mockHistory     *platformMocks.MockChannelHistory
	mockClock       *clockMocks.MockClock
	handler         *Handler
	responder       *fakeResponder
	ctx             context.Context

	testTime    time.Time
	testGuildID string
	adminID     string
	managerRole string
	hostRole    string
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrafts = draftMocks.NewMockService(s.mockCtrl)
	s.mockGames = gameMocks.NewMockService(s.mockCtrl)
	s.mockProfiles = profileMocks.NewMockService(s.mockCtrl)
	s.mockMatchmaking = matchmakingMocks.NewMockService(s.mockCtrl)
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockGameLog = gamelogMocks.NewMockRepository(s.mockCtrl)
	s.mockVoice = platformMocks.NewMockVoiceRooms(s.mockCtrl)
	s.mockMembers = platformMocks.NewMockMemberDirectory(s.mockCtrl)
	s.mockMessenger = platformMocks.NewMockMessenger(s.mockCtrl)
	s.mockHistory = platformMocks.NewMockChannelHistory(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.responder = newFakeResponder()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	s.testGuildID = "guild-1"
	s.adminID = "900"
	s.managerRole = "mgmt-role"
	s.hostRole = "host-role"

	s.handler = s.newHandler(false)
}

func (s *HandlerTestSuite) newHandler(requireWhitelist bool) *Handler {
	return s.newHandlerWithChannels(requireWhitelist, Channels{
		Drafts:      "drafts-chan",
		Find:        "find-chan",
		Stats:       "stats-chan",
		Leaderboard: "board-chan",
	})
}

func (s *HandlerTestSuite) newHandlerWithChannels(requireWhitelist bool, channels Channels) *Handler {
	h, err := NewHandler(&HandlerConfig{
		Drafts:      s.mockDrafts,
		Games:       s.mockGames,
		Profiles:    s.mockProfiles,
		Matchmaking: s.mockMatchmaking,
		Stats:       s.mockStats,
		GameLog:     s.mockGameLog,
		Voice:       s.mockVoice,
		Members:     s.mockMembers,
		Messenger:   s.mockMessenger,
		History:     s.mockHistory,
		Clock:       s.mockClock,
		Channels:    channels,

		ManagementRoleID: s.managerRole,
		HostRoleID:       s.hostRole,
		AdminUserID:      s.adminID,
		RequireWhitelist: requireWhitelist,
		MinPlayers:       2,
	})
	s.Require().NoError(err)
	return h
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) member(userID, name string, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: userID, Username: name},
		Roles: roles,
	}
}

func (s *HandlerTestSuite) component(customID string, m *discordgo.Member) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: s.testGuildID,
		Member:  m,
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func (s *HandlerTestSuite) modal(customID string, m *discordgo.Member, values map[string]string) *discordgo.InteractionCreate {
	var rows []discordgo.MessageComponent
	for id, v := range values {
		rows = append(rows, &discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.TextInput{CustomID: id, Value: v},
		}})
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionModalSubmit,
		GuildID: s.testGuildID,
		Member:  m,
		Data:    discordgo.ModalSubmitInteractionData{CustomID: customID, Components: rows},
	}}
}

func (s *HandlerTestSuite) command(m *discordgo.Member, sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: s.testGuildID,
		Member:  m,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "squad",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: sub, Options: options},
			},
		},
	}}
}

func (s *HandlerTestSuite) assertEphemeral(content string) {
	resp := s.responder.lastResponse()
	s.Require().NotNil(resp)
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal(content, resp.Data.Content)
}

func (s *HandlerTestSuite) responseTitle() string {
	resp := s.responder.lastResponse()
	s.Require().NotNil(resp)
	s.Require().NotNil(resp.Data)
	s.Require().Len(resp.Data.Embeds, 1)
	return resp.Data.Embeds[0].Title
}

func (s *HandlerTestSuite) testDraft() *models.Draft {
	return &models.Draft{
		ID:               "draft-1",
		GuildID:          s.testGuildID,
		VoiceChannelID:   "vc-1",
		VoiceChannelName: "Lobby",
		RequestedBy:      "1",
		Team1:            []*models.Member{{ID: "1", DisplayName: "ann"}},
		Team2:            []*models.Member{{ID: "2", DisplayName: "bo"}},
		CreatedAt:        s.testTime,
		ExpiresAt:        s.testTime.Add(5 * time.Minute),
	}
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := NewHandler(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewHandler(&HandlerConfig{Drafts: s.mockDrafts})
	s.ErrorIs(err, ErrNilGameService)
}

func (s *HandlerTestSuite) TestNewHandlerRequiresHistory() {
	_, err := NewHandler(&HandlerConfig{
		Drafts:      s.mockDrafts,
		Games:       s.mockGames,
		Profiles:    s.mockProfiles,
		Matchmaking: s.mockMatchmaking,
		Stats:       s.mockStats,
		GameLog:     s.mockGameLog,
		Voice:       s.mockVoice,
		Members:     s.mockMembers,
		Messenger:   s.mockMessenger,
		Clock:       s.mockClock,
	})
	s.ErrorIs(err, ErrNilChannelHistory)
}

func (s *HandlerTestSuite) TestCreateGameNotInVoice() {
	s.mockVoice.EXPECT().MemberChannel(s.ctx, s.testGuildID, "1").Return("", nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonCreateGame, s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgNotInVoice)
}

func (s *HandlerTestSuite) TestCreateGame() {
	ann := &models.Member{ID: "1", DisplayName: "ann", Username: "ann"}
	bo := &models.Member{ID: "2", DisplayName: "bo", Username: "bo"}

	s.mockVoice.EXPECT().MemberChannel(s.ctx, s.testGuildID, "1").Return("vc-1", nil)
	s.mockVoice.EXPECT().ChannelMembers(s.ctx, s.testGuildID, "vc-1").Return([]string{"1", "2", "bot", "gone"}, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "1").Return(ann, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "2").Return(bo, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "bot").Return(&models.Member{ID: "bot", Bot: true}, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "gone").Return(nil, platform.ErrNotFound)
	s.mockVoice.EXPECT().ListVoiceChannels(s.ctx, s.testGuildID).Return([]*models.Channel{
		{ID: "vc-0", Name: "AFK"},
		{ID: "vc-1", Name: "Lobby"},
	}, nil)
	s.mockDrafts.EXPECT().CreateDraft(s.ctx, &draft.CreateDraftInput{
		GuildID:          s.testGuildID,
		VoiceChannelID:   "vc-1",
		VoiceChannelName: "Lobby",
		RequestedBy:      "1",
		Participants:     []*models.Member{ann, bo},
	}).Return(&draft.CreateDraftOutput{Draft: s.testDraft()}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonCreateGame, s.member("1", "ann")))
	s.NoError(err)
	s.Equal("🎮 Game Draft Created", s.responseTitle())

	resp := s.responder.lastResponse()
	s.Zero(resp.Data.Flags)
	s.Len(resp.Data.Components, 1)
}

func (s *HandlerTestSuite) TestCreateGameTooFewPlayers() {
	s.mockVoice.EXPECT().MemberChannel(s.ctx, s.testGuildID, "1").Return("vc-1", nil)
	s.mockVoice.EXPECT().ChannelMembers(s.ctx, s.testGuildID, "vc-1").Return([]string{"1"}, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "1").Return(&models.Member{ID: "1"}, nil)
	s.mockVoice.EXPECT().ListVoiceChannels(s.ctx, s.testGuildID).Return(nil, errors.New("boom"))
	s.mockDrafts.EXPECT().CreateDraft(s.ctx, gomock.Any()).Return(nil, draft.ErrNotEnoughPlayers)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonCreateGame, s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral("❌ You need at least 2 players to start a game!")
}

func (s *HandlerTestSuite) TestCreateGameRequiresWhitelist() {
	h := s.newHandler(true)
	s.mockProfiles.EXPECT().IsWhitelisted(s.ctx, &profile.IsWhitelistedInput{UserID: "1"}).Return(false, nil)

	err := h.Handle(s.ctx, s.responder, s.component(ButtonCreateGame, s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgNotWhitelisted)
}

func (s *HandlerTestSuite) TestRerollExpiredDraft() {
	s.mockDrafts.EXPECT().RerollDraft(s.ctx, &draft.RerollDraftInput{DraftID: "draft-1"}).Return(nil, draft.ErrDraftExpired)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftReroll, "draft-1"), s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgDraftExpired)
}

func (s *HandlerTestSuite) TestRerollDraft() {
	s.mockDrafts.EXPECT().RerollDraft(s.ctx, &draft.RerollDraftInput{DraftID: "draft-1"}).
		Return(&draft.RerollDraftOutput{Draft: s.testDraft()}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftReroll, "draft-1"), s.member("1", "ann")))
	s.NoError(err)
	s.Equal(discordgo.InteractionResponseUpdateMessage, s.responder.lastResponse().Type)
	s.Equal("🎮 Teams Rerolled!", s.responseTitle())
}

func (s *HandlerTestSuite) TestCancelDraft() {
	s.mockDrafts.EXPECT().CancelDraft(s.ctx, &draft.CancelDraftInput{DraftID: "draft-1"}).Return(draft.ErrDraftNotFound)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftCancel, "draft-1"), s.member("1", "ann")))
	s.NoError(err)
	s.Equal("❌ Draft Cancelled", s.responseTitle())
	s.Empty(s.responder.lastResponse().Data.Components)
}

func (s *HandlerTestSuite) TestStartGame() {
	d := s.testDraft()
	s.mockDrafts.EXPECT().TakeDraft(s.ctx, &draft.TakeDraftInput{DraftID: "draft-1"}).Return(&draft.TakeDraftOutput{Draft: d}, nil)
	s.mockGames.EXPECT().StartGame(s.ctx, &game.StartGameInput{
		GuildID:          s.testGuildID,
		VoiceChannelName: "Lobby",
		Team1:            d.Team1,
		Team2:            d.Team2,
		StartedBy:        "2",
	}).Return(&game.StartGameOutput{
		Game: &models.ActiveGame{ID: "guild-1_5", GameNumber: 5, Team1: []string{"1"}, Team2: []string{"2"}},
		Moved: 2,
	}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftStart, "draft-1"), s.member("2", "bo")))
	s.NoError(err)

	s.Equal(discordgo.InteractionResponseDeferredMessageUpdate, s.responder.lastResponse().Type)
	s.Require().Len(s.responder.edits, 1)
	embeds := *s.responder.edits[0].Embeds
	s.Require().Len(embeds, 1)
	s.Equal("🎮 Game #5 Started!", embeds[0].Title)
}

func (s *HandlerTestSuite) TestStartGameFailure() {
	s.mockDrafts.EXPECT().TakeDraft(s.ctx, gomock.Any()).Return(&draft.TakeDraftOutput{Draft: s.testDraft()}, nil)
	s.mockGames.EXPECT().StartGame(s.ctx, gomock.Any()).Return(nil, errors.New("no permission"))

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftStart, "draft-1"), s.member("2", "bo")))
	s.NoError(err)
	s.Require().Len(s.responder.followups, 1)
	s.Equal(msgStartFailed, s.responder.followups[0].Content)
	s.Empty(s.responder.edits)
}

func (s *HandlerTestSuite) TestStartExpiredDraft() {
	s.mockDrafts.EXPECT().TakeDraft(s.ctx, gomock.Any()).Return(nil, draft.ErrDraftNotFound)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionDraftStart, "draft-1"), s.member("2", "bo")))
	s.NoError(err)
	s.assertEphemeral(msgDraftExpired)
}

func (s *HandlerTestSuite) TestEndGame() {
	s.mockGames.EXPECT().EndGame(s.ctx, &game.EndGameInput{
		GameID:  "guild-1_5",
		Outcome: models.OutcomeTeam1Wins,
		EndedBy: "1",
	}).Return(&game.EndGameOutput{Game: &models.ActiveGame{GameNumber: 5}}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionGameEnd, "guild-1_5", "1"), s.member("1", "ann")))
	s.NoError(err)
	s.Require().Len(s.responder.edits, 1)
	embeds := *s.responder.edits[0].Embeds
	s.Require().Len(embeds, 1)
	s.Equal("🎉 Team 1 Wins!", embeds[0].Title)
	s.Empty(*s.responder.edits[0].Components)
}

func (s *HandlerTestSuite) TestEndGameAlreadyEnded() {
	s.mockGames.EXPECT().EndGame(s.ctx, gomock.Any()).Return(nil, game.ErrGameNotFound)

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionGameEnd, "guild-1_5", "0"), s.member("1", "ann")))
	s.NoError(err)
	s.Require().Len(s.responder.followups, 1)
	s.Equal(msgGameGone, s.responder.followups[0].Content)
}

func (s *HandlerTestSuite) TestMalformedComponentIDs() {
	for _, id := range []string{
		EncodeID(ActionGameEnd, "guild-1_5"),
		EncodeID(ActionGameEnd, "guild-1_5", "9"),
		EncodeID(ActionDraftStart),
	} {
		err := s.handler.Handle(s.ctx, s.responder, s.component(id, s.member("1", "ann")))
		s.ErrorIs(err, ErrMalformedCustomID, id)
	}

	err := s.handler.Handle(s.ctx, s.responder, s.component("nope", s.member("1", "ann")))
	s.ErrorIs(err, ErrUnknownInteraction)
	s.Empty(s.responder.responses)
}

func (s *HandlerTestSuite) TestViewGames() {
	s.mockGames.EXPECT().ListGames(s.ctx, &game.ListGamesInput{GuildID: s.testGuildID}).
		Return(&game.ListGamesOutput{}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonViewGames, s.member("1", "ann")))
	s.NoError(err)
	s.Equal("🎮 Active Games", s.responseTitle())
	s.Equal(discordgo.MessageFlagsEphemeral, s.responder.lastResponse().Data.Flags)
}

func (s *HandlerTestSuite) TestFindRegion() {
	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionFindRegion, "central"), s.member("1", "ann")))
	s.NoError(err)
	s.Equal("🌇 Central Region Locations", s.responseTitle())

	err = s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionFindRegion, "south"), s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgInvalidRegion)
}

func (s *HandlerTestSuite) TestFindLocation() {
	s.mockMatchmaking.EXPECT().FindPlayers(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchmaking.FindPlayersInput) (*matchmaking.FindPlayersOutput, error) {
			s.Equal("east", input.Region)
			s.Equal("ohio", input.Location)
			s.Equal("the server", input.GuildName)
			s.Equal("1", input.Requester.ID)
			input.OnTargeted(3)
			return &matchmaking.FindPlayersOutput{Targeted: 3, Delivered: 2, Failed: 1}, nil
		})

	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionFindLocation, "ohio"), s.member("1", "ann")))
	s.NoError(err)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.responder.lastResponse().Type)
	s.Equal("🌅 Looking for players in the **East (Ohio)** region...\nSending DMs to 3 players!", s.responder.lastEditContent())
}

func (s *HandlerTestSuite) TestFindLocationErrors() {
	tests := []struct {
		err      error
		expected string
	}{
		{err: matchmaking.ErrNoPlayersInRegion, expected: "❌ No players found in the West region."},
		{err: matchmaking.ErrRoleNotFound, expected: msgRoleNotFound},
		{err: errors.New("gateway down"), expected: msgFindFailed},
	}

	for _, tt := range tests {
		s.mockMatchmaking.EXPECT().FindPlayers(s.ctx, gomock.Any()).Return(nil, tt.err)

		err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionFindLocation, "quincy"), s.member("1", "ann")))
		s.NoError(err)
		s.Equal(tt.expected, s.responder.lastEditContent())
	}
}

func (s *HandlerTestSuite) TestMyStats() {
	s.mockStats.EXPECT().GetStats(s.ctx, &statsRepo.GetStatsInput{UserID: "1"}).
		Return(&models.PlayerStats{UserID: "1", GamesPlayed: 2, Wins: 1, Losses: 1}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonMyStats, s.member("1", "ann")))
	s.NoError(err)
	s.Equal("📊 Stats for ann", s.responseTitle())
	s.Len(s.responder.lastResponse().Data.Embeds[0].Fields, 4)
}

func (s *HandlerTestSuite) TestPostLeaderboard() {
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, &statsRepo.GetLeaderboardInput{Limit: statsRepo.DefaultLeaderboardLimit}).
		Return(&statsRepo.GetLeaderboardOutput{Entries: []*statsRepo.PlayerRank{
			{Position: 1, Stats: &models.PlayerStats{UserID: "1", GamesPlayed: 1, Wins: 1}},
		}}, nil)
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "1").Return(&models.Member{ID: "1", DisplayName: "ann"}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "board-chan", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, n *models.Notice) error {
			s.Equal("🏆 Current Leaderboard", n.Title)
			s.Equal("1. **ann** - 1W/0L (100.0%)", n.Description)
			s.Equal("Requested by bo", n.Footer)
			return nil
		})

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonLeaderboard, s.member("2", "bo")))
	s.NoError(err)
	s.assertEphemeral(msgLeaderboardPosted)
}

func (s *HandlerTestSuite) TestPostLeaderboardChannelMissing() {
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, gomock.Any()).Return(&statsRepo.GetLeaderboardOutput{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "board-chan", gomock.Any()).Return(platform.ErrNotFound)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonLeaderboard, s.member("2", "bo")))
	s.NoError(err)
	s.assertEphemeral(msgLeaderboardNoTarget)
}

func (s *HandlerTestSuite) TestPlayerLookup() {
	s.mockMembers.EXPECT().SearchMembers(s.ctx, s.testGuildID, "Bob", memberSearchLimit).Return([]*models.Member{
		{ID: "7", DisplayName: "Bobby", Username: "bobby"},
		{ID: "8", DisplayName: "The Bob", Username: "bob"},
	}, nil)
	s.mockStats.EXPECT().GetStats(s.ctx, &statsRepo.GetStatsInput{UserID: "8"}).Return(&models.PlayerStats{UserID: "8"}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalPlayerLookup, s.member("1", "ann"), map[string]string{
		InputPlayerName: " @Bob ",
	}))
	s.NoError(err)
	s.Equal("📊 Stats for The Bob", s.responseTitle())
}

func (s *HandlerTestSuite) TestPlayerLookupNotFound() {
	s.mockMembers.EXPECT().SearchMembers(s.ctx, s.testGuildID, "zed", memberSearchLimit).
		Return([]*models.Member{{ID: "7", DisplayName: "zedd", Username: "zedd"}}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalPlayerLookup, s.member("1", "ann"), map[string]string{
		InputPlayerName: "zed",
	}))
	s.NoError(err)
	s.assertEphemeral("❌ Could not find player 'zed'. Try using their exact username.")
}

func (s *HandlerTestSuite) TestHostSetupAdminOnly() {
	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonHostSetup, s.member("1", "ann", s.managerRole)))
	s.NoError(err)
	s.assertEphemeral(msgAdminOnly)

	err = s.handler.Handle(s.ctx, s.responder, s.component(ButtonHostSetup, s.member(s.adminID, "admin")))
	s.NoError(err)
	resp := s.responder.lastResponse()
	s.Equal(discordgo.InteractionResponseModal, resp.Type)
	s.Equal(ModalHostSetup, resp.Data.CustomID)
	s.Len(resp.Data.Components, 2)
}

func (s *HandlerTestSuite) TestHostSetupSubmit() {
	s.mockProfiles.EXPECT().SetupHost(s.ctx, &profile.SetupHostInput{
		GuildID:    s.testGuildID,
		HostID:     "123456789012345678",
		InGameName: "Ace",
	}).Return(&profile.SetupHostOutput{
		Profile:      &models.Profile{UserID: "123456789012345678", InGameName: "Ace", IsHost: true},
		RoleAssigned: true,
	}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalHostSetup, s.member(s.adminID, "admin"), map[string]string{
		InputHostID:     "123456789012345678",
		InputInGameName: "Ace",
	}))
	s.NoError(err)
	s.Equal("✅ Host Added Successfully", s.responseTitle())
}

func (s *HandlerTestSuite) TestHostSetupInvalidID() {
	s.mockProfiles.EXPECT().SetupHost(s.ctx, gomock.Any()).Return(nil, profile.ErrInvalidUserID)

	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalHostSetup, s.member(s.adminID, "admin"), map[string]string{
		InputHostID:     "abc",
		InputInGameName: "Ace",
	}))
	s.NoError(err)
	s.assertEphemeral(msgInvalidHostID)
}

func (s *HandlerTestSuite) TestGameSearch() {
	s.mockGameLog.EXPECT().Search(s.ctx, &gamelogRepo.SearchInput{Query: "ann", Limit: 5}).
		Return(&gamelogRepo.SearchOutput{Entries: []*models.GameLogEntry{
			{GameNumber: 2, Status: models.GameStatusStarted, Timestamp: s.testTime},
		}}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalGameSearch, s.member("1", "ann", s.managerRole), map[string]string{
		InputSearchTerm: " ANN ",
		InputLimit:      "5",
	}))
	s.NoError(err)
	s.Equal("🔍 Game Search Results", s.responseTitle())
}

func (s *HandlerTestSuite) TestGameSearchInvalidLimit() {
	err := s.handler.Handle(s.ctx, s.responder, s.modal(ModalGameSearch, s.member("1", "ann", s.managerRole), map[string]string{
		InputSearchTerm: "all",
		InputLimit:      "x",
	}))
	s.NoError(err)
	s.assertEphemeral(msgInvalidLimit)
}

func (s *HandlerTestSuite) TestGameSearchNoMatches() {
	s.mockGameLog.EXPECT().Search(s.ctx, &gamelogRepo.SearchInput{Query: "zed"}).Return(&gamelogRepo.SearchOutput{}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member(s.adminID, "admin"), "games",
		&discordgo.ApplicationCommandInteractionDataOption{Type: discordgo.ApplicationCommandOptionString, Name: "query", Value: "zed"},
	))
	s.NoError(err)
	s.assertEphemeral("❌ No games found matching 'zed'")
}

func (s *HandlerTestSuite) TestSquadGamesRequiresManagement() {
	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member("1", "ann"), "games",
		&discordgo.ApplicationCommandInteractionDataOption{Type: discordgo.ApplicationCommandOptionString, Name: "query", Value: "all"},
		&discordgo.ApplicationCommandInteractionDataOption{Type: discordgo.ApplicationCommandOptionInteger, Name: "limit", Value: float64(3)},
	))
	s.NoError(err)
	s.assertEphemeral(msgManagementNeeded)
}

func (s *HandlerTestSuite) expectEmptyHistory(limit int, channels ...string) {
	for _, ch := range channels {
		s.mockHistory.EXPECT().BotMessages(s.ctx, ch, limit).Return(nil, nil)
	}
}

func (s *HandlerTestSuite) TestSquadMenus() {
	s.mockHistory.EXPECT().BotMessages(s.ctx, "drafts-chan", menuPurgeDepth).Return([]*models.Message{
		{ID: "m1", ChannelID: "drafts-chan", HasEmbeds: true},
		{ID: "m2", ChannelID: "drafts-chan"},
	}, nil)
	s.mockHistory.EXPECT().DeleteMessage(s.ctx, "drafts-chan", "m1").Return(nil)
	s.mockHistory.EXPECT().DeleteMessage(s.ctx, "drafts-chan", "m2").Return(platform.ErrNotFound)
	s.expectEmptyHistory(menuPurgeDepth, "find-chan", "stats-chan")

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member("1", "ann", s.managerRole), "menus"))
	s.NoError(err)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.responder.lastResponse().Type)
	s.Equal("✅ Posted menus: drafts, find, stats", s.responder.lastEditContent())

	s.Len(s.responder.sent, 3)
	s.Require().Len(s.responder.sent["find-chan"], 1)
	s.Equal("🔍 Find Players", s.responder.sent["find-chan"][0].Embeds[0].Title)
}

func (s *HandlerTestSuite) TestSquadMenusSingleMenu() {
	s.expectEmptyHistory(menuPurgeDepth, "stats-chan")

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member(s.adminID, "admin"), "menus",
		&discordgo.ApplicationCommandInteractionDataOption{Type: discordgo.ApplicationCommandOptionString, Name: "menu", Value: MenuStats},
	))
	s.NoError(err)
	s.Equal("✅ Posted menus: stats", s.responder.lastEditContent())
	s.Len(s.responder.sent, 1)
	s.Contains(s.responder.sent, "stats-chan")
}

func (s *HandlerTestSuite) TestSquadMenusRequiresManagement() {
	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member("1", "ann"), "menus"))
	s.NoError(err)
	s.assertEphemeral(msgManagementNeeded)
	s.Empty(s.responder.sent)
}

func (s *HandlerTestSuite) TestSquadMenusHistoryFailure() {
	s.mockHistory.EXPECT().BotMessages(s.ctx, "drafts-chan", menuPurgeDepth).Return(nil, errors.New("missing access"))

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member(s.adminID, "admin"), "menus"))
	s.NoError(err)
	s.Equal("❌ Error posting menus", s.responder.lastEditContent())
	s.Empty(s.responder.sent)
}

func (s *HandlerTestSuite) TestSquadMenusSendFailure() {
	s.expectEmptyHistory(menuPurgeDepth, "drafts-chan", "find-chan", "stats-chan")
	s.responder.sendErr = errors.New("missing access")

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member(s.adminID, "admin"), "menus"))
	s.NoError(err)
	s.Equal("❌ Error posting menus", s.responder.lastEditContent())
}

func (s *HandlerTestSuite) TestPostStartupMenus() {
	s.mockHistory.EXPECT().BotMessages(s.ctx, "drafts-chan", menuCheckDepth).Return([]*models.Message{
		{ID: "m1", ChannelID: "drafts-chan", HasEmbeds: true},
	}, nil)
	s.mockHistory.EXPECT().BotMessages(s.ctx, "find-chan", menuCheckDepth).Return([]*models.Message{
		{ID: "m2", ChannelID: "find-chan"},
	}, nil)
	s.mockHistory.EXPECT().BotMessages(s.ctx, "stats-chan", menuCheckDepth).Return(nil, errors.New("missing access"))

	posted, err := s.handler.PostStartupMenus(s.ctx, s.responder)
	s.NoError(err)
	s.Equal([]string{MenuFind, MenuStats}, posted)
	s.NotContains(s.responder.sent, "drafts-chan")
	s.Len(s.responder.sent["find-chan"], 1)
	s.Len(s.responder.sent["stats-chan"], 1)
}

func (s *HandlerTestSuite) TestPostStartupMenusSendFailure() {
	s.expectEmptyHistory(menuCheckDepth, "drafts-chan", "find-chan", "stats-chan")
	s.responder.sendErr = errors.New("missing access")

	posted, err := s.handler.PostStartupMenus(s.ctx, s.responder)
	s.Error(err)
	s.Empty(posted)
}

func (s *HandlerTestSuite) TestRefreshHostSetupMenu() {
	h := s.newHandlerWithChannels(false, Channels{HostSetup: "setup-chan"})
	s.mockHistory.EXPECT().BotMessages(s.ctx, "setup-chan", menuPurgeDepth).Return([]*models.Message{
		{ID: "old", ChannelID: "setup-chan", HasEmbeds: true},
	}, nil)
	s.mockHistory.EXPECT().DeleteMessage(s.ctx, "setup-chan", "old").Return(nil)

	err := h.Handle(s.ctx, s.responder, s.component(EncodeID(ActionRefreshMenu, MenuHostSetup), s.member("1", "ann", s.managerRole)))
	s.NoError(err)
	s.Equal("✅ Refreshed host_setup menu", s.responder.lastEditContent())

	sent := s.responder.sent["setup-chan"]
	s.Require().Len(sent, 2)
	s.Equal("🛠️ Admin Panel", sent[1].Embeds[0].Title)
}

func (s *HandlerTestSuite) TestRefreshMenuRequiresManagement() {
	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionRefreshMenu, MenuDrafts), s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgManagementNeeded)
	s.Empty(s.responder.sent)
}

func (s *HandlerTestSuite) TestRefreshMenuNotConfigured() {
	err := s.handler.Handle(s.ctx, s.responder, s.component(EncodeID(ActionRefreshMenu, MenuHostSetup), s.member(s.adminID, "admin")))
	s.NoError(err)
	s.assertEphemeral("❌ That menu has no channel configured")
}

func (s *HandlerTestSuite) TestRefreshLeaderboard() {
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, gomock.Any()).Return(&statsRepo.GetLeaderboardOutput{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "board-chan", gomock.Any()).Return(nil)

	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonRefreshLeaderboard, s.member("1", "ann", s.managerRole)))
	s.NoError(err)
	s.assertEphemeral(msgLeaderboardPosted)
}

func (s *HandlerTestSuite) TestRefreshLeaderboardRequiresManagement() {
	err := s.handler.Handle(s.ctx, s.responder, s.component(ButtonRefreshLeaderboard, s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgManagementNeeded)
}

func (s *HandlerTestSuite) TestUsageLogPosted() {
	h := s.newHandlerWithChannels(false, Channels{Leaderboard: "board-chan", BotLogs: "logs-chan"})
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, gomock.Any()).Return(&statsRepo.GetLeaderboardOutput{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "board-chan", gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "logs-chan", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, n *models.Notice) error {
			s.Equal("📊 Bot Usage Log", n.Title)
			s.Equal(s.testTime, n.Timestamp)
			s.Require().Len(n.Fields, 5)
			s.Equal("ann (1)", n.Fields[0].Value)
			s.Equal("Posted leaderboard", n.Fields[1].Value)
			s.Equal("Unknown", n.Fields[2].Value)
			s.Equal("Host", n.Fields[4].Value)
			return nil
		})

	err := h.Handle(s.ctx, s.responder, s.component(ButtonLeaderboard, s.member("1", "ann", s.hostRole)))
	s.NoError(err)
	s.assertEphemeral(msgLeaderboardPosted)
}

func (s *HandlerTestSuite) TestUsageLogFailureIgnored() {
	h := s.newHandlerWithChannels(false, Channels{Leaderboard: "board-chan", BotLogs: "logs-chan"})
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, gomock.Any()).Return(&statsRepo.GetLeaderboardOutput{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "board-chan", gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().SendChannelMessage(s.ctx, "logs-chan", gomock.Any()).Return(platform.ErrNotFound)

	err := h.Handle(s.ctx, s.responder, s.component(ButtonLeaderboard, s.member("1", "ann")))
	s.NoError(err)
	s.assertEphemeral(msgLeaderboardPosted)
}

func (s *HandlerTestSuite) TestSquadStatsForUser() {
	s.mockMembers.EXPECT().Member(s.ctx, s.testGuildID, "8").Return(&models.Member{ID: "8", DisplayName: "Bob"}, nil)
	s.mockStats.EXPECT().GetStats(s.ctx, &statsRepo.GetStatsInput{UserID: "8"}).Return(&models.PlayerStats{UserID: "8"}, nil)

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member("1", "ann"), "stats",
		&discordgo.ApplicationCommandInteractionDataOption{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Value: "8"},
	))
	s.NoError(err)
	s.Equal("📊 Stats for Bob", s.responseTitle())
}

func (s *HandlerTestSuite) TestSquadLeaderboard() {
	s.mockStats.EXPECT().GetLeaderboard(s.ctx, gomock.Any()).Return(&statsRepo.GetLeaderboardOutput{}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	err := s.handler.Handle(s.ctx, s.responder, s.command(s.member("1", "ann"), "leaderboard"))
	s.NoError(err)
	s.Equal("🏆 Current Leaderboard", s.responseTitle())
	s.Zero(s.responder.lastResponse().Data.Flags)
}
