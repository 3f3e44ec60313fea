package draft

import (
	"github.com/KirkDiggler/squadup/internal/models"
)

// AssembleInput contains the players gathered for a game
type AssembleInput struct {
	Participants []*models.Member
}

// AssembleOutput contains the proposed teams
type AssembleOutput struct {
	Team1 []*models.Member
	Team2 []*models.Member
}

// RerollInput contains the current teams
type RerollInput struct {
	Team1 []*models.Member
	Team2 []*models.Member
}

// RerollOutput contains the reshuffled teams
type RerollOutput struct {
	Team1 []*models.Member
	Team2 []*models.Member
}

// CreateDraftInput contains parameters for proposing teams
type CreateDraftInput struct {
	GuildID          string
	VoiceChannelID   string
	VoiceChannelName string
	RequestedBy      string
	Participants     []*models.Member
}

// CreateDraftOutput contains the stored proposal
type CreateDraftOutput struct {
	Draft *models.Draft
}

// RerollDraftInput identifies the proposal to reshuffle
type RerollDraftInput struct {
	DraftID string
}

// RerollDraftOutput contains the reshuffled proposal
type RerollDraftOutput struct {
	Draft *models.Draft
}

// GetDraftInput identifies a proposal
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput contains the proposal
type GetDraftOutput struct {
	Draft *models.Draft
}

// CancelDraftInput identifies the proposal to discard
type CancelDraftInput struct {
	DraftID string
}

// TakeDraftInput identifies the proposal to start
type TakeDraftInput struct {
	DraftID string
}

// TakeDraftOutput contains the removed proposal
type TakeDraftOutput struct {
	Draft *models.Draft
}
