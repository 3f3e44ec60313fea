package draft

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/squadup/internal/services/draft Service

// Service splits players into two random teams and holds proposals until they are started
type Service interface {
	// Assemble validates the participants and splits them into two equal teams
	Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error)

	// Reroll reshuffles the union of two teams and splits it again
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// CreateDraft assembles teams and keeps them as a proposal until it expires
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)

	// RerollDraft reshuffles a pending proposal
	RerollDraft(ctx context.Context, input *RerollDraftInput) (*RerollDraftOutput, error)

	// GetDraft returns a pending proposal
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)

	// CancelDraft discards a proposal
	CancelDraft(ctx context.Context, input *CancelDraftInput) error

	// TakeDraft removes and returns a proposal so it can only be started once
	TakeDraft(ctx context.Context, input *TakeDraftInput) (*TakeDraftOutput, error)
}
