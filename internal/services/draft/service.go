package draft

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/squadup/internal/common/clock"
	"github.com/KirkDiggler/squadup/internal/common/uuid"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/shuffle"
)

const (
	DefaultMinPlayers = 2
	DefaultMaxPlayers = 10
	DefaultTTL        = 5 * time.Minute
)

// Config holds configuration for the draft service
type Config struct {
	// Shuffler randomizes team order
	Shuffler shuffle.Shuffler

	// Clock for expiry checks
	Clock clock.Clock

	// UUIDGenerator for draft IDs
	UUIDGenerator uuid.UUID

	// MinPlayers is the smallest game allowed, DefaultMinPlayers when zero
	MinPlayers int

	// MaxPlayers is the largest game allowed, DefaultMaxPlayers when zero
	MaxPlayers int

	// TTL is how long a proposal can be started, DefaultTTL when zero
	TTL time.Duration
}

type service struct {
	shuffler   shuffle.Shuffler
	clock      clock.Clock
	uuid       uuid.UUID
	minPlayers int
	maxPlayers int
	ttl        time.Duration

	mu     sync.Mutex
	drafts map[string]*models.Draft
}

// New creates a new draft service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		shuffler:   cfg.Shuffler,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		minPlayers: cfg.MinPlayers,
		maxPlayers: cfg.MaxPlayers,
		ttl:        cfg.TTL,
		drafts:     make(map[string]*models.Draft),
	}

	if s.minPlayers == 0 {
		s.minPlayers = DefaultMinPlayers
	}
	if s.maxPlayers == 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.minPlayers < 2 || s.maxPlayers < s.minPlayers {
		return nil, ErrInvalidPlayerLimits
	}

	return s, nil
}

// Assemble validates the participants then shuffles and splits them in half
func (s *service) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if input == nil {
		return nil, ErrNotEnoughPlayers
	}

	if err := s.validate(input.Participants); err != nil {
		return nil, err
	}

	team1, team2 := s.split(input.Participants)
	return &AssembleOutput{
		Team1: team1,
		Team2: team2,
	}, nil
}

// Reroll does not validate membership, the teams already passed Assemble
func (s *service) Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil {
		return &RerollOutput{}, nil
	}

	team1, team2 := s.split(append(slices.Clone(input.Team1), input.Team2...))
	return &RerollOutput{
		Team1: team1,
		Team2: team2,
	}, nil
}

// CreateDraft assembles teams and stores the proposal
func (s *service) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil {
		return nil, ErrNotEnoughPlayers
	}

	teams, err := s.Assemble(ctx, &AssembleInput{Participants: input.Participants})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	draft := &models.Draft{
		ID:               s.uuid.NewUUID(),
		GuildID:          input.GuildID,
		VoiceChannelID:   input.VoiceChannelID,
		VoiceChannelName: input.VoiceChannelName,
		RequestedBy:      input.RequestedBy,
		Team1:            teams.Team1,
		Team2:            teams.Team2,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)
	s.drafts[draft.ID] = draft

	return &CreateDraftOutput{
		Draft: cloneDraft(draft),
	}, nil
}

// RerollDraft reshuffles the stored proposal in place
func (s *service) RerollDraft(ctx context.Context, input *RerollDraftInput) (*RerollDraftOutput, error) {
	if input == nil {
		return nil, ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.lookup(input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Team1, draft.Team2 = s.split(append(slices.Clone(draft.Team1), draft.Team2...))
	draft.Rerolls++

	return &RerollDraftOutput{
		Draft: cloneDraft(draft),
	}, nil
}

// GetDraft returns a copy of the stored proposal
func (s *service) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.lookup(input.DraftID)
	if err != nil {
		return nil, err
	}

	return &GetDraftOutput{
		Draft: cloneDraft(draft),
	}, nil
}

// CancelDraft removes the proposal. Cancelling an expired draft is not an error.
func (s *service) CancelDraft(ctx context.Context, input *CancelDraftInput) error {
	if input == nil {
		return ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[input.DraftID]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, input.DraftID)

	return nil
}

// TakeDraft removes the proposal and returns it
func (s *service) TakeDraft(ctx context.Context, input *TakeDraftInput) (*TakeDraftOutput, error) {
	if input == nil {
		return nil, ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.lookup(input.DraftID)
	if err != nil {
		return nil, err
	}
	delete(s.drafts, input.DraftID)

	return &TakeDraftOutput{
		Draft: draft,
	}, nil
}

func (s *service) validate(participants []*models.Member) error {
	n := len(participants)
	if n%2 != 0 {
		return ErrOddParticipants
	}
	if n < s.minPlayers {
		return ErrNotEnoughPlayers
	}
	if n > s.maxPlayers {
		return ErrTooManyPlayers
	}

	seen := make(map[string]bool, n)
	for _, p := range participants {
		if p == nil || p.ID == "" {
			return ErrNotEnoughPlayers
		}
		if seen[p.ID] {
			return ErrDuplicateParticipant
		}
		seen[p.ID] = true
	}

	return nil
}

// split shuffles a copy of players and cuts it at the midpoint
func (s *service) split(players []*models.Member) ([]*models.Member, []*models.Member) {
	shuffled := slices.Clone(players)
	s.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	mid := len(shuffled) / 2
	return shuffled[:mid:mid], shuffled[mid:]
}

// lookup must be called with s.mu held
func (s *service) lookup(id string) (*models.Draft, error) {
	draft, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if draft.IsExpired(s.clock.Now()) {
		delete(s.drafts, id)
		return nil, ErrDraftExpired
	}

	return draft, nil
}

// sweep drops expired drafts, must be called with s.mu held
func (s *service) sweep(now time.Time) {
	for id, d := range s.drafts {
		if d.IsExpired(now) {
			delete(s.drafts, id)
		}
	}
}

func cloneDraft(d *models.Draft) *models.Draft {
	c := *d
	c.Team1 = slices.Clone(d.Team1)
	c.Team2 = slices.Clone(d.Team2)
	return &c
}
