package profile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/KirkDiggler/squadup/internal/common/jsonfile"
	"github.com/KirkDiggler/squadup/internal/models"
)

const (
	profilesFile  = "user_profiles.json"
	whitelistFile = "host_whitelist.json"
)

// JSONConfig holds configuration for the file-backed profile repository
type JSONConfig struct {
	// DataDir holds user_profiles.json and host_whitelist.json
	DataDir string
}

type whitelistDocument struct {
	Hosts []string `json:"hosts"`
}

// jsonRepository implements the Repository interface on two JSON documents
type jsonRepository struct {
	mu            sync.RWMutex
	profilesPath  string
	whitelistPath string
	profiles      map[string]*models.Profile
	whitelist     whitelistDocument
}

// NewJSON loads the profile and whitelist files from the data directory.
// Missing files start empty; unreadable files are an error.
func NewJSON(cfg *JSONConfig) (*jsonRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data dir cannot be empty")
	}

	r := &jsonRepository{
		profilesPath:  filepath.Join(cfg.DataDir, profilesFile),
		whitelistPath: filepath.Join(cfg.DataDir, whitelistFile),
		profiles:      make(map[string]*models.Profile),
	}

	if _, err := jsonfile.Load(r.profilesPath, &r.profiles); err != nil {
		return nil, err
	}
	if r.profiles == nil {
		r.profiles = make(map[string]*models.Profile)
	}
	for id, p := range r.profiles {
		if p == nil {
			delete(r.profiles, id)
			continue
		}
		p.UserID = id
	}

	if _, err := jsonfile.Load(r.whitelistPath, &r.whitelist); err != nil {
		return nil, err
	}

	return r, nil
}

// SaveProfile overwrites the user's profile and rewrites the profiles file
func (r *jsonRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if err := validateProfile(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *input.Profile
	previous, existed := r.profiles[stored.UserID]
	r.profiles[stored.UserID] = &stored

	if err := jsonfile.Save(r.profilesPath, r.profiles); err != nil {
		if existed {
			r.profiles[stored.UserID] = previous
		} else {
			delete(r.profiles, stored.UserID)
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile returns a copy of the stored profile
func (r *jsonRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.profiles[input.UserID]
	if !ok {
		return nil, ErrProfileNotFound
	}

	profile := *stored
	return &profile, nil
}

// AddHost appends the user to the whitelist file
func (r *jsonRepository) AddHost(ctx context.Context, input *AddHostInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.whitelist.Hosts, input.UserID) {
		return nil
	}

	r.whitelist.Hosts = append(r.whitelist.Hosts, input.UserID)
	if err := jsonfile.Save(r.whitelistPath, r.whitelist); err != nil {
		r.whitelist.Hosts = r.whitelist.Hosts[:len(r.whitelist.Hosts)-1]
		return fmt.Errorf("failed to add host: %w", err)
	}

	return nil
}

// IsHost checks whitelist membership
func (r *jsonRepository) IsHost(ctx context.Context, input *IsHostInput) (bool, error) {
	if input == nil || input.UserID == "" {
		return false, errors.New("input and user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Contains(r.whitelist.Hosts, input.UserID), nil
}

// ListHosts returns a copy of the whitelist
func (r *jsonRepository) ListHosts(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.whitelist.Hosts), nil
}
