package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/squadup/internal/shuffle Shuffler

// Shuffler permutes a sequence in place
type Shuffler interface {
	// Shuffle calls swap to apply a uniformly random permutation of n elements
	Shuffle(n int, swap func(i, j int))
}

// Random provides shuffling backed by math/rand
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Random{
		random: random,
	}
}

// Shuffle performs a Fisher-Yates shuffle. Safe for concurrent use.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
