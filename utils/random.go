package utils

import (
	"math/rand/v2"
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned when a range is requested with min greater than max
var ErrInvalidRange = errors.New("minimum cannot be greater than maximum")

// RandomSource produces uniformly distributed integers over an inclusive range
type RandomSource interface {
	UniformInt(min, max int) (int, error)
}

// RNG is a seedable RandomSource backed by a PCG generator
type RNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// UniformInt returns an integer in [min, max]
func (g *RNG) UniformInt(min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "[UniformInt] min=%d max=%d", min, max)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.r.IntN(max-min+1), nil
}

type processSource struct{}

func (processSource) UniformInt(min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "[UniformInt] min=%d max=%d", min, max)
	}
	return min + rand.IntN(max-min+1), nil
}

// DefaultSource returns the process-wide random source, randomly seeded at startup
func DefaultSource() RandomSource {
	return processSource{}
}

// SourceForSeed returns DefaultSource for seed 0 and a deterministic RNG otherwise
func SourceForSeed(seed int64) RandomSource {
	if seed == 0 {
		return DefaultSource()
	}
	return NewRNG(seed)
}
