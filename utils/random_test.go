package utils

import (
	"testing"

	"github.com/pkg/errors"
)

func TestUniformIntRange(t *testing.T) {
	sources := map[string]RandomSource{
		"rng":     NewRNG(1),
		"process": DefaultSource(),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			seen := map[int]bool{}
			for range 1000 {
				v, err := src.UniformInt(-2, 2)
				if err != nil {
					t.Fatal(err)
				}
				if v < -2 || v > 2 {
					t.Fatalf("UniformInt(-2, 2) = %d", v)
				}
				seen[v] = true
			}
			if len(seen) != 5 {
				t.Fatalf("saw %d distinct values, want all 5", len(seen))
			}

			v, err := src.UniformInt(7, 7)
			if err != nil || v != 7 {
				t.Fatalf("UniformInt(7, 7) = %d, %v", v, err)
			}
		})
	}
}

func TestUniformIntInvalidRange(t *testing.T) {
	for _, src := range []RandomSource{NewRNG(1), DefaultSource()} {
		if _, err := src.UniformInt(1, 0); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("err = %v, want ErrInvalidRange", err)
		}
	}
}

func TestNewRNGDeterministic(t *testing.T) {
	a, b := NewRNG(12345), NewRNG(12345)
	for i := range 100 {
		x, _ := a.UniformInt(0, 1000)
		y, _ := b.UniformInt(0, 1000)
		if x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestSourceForSeed(t *testing.T) {
	if _, ok := SourceForSeed(0).(processSource); !ok {
		t.Fatal("seed 0 should use the process-wide source")
	}
	if _, ok := SourceForSeed(3).(*RNG); !ok {
		t.Fatal("non-zero seed should use a deterministic RNG")
	}
}
