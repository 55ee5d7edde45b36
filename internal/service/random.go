package service

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source behind every synthetic value and probability gate.
// Float64 must return values in [0, 1).
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a goroutine-safe source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// chance reports whether a draw falls under p: p=0 never fires, p=1 always does.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// pick returns an index in [0, n) from one draw.
func pick(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
