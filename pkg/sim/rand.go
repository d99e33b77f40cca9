package sim

import (
	"math/rand/v2"
	"time"
)

// Rand yields uniform integers in the inclusive range [min, max].
type Rand interface {
	IntRange(min, max int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a PCG backed Rand. A zero seed is replaced by the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min+1)
}

// Sounds receives fire-and-forget audio cues.
type Sounds interface {
	AmbulanceDispatched()
}

type silent struct{}

func (silent) AmbulanceDispatched() {}
