package treefx

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxGaussianAttempts caps rejection sampling in BoundedGaussian.
const MaxGaussianAttempts = 1000

// Rand is the explicit random source passed to every generator. All draws
// made while building a scene come from one Rand, so a seed reproduces the
// scene and its schedule exactly.
type Rand struct {
	rng    *rand.Rand
	normal distuv.Normal
}

// NewRand returns a generator seeded deterministically from seed.
func NewRand(seed uint64) *Rand {
	// Non-cryptographic PRNG is intentional for reproducible scenes.
	// #nosec G404
	src := rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))
	return &Rand{
		rng:    rand.New(src),
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// BoundedJitter returns a uniform value in [1-variation, 1+variation].
func (r *Rand) BoundedJitter(variation float64) float64 {
	return r.rng.Float64()*variation*2 + 1 - variation
}

// Gaussian returns a normally distributed sample.
func (r *Rand) Gaussian(mean, deviation float64) float64 {
	return mean + deviation*r.normal.Rand()
}

// BoundedGaussian resamples Gaussian until the result lies in [low, high].
// After MaxGaussianAttempts misses the last sample is clamped to the range,
// so badly posed parameters cost time but never hang.
func (r *Rand) BoundedGaussian(low, high, mean, deviation float64) float64 {
	if low > high {
		low, high = high, low
	}
	if deviation <= 0 {
		return clamp(mean, low, high)
	}
	var v float64
	for range MaxGaussianAttempts {
		v = r.Gaussian(mean, deviation)
		if v >= low && v <= high {
			return v
		}
	}
	return clamp(v, low, high)
}

// Index returns an integer in [low, high], rounding a uniform draw.
func (r *Rand) Index(low, high int) int {
	return int(math.Round(r.rng.Float64()*float64(high-low))) + low
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
