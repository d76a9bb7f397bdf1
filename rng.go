package pointsample

import (
	"math/rand"
	"sync"
	"time"
)

// entropy backs NonDeterministicSeed requests. It is the only shared random
// state in the package and is never used on the deterministic path.
var entropy = struct {
	mu sync.Mutex
	r  *rand.Rand
}{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// mix64 is the splitmix64 finalizer. It decorrelates the per-example
// streams derived from one base seed.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// exampleRNG returns the generator exclusively owned by one example's
// selection run. With a concrete RandomSeed the generator depends only on
// (RandomSeed, example), making Sample bit-reproducible.
func (s *Sampler) exampleRNG(example int) *rand.Rand {
	if s.opts.RandomSeed == NonDeterministicSeed {
		entropy.mu.Lock()
		seed := entropy.r.Int63()
		entropy.mu.Unlock()
		return rand.New(rand.NewSource(seed))
	}

	seed := mix64(uint64(s.opts.RandomSeed) ^ mix64(uint64(example)))
	return rand.New(rand.NewSource(int64(seed >> 1)))
}
