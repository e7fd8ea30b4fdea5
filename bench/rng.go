package bench

import (
	"math/rand"

	"github.com/katalvlaran/statesearch/tilegame"
)

// defaultSeed replaces a zero Config.Seed.
const defaultSeed int64 = 2

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring stream ids give unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream from base. base.Int63 is consumed
// once per call, so repeated derivations with the same id still differ.
// A nil base uses defaultSeed as the parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// drawBoards returns n random size×size start states, board i drawn from
// stream i of a generator seeded with seed.
func drawBoards(seed int64, size, n int) ([]tilegame.State, error) {
	base := rngFromSeed(seed)
	out := make([]tilegame.State, n)
	for i := range out {
		s, err := tilegame.RandomState(size, deriveRNG(base, uint64(i)))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}
