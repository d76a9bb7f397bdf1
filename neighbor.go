package pointsample

import (
	"math/rand"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointsample/distance"
)

// selectNeighbors produces exactly NumNeighbors point indices and padding
// flags for one (cloud, center) pair. A padded center yields all-padded
// neighbor slots.
func (s *Sampler) selectNeighbors(cloud Cloud, valid *roaring.Bitmap, center int32, centerPadded bool, rng *rand.Rand) ([]int32, []bool) {
	if centerPadded {
		return paddedSlots(s.opts.NumNeighbors)
	}

	eligible, dists := eligibleNeighbors(cloud, valid, center, s.opts.MaxDist)
	switch s.opts.NeighborMethod {
	case NeighborClosest:
		return neighborsClosest(eligible, dists, s.opts.NumNeighbors)
	default:
		return neighborsUniform(eligible, rng, s.opts.NumNeighbors)
	}
}

// eligibleNeighbors collects the valid points within maxDist of the center,
// in ascending index order, along with their squared distances. The bound is
// compared on squared distances; the comparison stays a strict <= maxDist in
// Euclidean terms.
func eligibleNeighbors(cloud Cloud, valid *roaring.Bitmap, center int32, maxDist float32) ([]int32, []float32) {
	cp := cloud.Points[center]
	bound := maxDist * maxDist

	var idx []int32
	var dist []float32
	it := valid.Iterator()
	for it.HasNext() {
		i := it.Next()
		d := distance.SquaredL2(cloud.Points[i], cp)
		if d <= bound {
			idx = append(idx, int32(i))
			dist = append(dist, d)
		}
	}
	return idx, dist
}

// neighborsUniform draws with replacement from the eligible set. Duplicate
// neighbors across slots are expected.
func neighborsUniform(eligible []int32, rng *rand.Rand, numNeighbors int) ([]int32, []bool) {
	if len(eligible) == 0 {
		return paddedSlots(numNeighbors)
	}

	out := make([]int32, numNeighbors)
	for i := range out {
		out[i] = eligible[rng.Intn(len(eligible))]
	}
	return out, make([]bool, numNeighbors)
}

// neighborsClosest takes the eligible points in ascending distance order,
// ties broken by lowest point index, without replacement. Slots beyond the
// eligible count are padding.
func neighborsClosest(eligible []int32, dists []float32, numNeighbors int) ([]int32, []bool) {
	order := make([]int, len(eligible))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := dists[order[a]], dists[order[b]]
		if da != db {
			return da < db
		}
		return eligible[order[a]] < eligible[order[b]]
	})

	out := make([]int32, numNeighbors)
	pad := make([]bool, numNeighbors)
	for i := range out {
		if i < len(order) {
			out[i] = eligible[order[i]]
		} else {
			pad[i] = true
		}
	}
	return out, pad
}
