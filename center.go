package pointsample

import (
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointsample/distance"
)

// selectCenters produces exactly NumCenters point indices for one cloud,
// plus per-slot padding flags. Padding is only produced when the cloud has
// zero valid points; with fewer valid points than slots, centers repeat.
func (s *Sampler) selectCenters(cloud Cloud, valid *roaring.Bitmap, rng *rand.Rand) ([]int32, []bool) {
	switch s.opts.CenterMethod {
	case CenterFarthest:
		return centersFarthest(cloud, valid, rng, s.opts.NumCenters)
	default:
		return centersUniform(valid, rng, s.opts.NumCenters)
	}
}

// paddedSlots returns n slots that are all padding. The index value of a
// padded slot is zero so downstream tensor consumers stay in bounds, but it
// must never be dereferenced as a real point.
func paddedSlots(n int) ([]int32, []bool) {
	idx := make([]int32, n)
	pad := make([]bool, n)
	for i := range pad {
		pad[i] = true
	}
	return idx, pad
}

// centersUniform draws with replacement from the valid set. Duplicate
// centers across slots are expected.
func centersUniform(valid *roaring.Bitmap, rng *rand.Rand, numCenters int) ([]int32, []bool) {
	card := int(valid.GetCardinality())
	if card == 0 {
		return paddedSlots(numCenters)
	}

	centers := make([]int32, numCenters)
	for i := range centers {
		// Select only fails for ranks >= cardinality; Intn(card) stays below.
		idx, _ := valid.Select(uint32(rng.Intn(card)))
		centers[i] = int32(idx)
	}
	return centers, make([]bool, numCenters)
}

// centersFarthest runs farthest point sampling. A minimum-distance table is
// maintained incrementally: accepting a center updates every valid point in
// O(1), so the whole selection costs O(numCenters * n) instead of the
// O(numCenters * n^2) a full pairwise recomputation would take.
//
// The first center is drawn uniformly; every later slot takes the unchosen
// valid point whose distance to the chosen set is largest, ties broken by
// lowest point index. Squared distances are used throughout; the argmax is
// the same as for true Euclidean distances.
func centersFarthest(cloud Cloud, valid *roaring.Bitmap, rng *rand.Rand, numCenters int) ([]int32, []bool) {
	validIdx := valid.ToArray()
	n := len(validIdx)
	if n == 0 {
		return paddedSlots(numCenters)
	}

	centers := make([]int32, numCenters)
	minDist := make([]float32, n)
	for i := range minDist {
		minDist[i] = float32(math.Inf(1))
	}
	chosen := make([]bool, n)
	remaining := n

	accept := func(slot, pos int) {
		centers[slot] = int32(validIdx[pos])
		chosen[pos] = true
		remaining--
		cp := cloud.Points[validIdx[pos]]
		for j, idx := range validIdx {
			if d := distance.SquaredL2(cloud.Points[idx], cp); d < minDist[j] {
				minDist[j] = d
			}
		}
	}

	accept(0, rng.Intn(n))
	for slot := 1; slot < numCenters; slot++ {
		if remaining == 0 {
			// More slots than valid points: every point becomes selectable
			// again, keeping its distance to the already-exhausted set.
			// Duplicates are expected from here on.
			for j := range chosen {
				chosen[j] = false
			}
			remaining = n
		}

		best := -1
		for j := range validIdx {
			if chosen[j] {
				continue
			}
			if best < 0 || minDist[j] > minDist[best] {
				best = j
			}
		}
		accept(slot, best)
	}
	return centers, make([]bool, numCenters)
}
