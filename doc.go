// Package pointsample implements batched point-cloud sub-sampling: for each
// example in a batch it selects a fixed number of representative center
// points and, for each center, a fixed number of neighbor points from the
// center's local vicinity.
//
// The package is a preprocessing primitive for learning systems that operate
// on point clouds and require fixed-size outputs despite a variable number of
// valid points per example. Inputs carry per-point padding flags; outputs
// carry per-slot padding flags instead of errors when too few valid points
// exist.
//
// Sampling policies:
//
//   - Centers: CenterUniform (with replacement over valid points) or
//     CenterFarthest (farthest point sampling with incremental
//     minimum-distance bookkeeping)
//   - Neighbors: NeighborUniform (with replacement over eligible points) or
//     NeighborClosest (ascending distance, distinct)
//
// A point is an eligible neighbor of a center when it is valid and its
// Euclidean distance to the center is at most MaxDist.
//
// # Quick Start
//
//	s, err := pointsample.New(pointsample.Options{
//	    CenterMethod:   pointsample.CenterFarthest,
//	    NeighborMethod: pointsample.NeighborClosest,
//	    NumCenters:     128,
//	    NumNeighbors:   64,
//	    MaxDist:        2.5,
//	    RandomSeed:     12345,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := s.Sample(batch)
//
// With a concrete (non-sentinel) RandomSeed, repeated calls on the same batch
// produce bit-identical results. Examples within a batch are sampled
// concurrently; a Sampler is immutable and safe for concurrent use.
package pointsample
