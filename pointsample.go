package pointsample

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Sampler selects a fixed number of center points per example and, for each
// center, a fixed number of neighbor points from the center's vicinity.
//
// A Sampler is immutable after New and safe for concurrent Sample calls.
type Sampler struct {
	opts   Options
	logger *Logger
}

// New validates opts and builds a Sampler.
func New(opts Options, optFns ...Option) (*Sampler, error) {
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	return &Sampler{opts: opts, logger: opts.Logger}, nil
}

// Options returns a copy of the Sampler's configuration.
func (s *Sampler) Options() Options {
	return s.opts
}

// Sample selects centers and neighbors for every example in the batch.
//
// Examples are sampled independently and concurrently, bounded by
// Parallelism. Too few valid points never cause an error; affected slots
// are marked in the Result's padding arrays instead. The only call-time
// error is a per-cloud shape mismatch between points and padding flags.
func (s *Sampler) Sample(batch Batch) (*Result, error) {
	start := time.Now()

	for b, cloud := range batch {
		if len(cloud.Padding) != len(cloud.Points) {
			return nil, &ErrShapeMismatch{
				Field:    fmt.Sprintf("padding[%d]", b),
				Expected: len(cloud.Points),
				Actual:   len(cloud.Padding),
			}
		}
	}

	res := newResult(len(batch), s.opts.NumCenters, s.opts.NumNeighbors)

	var g errgroup.Group
	g.SetLimit(s.parallelism())
	for b := range batch {
		b := b
		g.Go(func() error {
			s.sampleExample(b, batch[b], res)
			return nil
		})
	}
	_ = g.Wait() // examples cannot fail; sparsity degrades to padding

	s.logger.WithBatchSize(len(batch)).Debug("sample",
		"center_method", s.opts.CenterMethod.String(),
		"neighbor_method", s.opts.NeighborMethod.String(),
		"num_centers", s.opts.NumCenters,
		"num_neighbors", s.opts.NumNeighbors,
		"duration", time.Since(start),
	)
	return res, nil
}

// SampleFlat samples from the flat row-major tensor layout: points is
// batchSize x numPoints x 3 coordinates, padding is batchSize x numPoints
// flags with nonzero meaning the point slot is padding.
func (s *Sampler) SampleFlat(points, padding []float32, batchSize, numPoints int) (*Result, error) {
	batch, err := BatchFromFlat(points, padding, batchSize, numPoints)
	if err != nil {
		return nil, err
	}
	return s.Sample(batch)
}

// sampleExample runs both selectors for one example. It owns the example's
// generator and writes only that example's rows of the Result, so examples
// need no synchronization beyond the errgroup barrier.
func (s *Sampler) sampleExample(example int, cloud Cloud, res *Result) {
	rng := s.exampleRNG(example)
	valid := cloud.validSet()

	centers, centerPad := s.selectCenters(cloud, valid, rng)
	res.Center[example] = centers
	res.CenterPadding[example] = centerPad

	for c := range centers {
		idx, pad := s.selectNeighbors(cloud, valid, centers[c], centerPad[c], rng)
		res.Indices[example][c] = idx
		res.IndicesPadding[example][c] = pad
	}

	s.logger.WithExample(example).Debug("example sampled",
		"num_valid", int(valid.GetCardinality()),
	)
}

func (s *Sampler) parallelism() int {
	if s.opts.Parallelism > 0 {
		return s.opts.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}
