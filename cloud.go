package pointsample

import "github.com/RoaringBitmap/roaring/v2"

// Point is a fixed-arity coordinate tuple. The third component is allowed to
// be zero for planar data but is always included in distance calculations.
type Point [3]float32

// Cloud is one example: an ordered point sequence with a parallel padding
// flag per point. A point is valid iff its flag is false.
type Cloud struct {
	Points  []Point
	Padding []bool
}

// NumValid returns the number of valid (non-padded) points.
func (c Cloud) NumValid() int {
	n := 0
	for _, padded := range c.Padding {
		if !padded {
			n++
		}
	}
	return n
}

// validSet returns the indices of valid points as a bitmap.
func (c Cloud) validSet() *roaring.Bitmap {
	vs := roaring.New()
	for i, padded := range c.Padding {
		if !padded {
			vs.Add(uint32(i))
		}
	}
	return vs
}

// Batch is an ordered sequence of independent clouds. Examples never
// interact during sampling.
type Batch []Cloud

// BatchFromFlat builds a Batch from the flat row-major buffers used by
// tensor pipelines: points is batchSize x numPoints x 3 coordinates and
// padding is batchSize x numPoints flags, nonzero meaning the point slot is
// padding.
func BatchFromFlat(points, padding []float32, batchSize, numPoints int) (Batch, error) {
	if len(points) != batchSize*numPoints*3 {
		return nil, &ErrShapeMismatch{Field: "points", Expected: batchSize * numPoints * 3, Actual: len(points)}
	}
	if len(padding) != batchSize*numPoints {
		return nil, &ErrShapeMismatch{Field: "points_padding", Expected: batchSize * numPoints, Actual: len(padding)}
	}

	batch := make(Batch, batchSize)
	for b := range batch {
		pts := make([]Point, numPoints)
		pad := make([]bool, numPoints)
		for i := 0; i < numPoints; i++ {
			off := (b*numPoints + i) * 3
			pts[i] = Point{points[off], points[off+1], points[off+2]}
			pad[i] = padding[b*numPoints+i] != 0
		}
		batch[b] = Cloud{Points: pts, Padding: pad}
	}
	return batch, nil
}
