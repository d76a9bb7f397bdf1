package pointsample

// Result holds the sampled indices and padding flags for one batch. All
// linkage back to the input is by point index, valid only alongside the
// Batch that produced it; the Result holds no references into the input.
type Result struct {
	// Center holds, per example, NumCenters point indices identifying the
	// chosen centers.
	Center [][]int32

	// CenterPadding marks center slots for which no real center could be
	// produced. A padded center's index value is unspecified and must not be
	// dereferenced.
	CenterPadding [][]bool

	// Indices holds, per example and center slot, NumNeighbors point indices
	// identifying the chosen neighbors.
	Indices [][][]int32

	// IndicesPadding marks neighbor slots for which no eligible neighbor
	// existed.
	IndicesPadding [][][]bool

	numCenters   int
	numNeighbors int
}

func newResult(batchSize, numCenters, numNeighbors int) *Result {
	r := &Result{
		Center:         make([][]int32, batchSize),
		CenterPadding:  make([][]bool, batchSize),
		Indices:        make([][][]int32, batchSize),
		IndicesPadding: make([][][]bool, batchSize),
		numCenters:     numCenters,
		numNeighbors:   numNeighbors,
	}
	for b := range r.Indices {
		r.Indices[b] = make([][]int32, numCenters)
		r.IndicesPadding[b] = make([][]bool, numCenters)
	}
	return r
}

// FlatCenter returns the center indices flattened row-major, shaped
// batch x NumCenters.
func (r *Result) FlatCenter() []int32 {
	out := make([]int32, 0, len(r.Center)*r.numCenters)
	for _, row := range r.Center {
		out = append(out, row...)
	}
	return out
}

// FlatCenterPadding returns the center padding flags flattened row-major as
// 0/1 values, shaped batch x NumCenters.
func (r *Result) FlatCenterPadding() []float32 {
	out := make([]float32, 0, len(r.CenterPadding)*r.numCenters)
	for _, row := range r.CenterPadding {
		out = appendFlags(out, row)
	}
	return out
}

// FlatIndices returns the neighbor indices flattened row-major, shaped
// batch x NumCenters x NumNeighbors.
func (r *Result) FlatIndices() []int32 {
	out := make([]int32, 0, len(r.Indices)*r.numCenters*r.numNeighbors)
	for _, ex := range r.Indices {
		for _, row := range ex {
			out = append(out, row...)
		}
	}
	return out
}

// FlatIndicesPadding returns the neighbor padding flags flattened row-major
// as 0/1 values, shaped batch x NumCenters x NumNeighbors.
func (r *Result) FlatIndicesPadding() []float32 {
	out := make([]float32, 0, len(r.IndicesPadding)*r.numCenters*r.numNeighbors)
	for _, ex := range r.IndicesPadding {
		for _, row := range ex {
			out = appendFlags(out, row)
		}
	}
	return out
}

func appendFlags(dst []float32, flags []bool) []float32 {
	for _, f := range flags {
		if f {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}
