package pointsample

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumCenters is returned when NumCenters is not positive.
	ErrInvalidNumCenters = errors.New("num centers must be positive")

	// ErrInvalidNumNeighbors is returned when NumNeighbors is not positive.
	ErrInvalidNumNeighbors = errors.New("num neighbors must be positive")

	// ErrNegativeMaxDist is returned when MaxDist is negative.
	ErrNegativeMaxDist = errors.New("max dist must not be negative")
)

// ErrInvalidMethod indicates an unrecognized sampling method value.
type ErrInvalidMethod struct {
	Kind  string // "center" or "neighbor"
	Value int
}

func (e *ErrInvalidMethod) Error() string {
	return fmt.Sprintf("invalid %s method: %d", e.Kind, e.Value)
}

// ErrShapeMismatch indicates that an input dimension disagrees with the
// shape implied by the batch layout.
type ErrShapeMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch in %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}
