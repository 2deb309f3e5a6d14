package matrix

import "errors"

// Sentinel errors. Callers match them with errors.Is; context is added with
// fmt.Errorf("...: %w", ErrX) at the detection site.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates rows of unequal length in FromRows.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNameCount indicates that the number of names differs from the matrix order.
	ErrNameCount = errors.New("matrix: name count does not match matrix order")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
