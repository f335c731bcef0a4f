package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates an unsupported rune in a layout.
	ErrUnknownCell = errors.New("gridgraph: unknown layout cell")
	// ErrMissingEndpoint indicates a layout without a start or a finish.
	ErrMissingEndpoint = errors.New("gridgraph: layout needs one start and one finish")
	// ErrDuplicateEndpoint indicates a layout with more than one start or finish.
	ErrDuplicateEndpoint = errors.New("gridgraph: layout has more than one start or finish")
)
