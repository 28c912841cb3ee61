package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a layout character outside the known alphabet.
	ErrUnknownSymbol = errors.New("grid: unknown layout symbol")
	// ErrOutOfBounds indicates an edit outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrOccupied indicates a start or end move onto the other marker.
	ErrOccupied = errors.New("grid: cell holds the other endpoint")
)
