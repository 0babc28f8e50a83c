// SPDX-License-Identifier: MIT

// Package matrix - Grid[T], row-major storage for non-numeric cells.
//
// Purpose:
//   - Same bounds contract as Dense (errors, never panics) for cell types that
//     are not float64: direction tags, optional scores, flags.
//   - Concurrent writes to DISTINCT cells are safe; the backing slice is never
//     reallocated after construction.

package matrix

import "fmt"

// Grid is a rows×cols table of T stored in row-major order.
type Grid[T any] struct {
	r, c int // dimensions (> 0)
	data []T // len == r*c
}

// NewGrid allocates a rows×cols grid filled with the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.c }

// At returns the cell at (row, col) or ErrOutOfRange.
func (g *Grid[T]) At(row, col int) (T, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		var zero T
		return zero, fmt.Errorf("Grid.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (g *Grid[T]) Set(row, col int, v T) error {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return fmt.Errorf("Grid.%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	g.data[row*g.c+col] = v

	return nil
}

// Clone returns an independent copy (shallow per cell).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: cp}
}
