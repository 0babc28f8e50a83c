// SPDX-License-Identifier: MIT

// Package matrix - Flipped, a 180° rotated view over any Matrix.
//
// Purpose:
//   - Walk a matrix from its bottom-right corner without copying it: cell
//     (i, j) of the view is cell (R-1-i, C-1-j) of the base.
//   - Reads and writes go through to the base and keep its error contract.
//
// Complexity quicksheet:
//   - Flip: O(1); At/Set: O(1) plus the base's cost; Clone: O(r*c).

package matrix

import "fmt"

// Flipped is a non-owning view of a Matrix rotated by 180°.
type Flipped struct {
	base Matrix
}

var _ Matrix = (*Flipped)(nil)

// Flip returns the rotated view of m. Flipping a Flipped returns its base.
func Flip(m Matrix) Matrix {
	if f, ok := m.(*Flipped); ok && f != nil {
		return f.base
	}

	return &Flipped{base: m}
}

// Rows returns the row count of the base.
func (f *Flipped) Rows() int { return f.base.Rows() }

// Cols returns the column count of the base.
func (f *Flipped) Cols() int { return f.base.Cols() }

// At reads (i, j) of the view, i.e. (R-1-i, C-1-j) of the base.
func (f *Flipped) At(i, j int) (float64, error) {
	if i < 0 || i >= f.base.Rows() || j < 0 || j >= f.base.Cols() {
		return 0, fmt.Errorf("Flipped.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return f.base.At(f.base.Rows()-1-i, f.base.Cols()-1-j)
}

// Set writes (i, j) of the view through to the base.
func (f *Flipped) Set(i, j int, v float64) error {
	if i < 0 || i >= f.base.Rows() || j < 0 || j >= f.base.Cols() {
		return fmt.Errorf("Flipped.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}

	return f.base.Set(f.base.Rows()-1-i, f.base.Cols()-1-j, v)
}

// Clone returns a flipped view over a deep copy of the base.
func (f *Flipped) Clone() Matrix {
	return &Flipped{base: f.base.Clone()}
}
