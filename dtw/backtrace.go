// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// Path recovers the optimal warping path from the backtrace matrix.
//
// Implementation:
//   - Stage 1: start at (R-1, C-1) and follow P: Left → (i, j-1),
//     Up → (i-1, j), Diagonal → (i-1, j-1), until (0,0).
//   - Stage 2: reverse in place so the path runs from (0,0) to (R-1, C-1).
//   - Stage 3 (Reversed alignments only): map each cell back to the
//     caller's matrix, so the path runs from (R-1, C-1) to (0,0).
//
// Every step strictly decreases the row, the column or both, so the path has
// at most R+C-1 cells.
//
// Errors:
//   - ErrPathNeedsMatrix when the alignment was computed by DiagonalSweep.
//   - ErrBrokenBacktrace when P leaves the matrix or stops before the origin.
func (a *Alignment) Path() ([]Coord, error) {
	if a == nil || a.Backtrace == nil {
		return nil, ErrPathNeedsMatrix
	}
	p := a.Backtrace
	i, j := p.Rows()-1, p.Cols()-1
	path := make([]Coord, 0, p.Rows()+p.Cols()-1)

	for {
		path = append(path, Coord{I: i, J: j})
		if i == 0 && j == 0 {
			break
		}
		dir, err := p.At(i, j)
		if err != nil {
			return nil, fmt.Errorf("at (%d,%d): %w", i, j, ErrBrokenBacktrace)
		}
		switch dir {
		case Left:
			j--
		case Up:
			i--
		case Diagonal:
			i--
			j--
		default:
			return nil, fmt.Errorf("%s at (%d,%d): %w", dir, i, j, ErrBrokenBacktrace)
		}
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("stepped to (%d,%d): %w", i, j, ErrBrokenBacktrace)
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	if a.Reversed {
		for n := range path {
			path[n] = Coord{I: p.Rows() - 1 - path[n].I, J: p.Cols() - 1 - path[n].J}
		}
	}

	return path, nil
}
