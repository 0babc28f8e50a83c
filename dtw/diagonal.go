// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
)

// AntiDiagonal is anti-diagonal K (all cells with i+j == K) clipped to a
// rows×cols matrix.
//
// Cells are addressed by a local offset idx in [0, Len()), walking from the
// bottom-left end (Row, Col) up and to the right:
//
//	Cell(idx) = (Row-idx, Col+idx)
//
// Row/Col is (K, 0) while K < rows and (rows-1, K-(rows-1)) after that;
// EndRow/EndCol is (0, K) while K < cols and (K-(cols-1), cols-1) after that.
type AntiDiagonal struct {
	K              int
	Row, Col       int // first cell (largest row)
	EndRow, EndCol int // last cell (smallest row)
}

// DiagonalAt returns the geometry of diagonal k of a rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDiagonalOutOfRange when k is outside [0, rows+cols-2].
func DiagonalAt(rows, cols, k int) (AntiDiagonal, error) {
	if rows <= 0 || cols <= 0 {
		return AntiDiagonal{}, fmt.Errorf("DiagonalAt(%d,%d,%d): %w", rows, cols, k, ErrInvalidDimensions)
	}
	if k < 0 || k > rows+cols-2 {
		return AntiDiagonal{}, fmt.Errorf("DiagonalAt(%d,%d,%d): %w", rows, cols, k, ErrDiagonalOutOfRange)
	}

	return diagonalOf(rows, cols, k), nil
}

// diagonalOf is DiagonalAt without validation.
func diagonalOf(rows, cols, k int) AntiDiagonal {
	d := AntiDiagonal{K: k, Row: k, Col: 0, EndRow: 0, EndCol: k}
	if k >= rows {
		d.Row, d.Col = rows-1, k-(rows-1)
	}
	if k >= cols {
		d.EndRow, d.EndCol = k-(cols-1), cols-1
	}

	return d
}

// Len is the number of cells on the diagonal.
func (d AntiDiagonal) Len() int { return d.Row - d.EndRow + 1 }

// Cell maps a local offset to matrix coordinates.
func (d AntiDiagonal) Cell(idx int) (i, j int) { return d.Row - idx, d.Col + idx }

// diagonalLen returns the length of diagonal k, or 0 for k outside the matrix.
// Used to size prev buffers for the first two diagonals.
func diagonalLen(rows, cols, k int) int {
	if k < 0 || k > rows+cols-2 {
		return 0
	}

	return diagonalOf(rows, cols, k).Len()
}

// neighbors holds, for a whole diagonal, the shift from a cell's offset idx to
// the offsets of its left/up neighbors on diagonal K-1 and its diagonal
// neighbor on K-2.
type neighbors struct {
	left, up, diag int
}

// neighborsOf derives the shifts from where diagonal d starts.
//
//   - Starts in column 0 (K < rows): K-1 and K-2 also start in column 0, one and
//     two rows higher, so left and diag sit at idx-1 and up at idx.
//   - Starts at (rows-1, 1): K-1 starts at (rows-1, 0) but K-2 at (rows-2, 0),
//     so left and diag sit at idx and up at idx+1.
//   - Starts at (rows-1, >1): K-1 and K-2 both start on the bottom row, so left
//     sits at idx while up and diag sit at idx+1.
func neighborsOf(d AntiDiagonal) neighbors {
	switch {
	case d.Col == 0:
		return neighbors{left: -1, up: 0, diag: -1}
	case d.Col == 1:
		return neighbors{left: 0, up: 1, diag: 0}
	default:
		return neighbors{left: 0, up: 1, diag: 1}
	}
}

// DiagonalStep computes the accumulated scores of diagonal k.
//
// MAIN DESCRIPTION:
//   - prev2 and prev1 hold S along diagonals k-2 and k-1 (empty when those
//     diagonals do not exist), costs holds CSM along k, and next receives S
//     along k. All four are indexed by local offset (see AntiDiagonal).
//   - The caller owns the buffers and their rotation; see Sweep for a driver.
//
// Implementation:
//   - Stage 1: validate shape, k, buffer lengths and costs.
//   - Stage 2: for every cell gather the feasible candidates through the
//     start-dependent offsets, pick one with the shared tie-break, store
//     cost + best.
//
// Errors:
//   - ErrInvalidDimensions, ErrDiagonalOutOfRange, ErrBufferSizeMismatch, ErrInvalidCost,
//     ErrCostOverflow (next is partially written).
//
// Complexity:
//   - Time O(len(next)), Space O(1).
func DiagonalStep(rows, cols, k int, prev2, prev1 []Score, costs []float64, next []Score, obs Observer) error {
	d, err := DiagonalAt(rows, cols, k)
	if err != nil {
		return err
	}
	if err = checkBuffers(rows, cols, d, prev2, prev1, costs, next); err != nil {
		return err
	}
	for idx, v := range costs {
		if err = checkCost(d.Row-idx, d.Col+idx, v); err != nil {
			return err
		}
	}

	return stepRange(d, prev2, prev1, costs, next, 0, d.Len(), obs)
}

// checkBuffers verifies every rolling buffer matches its diagonal's length.
func checkBuffers(rows, cols int, d AntiDiagonal, prev2, prev1 []Score, costs []float64, next []Score) error {
	n := d.Len()
	switch {
	case len(prev2) != diagonalLen(rows, cols, d.K-2):
		return fmt.Errorf("prev2 len %d for diagonal %d: %w", len(prev2), d.K-2, ErrBufferSizeMismatch)
	case len(prev1) != diagonalLen(rows, cols, d.K-1):
		return fmt.Errorf("prev1 len %d for diagonal %d: %w", len(prev1), d.K-1, ErrBufferSizeMismatch)
	case len(costs) != n:
		return fmt.Errorf("costs len %d for diagonal %d: %w", len(costs), d.K, ErrBufferSizeMismatch)
	case len(next) != n:
		return fmt.Errorf("next len %d for diagonal %d: %w", len(next), d.K, ErrBufferSizeMismatch)
	}

	return nil
}

// stepRange relaxes offsets [lo, hi) of diagonal d. Inputs are trusted except
// for overflow of the accumulated cost (ErrCostOverflow).
// Distinct ranges touch distinct next cells, so ranges may run concurrently.
func stepRange(d AntiDiagonal, prev2, prev1 []Score, costs []float64, next []Score, lo, hi int, obs Observer) error {
	nb := neighborsOf(d)
	var left, up, diag Score
	for idx := lo; idx < hi; idx++ {
		i, j := d.Cell(idx)
		left, up, diag = Score{}, Score{}, Score{}
		if j > 0 {
			left = prev1[idx+nb.left]
		}
		if i > 0 {
			up = prev1[idx+nb.up]
			if j > 0 {
				diag = prev2[idx+nb.diag]
			}
		}
		best, dir := choose(left, up, diag)
		total := relax(costs[idx], best)
		if err := checkTotal(i, j, total); err != nil {
			return err
		}
		next[idx] = Known(total)

		if obs != nil {
			obs.ObserveCell(CellTrace{
				Row: i, Col: j, Cost: costs[idx],
				Up: up, Left: left, Diag: diag,
				Best: best, From: dir, Total: total,
			})
		}
	}

	return nil
}
