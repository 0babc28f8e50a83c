// SPDX-License-Identifier: MIT

// Package dtw: domain types shared by both solvers.
package dtw

import (
	"fmt"

	"github.com/katalvlaran/warp/matrix"
)

// Score is an optional accumulated cost.
//
// The zero value is unset: "no such predecessor" or "not computed yet".
type Score struct {
	value float64
	set   bool
}

// Known wraps v as a set Score.
func Known(v float64) Score { return Score{value: v, set: true} }

// Value returns the score and whether it is set.
func (s Score) Value() (float64, bool) { return s.value, s.set }

// IsSet reports whether s carries a value.
func (s Score) IsSet() bool { return s.set }

// String renders unset scores as "-".
func (s Score) String() string {
	if !s.set {
		return "-"
	}

	return fmt.Sprintf("%g", s.value)
}

// Direction tags the predecessor that produced a cell's minimum.
type Direction uint8

const (
	// None marks the origin cell (0,0), which has no predecessor.
	None Direction = iota
	// Left means the cell came from (i, j-1).
	Left
	// Up means the cell came from (i-1, j).
	Up
	// Diagonal means the cell came from (i-1, j-1).
	Diagonal
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Up:
		return "up"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coord is one (row, column) step of a warping path.
type Coord struct {
	I int // row in the cost matrix (sequence A)
	J int // column in the cost matrix (sequence B)
}

// Strategy selects how the accumulated cost is computed.
//
//   - Auto:          FullMatrix when R·C cells fit the memory budget, DiagonalSweep otherwise.
//   - FullMatrix:    materialize S and P; supports Path(). Memory: O(R·C).
//   - DiagonalSweep: three rolling anti-diagonal buffers; cost only. Memory: O(min(R,C)).
type Strategy int

const (
	// Auto picks a strategy from the memory budget.
	Auto Strategy = iota
	// FullMatrix fills the whole accumulated-cost and backtrace matrices.
	FullMatrix
	// DiagonalSweep keeps only three anti-diagonals in memory.
	DiagonalSweep
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case FullMatrix:
		return "full_matrix"
	case DiagonalSweep:
		return "diagonal_sweep"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Alignment is the outcome of a solve.
//
// Accumulated and Backtrace are populated only by the FullMatrix strategy;
// they are owned by the caller and never mutated after the solve returns.
//
// With WithReverse, Accumulated and Backtrace are indexed like the rotated
// matrix, and Reversed is true.
type Alignment struct {
	Cost        float64                 // S(R-1, C-1)
	Rows, Cols  int                     // shape of the cost matrix
	Strategy    Strategy                // strategy that actually ran (never Auto)
	Reversed    bool                    // solved from the bottom-right corner
	Accumulated *matrix.Dense           // S, nil for DiagonalSweep
	Backtrace   *matrix.Grid[Direction] // P, nil for DiagonalSweep
}
