// SPDX-License-Identifier: MIT

package dtw

import (
	"context"

	"github.com/katalvlaran/warp/matrix"
)

// SolveFull runs the Full-Matrix Solver.
//
// Description:
//
//	Fills the accumulated-cost matrix S and the backtrace matrix P of a
//	rows×cols cost matrix and returns S(R-1, C-1) as the alignment cost.
//
// Algorithm Outline:
//  1. (0,0): no predecessor, S = CSM(0,0), P = None.
//  2. Any other cell: candidates left = S(i, j-1) if j>0, up = S(i-1, j) if
//     i>0, diag = S(i-1, j-1) if i>0 && j>0; pick one with the shared
//     tie-break (diagonal wins ties, up beats left only when strictly
//     smaller); S = CSM + best; P = its tag.
//  3. Cells are visited row by row. With WithWorkers(n>1) they are visited
//     anti-diagonal by anti-diagonal instead, each diagonal split across
//     goroutines. Both orders respect every dependency, so S and P are
//     identical.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C)
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrInvalidCost, ErrCostOverflow, ctx.Err().
func SolveFull(ctx context.Context, csm matrix.Matrix, opts ...Option) (*Alignment, error) {
	o := gatherOptions(opts...)
	o.strategy = FullMatrix

	return run(ctx, "dtw.SolveFull", csm, o)
}

// fullSolver holds the state of one Full-Matrix solve.
type fullSolver struct {
	csm matrix.Matrix
	s   *matrix.Dense
	p   *matrix.Grid[Direction]
	obs Observer
}

// solveFull is SolveFull after option resolution and input validation.
func solveFull(ctx context.Context, csm matrix.Matrix, o Options) (*Alignment, error) {
	if o.reverse {
		csm = matrix.Flip(csm)
	}
	rows, cols := csm.Rows(), csm.Cols()
	s, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	p, err := matrix.NewGrid[Direction](rows, cols)
	if err != nil {
		return nil, err
	}
	f := &fullSolver{csm: csm, s: s, p: p, obs: o.observer}

	if o.workers > 1 {
		err = f.fillWavefront(ctx, o.workers, o.threshold)
	} else {
		err = f.fillRows(ctx)
	}
	if err != nil {
		return nil, err
	}

	cost, err := s.At(rows-1, cols-1)
	if err != nil {
		return nil, err
	}

	return &Alignment{
		Cost:        cost,
		Rows:        rows,
		Cols:        cols,
		Strategy:    FullMatrix,
		Reversed:    o.reverse,
		Accumulated: s,
		Backtrace:   p,
	}, nil
}

// fillRows visits cells in row-major order.
func (f *fullSolver) fillRows(ctx context.Context) error {
	rows, cols := f.csm.Rows(), f.csm.Cols()
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			if err := f.cell(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillWavefront visits cells anti-diagonal by anti-diagonal; diagonal k is
// complete before k+1 starts.
func (f *fullSolver) fillWavefront(ctx context.Context, workers, threshold int) error {
	rows, cols := f.csm.Rows(), f.csm.Cols()
	for k := 0; k <= rows+cols-2; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := diagonalOf(rows, cols, k)
		err := forEachChunk(ctx, d.Len(), workers, threshold, func(lo, hi int) error {
			for idx := lo; idx < hi; idx++ {
				if err := f.cell(d.Cell(idx)); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// cell relaxes (i, j). Its left, up and diagonal neighbors must be final.
func (f *fullSolver) cell(i, j int) error {
	cost, err := f.csm.At(i, j)
	if err != nil {
		return err
	}
	if err = checkCost(i, j, cost); err != nil {
		return err
	}

	var left, up, diag Score
	if j > 0 {
		if left, err = f.score(i, j-1); err != nil {
			return err
		}
	}
	if i > 0 {
		if up, err = f.score(i-1, j); err != nil {
			return err
		}
	}
	if i > 0 && j > 0 {
		if diag, err = f.score(i-1, j-1); err != nil {
			return err
		}
	}

	best, dir := choose(left, up, diag)
	total := relax(cost, best)
	if err = checkTotal(i, j, total); err != nil {
		return err
	}
	if err = f.s.Set(i, j, total); err != nil {
		return err
	}
	if err = f.p.Set(i, j, dir); err != nil {
		return err
	}

	if f.obs != nil {
		f.obs.ObserveCell(CellTrace{
			Row: i, Col: j, Cost: cost,
			Up: up, Left: left, Diag: diag,
			Best: best, From: dir, Total: total,
		})
	}

	return nil
}

// score reads a finished S cell as a set Score.
func (f *fullSolver) score(i, j int) (Score, error) {
	v, err := f.s.At(i, j)
	if err != nil {
		return Score{}, err
	}

	return Known(v), nil
}
