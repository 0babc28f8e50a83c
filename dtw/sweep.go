// SPDX-License-Identifier: MIT

package dtw

import (
	"context"
	"fmt"

	"github.com/katalvlaran/warp/matrix"
)

// Sweep drives the Diagonal-Sweep Solver one anti-diagonal at a time.
//
// It owns three rolling buffers of capacity min(rows, cols): S along the
// previous-previous diagonal, S along the previous diagonal, and a spare that
// receives the next one. After each step the buffers rotate; nothing of size
// rows×cols is ever allocated (unless the caller attaches a Recorder).
//
// A Sweep may be stopped after any diagonal and inspected with Snapshot.
// It is not safe for concurrent use.
type Sweep struct {
	rows, cols int
	k          int // next diagonal to compute

	prev2, prev1 []Score   // S along k-2 and k-1, resliced to their lengths
	spare        []Score   // backing array for diagonal k
	costs        []float64 // CSM along k

	workers, threshold int
	reverse            bool
	obs                Observer
}

// SweepState is a copy of a sweep's rolling buffers after diagonal K-1.
type SweepState struct {
	K     int     // next diagonal to compute
	Prev2 []Score // S along K-2
	Prev1 []Score // S along K-1
}

// NewSweep allocates the rolling buffers for a rows×cols cost matrix.
// Only WithWorkers, WithParallelThreshold, WithReverse and WithObserver
// affect a Sweep. WithReverse applies to Advance; AdvanceCosts takes costs
// in the order the caller supplies them.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
func NewSweep(rows, cols int, opts ...Option) (*Sweep, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSweep(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newSweep(rows, cols, o), nil
}

func newSweep(rows, cols int, o Options) *Sweep {
	width := min(rows, cols)

	return &Sweep{
		rows:      rows,
		cols:      cols,
		prev2:     make([]Score, 0, width),
		prev1:     make([]Score, 0, width),
		spare:     make([]Score, width),
		costs:     make([]float64, width),
		workers:   o.workers,
		threshold: o.threshold,
		reverse:   o.reverse,
		obs:       o.observer,
	}
}

// Next returns the index of the diagonal the next Advance will compute.
func (s *Sweep) Next() int { return s.k }

// Done reports whether every diagonal has been computed.
func (s *Sweep) Done() bool { return s.k > s.rows+s.cols-2 }

// Advance reads diagonal Next() from csm and computes its scores.
//
// Errors:
//   - ErrSweepDone, ErrNilMatrix, ErrInvalidDimensions (shape differs from the sweep), ErrInvalidCost, ctx.Err().
func (s *Sweep) Advance(ctx context.Context, csm matrix.Matrix) error {
	if s.Done() {
		return ErrSweepDone
	}
	if err := matrix.ValidateNotNil(csm); err != nil {
		return fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if csm.Rows() != s.rows || csm.Cols() != s.cols {
		return fmt.Errorf("sweep is %dx%d, matrix is %dx%d: %w",
			s.rows, s.cols, csm.Rows(), csm.Cols(), ErrInvalidDimensions)
	}
	if s.reverse {
		csm = matrix.Flip(csm)
	}
	d := diagonalOf(s.rows, s.cols, s.k)
	costs := s.costs[:d.Len()]

	return s.advance(ctx, d, func(lo, hi int) error {
		for idx := lo; idx < hi; idx++ {
			i, j := d.Cell(idx)
			v, err := csm.At(i, j)
			if err != nil {
				return err
			}
			if err = checkCost(i, j, v); err != nil {
				return err
			}
			costs[idx] = v
		}

		return nil
	}, costs)
}

// AdvanceCosts computes diagonal Next() from caller-supplied costs, ordered
// by local offset (see AntiDiagonal.Cell). len(costs) must equal the diagonal length.
func (s *Sweep) AdvanceCosts(ctx context.Context, costs []float64) error {
	if s.Done() {
		return ErrSweepDone
	}
	d := diagonalOf(s.rows, s.cols, s.k)
	if len(costs) != d.Len() {
		return fmt.Errorf("costs len %d for diagonal %d: %w", len(costs), d.K, ErrBufferSizeMismatch)
	}

	return s.advance(ctx, d, func(lo, hi int) error {
		for idx := lo; idx < hi; idx++ {
			if err := checkCost(d.Row-idx, d.Col+idx, costs[idx]); err != nil {
				return err
			}
		}

		return nil
	}, costs)
}

// advance loads and relaxes diagonal d chunk by chunk, then rotates.
func (s *Sweep) advance(ctx context.Context, d AntiDiagonal, load func(lo, hi int) error, costs []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := s.spare[:d.Len()]
	err := forEachChunk(ctx, d.Len(), s.workers, s.threshold, func(lo, hi int) error {
		if err := load(lo, hi); err != nil {
			return err
		}

		return stepRange(d, s.prev2, s.prev1, costs, next, lo, hi, s.obs)
	})
	if err != nil {
		return err
	}

	// Rotate: k-1 becomes k-2, k becomes k-1, the old k-2 array is reused.
	s.prev2, s.prev1, s.spare = s.prev1, next, s.prev2[:cap(s.prev2)]
	s.k++

	return nil
}

// Run advances through every remaining diagonal of csm.
func (s *Sweep) Run(ctx context.Context, csm matrix.Matrix) error {
	for !s.Done() {
		if err := s.Advance(ctx, csm); err != nil {
			return err
		}
	}

	return nil
}

// Cost returns S(rows-1, cols-1) once the last diagonal has been computed.
func (s *Sweep) Cost() (float64, error) {
	if !s.Done() {
		return 0, fmt.Errorf("at diagonal %d of %d: %w", s.k, s.rows+s.cols-1, ErrSweepIncomplete)
	}
	// The last diagonal has exactly one cell.
	v, ok := s.prev1[0].Value()
	if !ok {
		return 0, ErrSweepIncomplete
	}

	return v, nil
}

// Snapshot copies the current rolling buffers.
func (s *Sweep) Snapshot() SweepState {
	return SweepState{
		K:     s.k,
		Prev2: append([]Score(nil), s.prev2...),
		Prev1: append([]Score(nil), s.prev1...),
	}
}

// SolveDiagonal runs the Diagonal-Sweep Solver over every anti-diagonal of csm.
//
// Description:
//
//	Same cost as SolveFull, computed with three rolling buffers of length
//	min(R, C). The returned Alignment has no Accumulated or Backtrace matrix,
//	so Path() reports ErrPathNeedsMatrix.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(min(R, C))
func SolveDiagonal(ctx context.Context, csm matrix.Matrix, opts ...Option) (*Alignment, error) {
	o := gatherOptions(opts...)
	o.strategy = DiagonalSweep

	return run(ctx, "dtw.SolveDiagonal", csm, o)
}

// solveDiagonal is SolveDiagonal after option resolution and input validation.
func solveDiagonal(ctx context.Context, csm matrix.Matrix, o Options) (*Alignment, error) {
	rows, cols := csm.Rows(), csm.Cols()
	s := newSweep(rows, cols, o)
	if err := s.Run(ctx, csm); err != nil {
		return nil, err
	}
	cost, err := s.Cost()
	if err != nil {
		return nil, err
	}

	return &Alignment{Cost: cost, Rows: rows, Cols: cols, Strategy: DiagonalSweep, Reversed: o.reverse}, nil
}
