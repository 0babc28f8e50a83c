package dtw_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/matrix"
)

// TestSolveDiagonal_ConcreteScenarios mirrors the hand-traced full-matrix cases.
func TestSolveDiagonal_ConcreteScenarios(t *testing.T) {
	ctx := context.Background()

	res, err := dtw.SolveDiagonal(ctx, mustDense(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, dtw.DiagonalSweep, res.Strategy)
	assert.Nil(t, res.Accumulated)
	assert.Nil(t, res.Backtrace)

	res, err = dtw.SolveDiagonal(ctx, mustDense(t, [][]float64{
		{0, 2, 5},
		{1, 0, 2},
		{4, 1, 0},
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)

	res, err = dtw.SolveDiagonal(ctx, mustDense(t, [][]float64{{7}}))
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Cost)

	res, err = dtw.SolveDiagonal(ctx, mustDense(t, [][]float64{{3, 1, 4, 1, 5}}))
	require.NoError(t, err)
	assert.Equal(t, 14.0, res.Cost)
}

// TestSolveDiagonal_NoPath reports that the sweep keeps no backtrace.
func TestSolveDiagonal_NoPath(t *testing.T) {
	res, err := dtw.SolveDiagonal(context.Background(), mustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)

	_, err = res.Path()
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestSolveDiagonal_InvalidInput shares validation with the full solver.
func TestSolveDiagonal_InvalidInput(t *testing.T) {
	ctx := context.Background()

	_, err := dtw.SolveDiagonal(ctx, nil)
	assert.ErrorIs(t, err, dtw.ErrNilMatrix)

	_, err = dtw.SolveDiagonal(ctx, &rawMatrix{})
	assert.ErrorIs(t, err, dtw.ErrInvalidDimensions)

	_, err = dtw.SolveDiagonal(ctx, mustDense(t, [][]float64{{0, 1}, {-1, 0}}))
	assert.ErrorIs(t, err, dtw.ErrInvalidCost)
}

// TestSweep_Lifecycle steps a 3×4 sweep by hand and checks the driver state.
func TestSweep_Lifecycle(t *testing.T) {
	ctx := context.Background()
	csm := mustDense(t, [][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})

	s, err := dtw.NewSweep(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Next())
	assert.False(t, s.Done())

	_, err = s.Cost()
	assert.ErrorIs(t, err, dtw.ErrSweepIncomplete)

	// Diagonals 0..2: S is {1}, {2,2}, {3,2,3}.
	for k := 0; k < 3; k++ {
		require.NoError(t, s.Advance(ctx, csm))
	}
	snap := s.Snapshot()
	assert.Equal(t, 3, snap.K)
	assert.Equal(t, []dtw.Score{dtw.Known(2), dtw.Known(2)}, snap.Prev2)
	assert.Equal(t, []dtw.Score{dtw.Known(3), dtw.Known(2), dtw.Known(3)}, snap.Prev1)

	// The snapshot is a copy.
	snap.Prev1[0] = dtw.Known(100)
	assert.Equal(t, dtw.Known(3), s.Snapshot().Prev1[0])

	require.NoError(t, s.Run(ctx, csm))
	assert.True(t, s.Done())
	assert.Equal(t, 6, s.Next())

	cost, err := s.Cost()
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)

	assert.ErrorIs(t, s.Advance(ctx, csm), dtw.ErrSweepDone)
	assert.ErrorIs(t, s.AdvanceCosts(ctx, []float64{1}), dtw.ErrSweepDone)
}

// TestSweep_AdvanceCosts feeds diagonals without a matrix at all.
func TestSweep_AdvanceCosts(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(5))
	csm := randomCSM(t, rng, 6, 9, true)

	s, err := dtw.NewSweep(6, 9)
	require.NoError(t, err)
	for !s.Done() {
		d, err := dtw.DiagonalAt(6, 9, s.Next())
		require.NoError(t, err)
		costs := make([]float64, d.Len())
		for idx := range costs {
			costs[idx], err = csm.At(d.Cell(idx))
			require.NoError(t, err)
		}
		require.NoError(t, s.AdvanceCosts(ctx, costs))
	}
	got, err := s.Cost()
	require.NoError(t, err)

	full, err := dtw.SolveFull(ctx, csm)
	require.NoError(t, err)
	assert.Equal(t, full.Cost, got)
}

// TestSweep_AdvanceErrors covers the per-step guards.
func TestSweep_AdvanceErrors(t *testing.T) {
	ctx := context.Background()

	_, err := dtw.NewSweep(0, 2)
	assert.ErrorIs(t, err, dtw.ErrInvalidDimensions)

	s, err := dtw.NewSweep(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Advance(ctx, nil), dtw.ErrNilMatrix)

	var nilDense *matrix.Dense
	assert.ErrorIs(t, s.Advance(ctx, nilDense), dtw.ErrNilMatrix)

	assert.ErrorIs(t, s.Advance(ctx, mustDense(t, [][]float64{{1, 2, 3}})), dtw.ErrInvalidDimensions)
	assert.ErrorIs(t, s.AdvanceCosts(ctx, []float64{1, 2}), dtw.ErrBufferSizeMismatch)
	assert.ErrorIs(t, s.AdvanceCosts(ctx, []float64{-1}), dtw.ErrInvalidCost)

	// A failed step does not move the sweep.
	assert.Equal(t, 0, s.Next())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	err = s.AdvanceCosts(canceled, []float64{1})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Equal(t, 0, s.Next())
}

// TestSweep_Parallel splits each diagonal across workers and expects the same cost.
func TestSweep_Parallel(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for _, shape := range shapes {
		csm := randomCSM(t, rng, shape[0], shape[1], true)

		seq, err := dtw.SolveDiagonal(context.Background(), csm)
		require.NoError(t, err)
		par, err := dtw.SolveDiagonal(context.Background(), csm,
			dtw.WithWorkers(3), dtw.WithParallelThreshold(1))
		require.NoError(t, err)

		assert.Equal(t, seq.Cost, par.Cost, shapeName(shape))
	}
}
