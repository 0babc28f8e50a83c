package dtw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChoose_TieBreak pins the predecessor rule used by both solvers.
func TestChoose_TieBreak(t *testing.T) {
	unset := Score{}
	tests := []struct {
		name           string
		left, up, diag Score
		want           Score
		wantDir        Direction
	}{
		{"origin", unset, unset, unset, unset, None},
		{"left only", Known(3), unset, unset, Known(3), Left},
		{"up only", unset, Known(3), unset, Known(3), Up},
		{"diag only", unset, unset, Known(3), Known(3), Diagonal},
		{"all equal picks diag", Known(2), Known(2), Known(2), Known(2), Diagonal},
		{"up equals left keeps left", Known(2), Known(2), Known(5), Known(2), Left},
		{"up strictly smaller", Known(2), Known(1), Known(5), Known(1), Up},
		{"diag ties up", Known(4), Known(1), Known(1), Known(1), Diagonal},
		{"diag ties left", Known(1), Known(4), Known(1), Known(1), Diagonal},
		{"diag larger", Known(1), Known(4), Known(2), Known(1), Left},
		{"zero candidates", Known(0), Known(0), unset, Known(0), Left},
	}
	for _, tc := range tests {
		best, dir := choose(tc.left, tc.up, tc.diag)
		assert.Equal(t, tc.want, best, tc.name)
		assert.Equal(t, tc.wantDir, dir, tc.name)
	}
}

// TestRelax adds the cost to the chosen predecessor, or returns it at the origin.
func TestRelax(t *testing.T) {
	assert.Equal(t, 4.0, relax(4, Score{}))
	assert.Equal(t, 7.5, relax(4, Known(3.5)))
}

// TestCheckCost accepts finite non-negative values only.
func TestCheckCost(t *testing.T) {
	for _, v := range []float64{0, 1e-300, 42, math.MaxFloat64} {
		require.NoError(t, checkCost(0, 0, v), "%g", v)
	}
	for _, v := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, checkCost(1, 2, v), ErrInvalidCost, "%g", v)
	}
}

// TestNeighborsOf covers the three diagonal-start cases.
func TestNeighborsOf(t *testing.T) {
	assert.Equal(t, neighbors{left: -1, up: 0, diag: -1}, neighborsOf(diagonalOf(3, 4, 2)))
	assert.Equal(t, neighbors{left: 0, up: 1, diag: 0}, neighborsOf(diagonalOf(3, 4, 3)))
	assert.Equal(t, neighbors{left: 0, up: 1, diag: 1}, neighborsOf(diagonalOf(3, 4, 4)))
}

// TestDiagonalLen returns 0 outside the matrix.
func TestDiagonalLen(t *testing.T) {
	assert.Equal(t, 0, diagonalLen(3, 4, -1))
	assert.Equal(t, 0, diagonalLen(3, 4, 6))
	assert.Equal(t, 3, diagonalLen(3, 4, 3))
	assert.Equal(t, 1, diagonalLen(1, 9, 8))
}

// TestResolveStrategy compares R·C·9 bytes against the budget.
func TestResolveStrategy(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, FullMatrix, o.resolveStrategy(100, 100))

	o = gatherOptions(WithMemoryBudget(9 * 10 * 10))
	assert.Equal(t, FullMatrix, o.resolveStrategy(10, 10))
	assert.Equal(t, DiagonalSweep, o.resolveStrategy(10, 11))

	o = gatherOptions(WithMemoryBudget(0))
	assert.Equal(t, DiagonalSweep, o.resolveStrategy(1, 1))

	o = gatherOptions(WithStrategy(FullMatrix), WithMemoryBudget(0))
	assert.Equal(t, FullMatrix, o.resolveStrategy(1000, 1000))
}

// TestForEachChunk covers every offset exactly once, inline or split.
func TestForEachChunk(t *testing.T) {
	for _, tc := range []struct{ n, workers, threshold int }{
		{1, 4, 1}, {7, 1, 1}, {7, 3, 1}, {10, 4, 2}, {5, 8, 100}, {130, 200, 1},
	} {
		seen := make([]int, tc.n)
		err := forEachChunk(t.Context(), tc.n, tc.workers, tc.threshold, func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				seen[i]++
			}

			return nil
		})
		require.NoError(t, err)
		for i, c := range seen {
			assert.Equal(t, 1, c, "n=%d workers=%d offset %d", tc.n, tc.workers, i)
		}
	}
}
