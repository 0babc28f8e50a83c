package dtw_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/matrix"
)

// scoreEqual lets cmp compare Score values without reaching into unexported fields.
var scoreEqual = cmp.Comparer(func(a, b dtw.Score) bool { return a == b })

// mustDense builds a Dense from a row literal or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomCSM fills an r×c cost matrix from rng. With small=true, costs are
// integers in [0, 3] so that ties between candidates are frequent.
func randomCSM(t testing.TB, rng *rand.Rand, r, c int, small bool) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := rng.Float64() * 10
			if small {
				v = float64(rng.Intn(4))
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// denseRows copies a matrix into a row literal for cmp-friendly comparison.
func denseRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// gridRows copies a Grid into a row literal.
func gridRows[T any](t testing.TB, g *matrix.Grid[T]) [][]T {
	t.Helper()
	out := make([][]T, g.Rows())
	for i := range out {
		out[i] = make([]T, g.Cols())
		for j := range out[i] {
			v, err := g.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// shapes covers square, tall, wide and degenerate matrices, including the
// shapes where the diagonal sweep switches between its three offset cases
// early (rows 1 and 2).
var shapes = [][2]int{
	{1, 1}, {1, 2}, {2, 1}, {1, 7}, {7, 1},
	{2, 2}, {2, 3}, {3, 2}, {3, 3}, {2, 9}, {9, 2},
	{4, 7}, {7, 4}, {5, 5}, {8, 13}, {13, 8}, {16, 16},
}

func shapeName(s [2]int) string { return fmt.Sprintf("%dx%d", s[0], s[1]) }

// rawMatrix is a Matrix without a numeric policy, so tests can feed NaN/Inf.
type rawMatrix struct {
	r, c int
	data []float64
}

func newRawMatrix(rows [][]float64) *rawMatrix {
	m := &rawMatrix{r: len(rows), c: len(rows[0])}
	for _, row := range rows {
		m.data = append(m.data, row...)
	}

	return m
}

func (m *rawMatrix) Rows() int { return m.r }
func (m *rawMatrix) Cols() int { return m.c }
func (m *rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrix.ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}
func (m *rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return matrix.ErrOutOfRange
	}
	m.data[i*m.c+j] = v

	return nil
}
func (m *rawMatrix) Clone() matrix.Matrix {
	return &rawMatrix{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}
