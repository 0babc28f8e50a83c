// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/warp/matrix"
)

// CellTrace is what a solver knows about one cell at the moment it is relaxed.
type CellTrace struct {
	Row, Col int
	Cost     float64   // CSM(Row, Col)
	Up       Score     // S(Row-1, Col), unset when infeasible
	Left     Score     // S(Row, Col-1), unset when infeasible
	Diag     Score     // S(Row-1, Col-1), unset when infeasible
	Best     Score     // selected candidate, unset at the origin
	From     Direction // tag of Best
	Total    float64   // S(Row, Col)
}

// Observer receives every relaxed cell. It is introspection only: nothing the
// observer records feeds back into the solve.
//
// When a solve runs with more than one worker, ObserveCell is called
// concurrently for distinct cells.
type Observer interface {
	ObserveCell(c CellTrace)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(c CellTrace)

// ObserveCell implements Observer.
func (f ObserverFunc) ObserveCell(c CellTrace) { f(c) }

// Recorder keeps the debug matrices of a solve: the raw up/left/diagonal
// candidates of every cell (U, L, UL) and its accumulated score (S).
//
// A Recorder is rows×cols regardless of strategy, so attaching one to a
// DiagonalSweep solve gives up the memory saving. It exists to compare the
// two strategies cell by cell.
type Recorder struct {
	Up          *matrix.Grid[Score] // U
	Left        *matrix.Grid[Score] // L
	Diag        *matrix.Grid[Score] // UL
	Accumulated *matrix.Grid[Score] // S
}

var _ Observer = (*Recorder)(nil)

// NewRecorder allocates unset debug matrices for a rows×cols solve.
func NewRecorder(rows, cols int) (*Recorder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewRecorder(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	r := &Recorder{}
	for _, g := range []**matrix.Grid[Score]{&r.Up, &r.Left, &r.Diag, &r.Accumulated} {
		grid, err := matrix.NewGrid[Score](rows, cols)
		if err != nil {
			return nil, err
		}
		*g = grid
	}

	return r, nil
}

// ObserveCell implements Observer. Cells outside the recorder's shape are ignored.
func (r *Recorder) ObserveCell(c CellTrace) {
	for _, w := range [...]struct {
		g *matrix.Grid[Score]
		v Score
	}{
		{r.Up, c.Up},
		{r.Left, c.Left},
		{r.Diag, c.Diag},
		{r.Accumulated, Known(c.Total)},
	} {
		if w.g.Set(c.Row, c.Col, w.v) != nil {
			return
		}
	}
}
