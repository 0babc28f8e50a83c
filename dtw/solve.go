// SPDX-License-Identifier: MIT

package dtw

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/warp/matrix"
)

// instrumentationName identifies this package to tracer and meter providers.
const instrumentationName = "github.com/katalvlaran/warp/dtw"

// Solve computes the DTW alignment cost of csm with the configured strategy.
//
// Description:
//
//	With the default Auto strategy, Solve materializes the full matrices when
//	R·C·9 bytes fit the memory budget (WithMemoryBudget) and sweeps
//	anti-diagonals otherwise. Both strategies return the same Cost.
//
// Inputs:
//   - ctx: cancellation is checked between rows/diagonals.
//   - csm: R×C pairwise cost matrix, R>0, C>0, every entry finite and >= 0.
//   - opts: see options.go.
//
// Outputs:
//   - *Alignment: Cost always; Accumulated/Backtrace only for FullMatrix.
//   - error: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidCost, ErrCostOverflow or ctx.Err().
//
// Example:
//
//	csm, _ := matrix.NewDenseFrom([][]float64{{0, 2}, {1, 0}})
//	res, err := dtw.Solve(ctx, csm)
func Solve(ctx context.Context, csm matrix.Matrix, opts ...Option) (*Alignment, error) {
	return run(ctx, "dtw.Solve", csm, gatherOptions(opts...))
}

// run validates the input, resolves the strategy and dispatches, wrapping the
// whole solve in a span and recording metrics.
func run(ctx context.Context, spanName string, csm matrix.Matrix, o Options) (*Alignment, error) {
	ctx, span := o.tracerProvider.Tracer(instrumentationName).Start(ctx, spanName)
	defer span.End()

	rows, cols, err := validateInput(csm)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	strategy := o.resolveStrategy(rows, cols)
	span.SetAttributes(
		attribute.Int("rows", rows),
		attribute.Int("cols", cols),
		attribute.String("strategy", strategy.String()),
		attribute.Int("workers", o.workers),
		attribute.Bool("reverse", o.reverse),
	)
	o.logger.Debug("dtw solve started",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.String("strategy", strategy.String()),
		slog.Int("workers", o.workers),
		slog.Bool("reverse", o.reverse),
	)

	var res *Alignment
	switch strategy {
	case FullMatrix:
		res, err = solveFull(ctx, csm, o)
	default:
		res, err = solveDiagonal(ctx, csm, o)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Debug("dtw solve failed",
			slog.String("strategy", strategy.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	recordSolve(ctx, o.meterProvider, strategy, int64(rows)*int64(cols))
	span.SetAttributes(attribute.Float64("cost", res.Cost))
	span.SetStatus(codes.Ok, "")
	o.logger.Debug("dtw solve completed",
		slog.String("strategy", strategy.String()),
		slog.Float64("cost", res.Cost),
	)

	return res, nil
}

// validateInput checks the matrix reference and shape; values are checked
// cell by cell as the solvers read them.
func validateInput(csm matrix.Matrix) (rows, cols int, err error) {
	if err = matrix.ValidateNotNil(csm); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if err = matrix.ValidateShape(csm); err != nil {
		return 0, 0, fmt.Errorf("cost matrix %dx%d: %w: %w", csm.Rows(), csm.Cols(), ErrInvalidDimensions, err)
	}

	return csm.Rows(), csm.Cols(), nil
}

// recordSolve bumps the solve and cell counters. Instrument creation errors
// are ignored.
func recordSolve(ctx context.Context, mp metric.MeterProvider, strategy Strategy, cells int64) {
	meter := mp.Meter(instrumentationName)
	attrs := metric.WithAttributes(attribute.String("strategy", strategy.String()))

	if solves, err := meter.Int64Counter("dtw.solves",
		metric.WithDescription("Completed DTW solves."),
	); err == nil {
		solves.Add(ctx, 1, attrs)
	}
	if relaxed, err := meter.Int64Counter("dtw.cells",
		metric.WithDescription("Cost-matrix cells relaxed."),
		metric.WithUnit("{cell}"),
	); err == nil {
		relaxed.Add(ctx, cells, attrs)
	}
}
