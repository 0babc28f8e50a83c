// SPDX-License-Identifier: MIT

// Package dtw: functional configuration for the solvers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state besides the otel/slog defaults
//     that are read once per solve.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package dtw

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy lets Solve choose by memory budget.
	DefaultStrategy = Auto

	// DefaultMemoryBudget is the byte budget under which Auto materializes the
	// full matrices (8 bytes of S plus 1 byte of P per cell).
	DefaultMemoryBudget int64 = 64 << 20

	// DefaultWorkers keeps both solvers single-threaded.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum diagonal length that is split
	// across workers. Shorter diagonals run inline for cache locality.
	DefaultParallelThreshold = 64
)

// fullMatrixBytesPerCell is S (float64) plus P (Direction).
const fullMatrixBytesPerCell = 8 + 1

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMemoryBudgetInvalid = "dtw: WithMemoryBudget: budget must be >= 0"
	panicWorkersInvalid      = "dtw: WithWorkers: workers must be >= 1"
	panicThresholdInvalid    = "dtw: WithParallelThreshold: threshold must be >= 1"
	panicStrategyInvalid     = "dtw: WithStrategy: unknown strategy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strategy  Strategy
	budget    int64
	workers   int
	threshold int
	reverse   bool
	observer  Observer

	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithStrategy forces a strategy (Auto, FullMatrix or DiagonalSweep).
// Panics on values outside the enum.
func WithStrategy(s Strategy) Option {
	if s < Auto || s > DiagonalSweep {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithMemoryBudget sets the byte budget consulted by Auto.
// A budget of 0 always selects DiagonalSweep.
func WithMemoryBudget(bytes int64) Option {
	if bytes < 0 {
		panic(panicMemoryBudgetInvalid)
	}

	return func(o *Options) { o.budget = bytes }
}

// WithWorkers sets how many goroutines may relax cells of one anti-diagonal
// concurrently. 1 keeps the solve sequential.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum diagonal length split across workers.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithReverse sweeps from the bottom-right corner: the solve runs on the
// cost matrix rotated by 180° (see matrix.Flip). Cell coordinates seen by
// observers, DiagonalAt offsets and error messages refer to the rotated
// matrix; Alignment.Path maps the path back to the caller's coordinates.
func WithReverse() Option {
	return func(o *Options) { o.reverse = true }
}

// WithObserver installs a per-cell observer (e.g. *Recorder).
// Observers must tolerate concurrent calls for distinct cells when workers > 1.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// WithLogger sets the structured logger. nil restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTracerProvider sets the tracer provider. nil restores the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. nil restores the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) { o.meterProvider = mp }
}

// gatherOptions applies user-provided setters on top of the defaults and
// resolves nil providers to the process-wide ones.
func gatherOptions(user ...Option) Options {
	o := Options{
		strategy:  DefaultStrategy,
		budget:    DefaultMemoryBudget,
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	return o
}

// resolveStrategy turns Auto into a concrete strategy for a rows×cols matrix.
func (o Options) resolveStrategy(rows, cols int) Strategy {
	if o.strategy != Auto {
		return o.strategy
	}
	need := int64(rows) * int64(cols) * fullMatrixBytesPerCell
	if need <= o.budget {
		return FullMatrix
	}

	return DiagonalSweep
}
