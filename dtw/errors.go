// SPDX-License-Identifier: MIT
// Package dtw: sentinel error set.
// Every failure is detected before or during a single pass and returned to the
// caller; nothing is retried or silently recovered. Tests match via errors.Is.

package dtw

import "errors"

var (
	// ErrNilMatrix indicates that a nil cost matrix was supplied.
	ErrNilMatrix = errors.New("dtw: cost matrix is nil")

	// ErrInvalidDimensions indicates rows <= 0 or cols <= 0.
	ErrInvalidDimensions = errors.New("dtw: dimensions must be > 0")

	// ErrInvalidCost indicates a cost that is NaN, ±Inf or negative.
	// Accumulated costs rely on every pairwise cost being finite and non-negative.
	ErrInvalidCost = errors.New("dtw: cost must be finite and non-negative")

	// ErrBufferSizeMismatch indicates a rolling buffer whose length differs from
	// the length of the diagonal it stands for.
	ErrBufferSizeMismatch = errors.New("dtw: buffer length does not match diagonal length")

	// ErrCostOverflow indicates an accumulated cost that is no longer finite.
	ErrCostOverflow = errors.New("dtw: accumulated cost overflow")

	// ErrDiagonalOutOfRange indicates k outside [0, rows+cols-2].
	ErrDiagonalOutOfRange = errors.New("dtw: diagonal index out of range")

	// ErrSweepIncomplete is returned by Sweep.Cost before the last diagonal is computed.
	ErrSweepIncomplete = errors.New("dtw: sweep has not reached the last diagonal")

	// ErrSweepDone is returned when advancing a sweep that already covered every diagonal.
	ErrSweepDone = errors.New("dtw: sweep already finished")

	// ErrPathNeedsMatrix indicates that path recovery requires the FullMatrix strategy.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires Strategy=FullMatrix")

	// ErrBrokenBacktrace indicates a backtrace matrix that does not lead back to (0,0).
	ErrBrokenBacktrace = errors.New("dtw: backtrace does not reach the origin")
)
