// Package matrix provides the row-major storage used by the DTW solvers.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked float64 matrix with a private i*cols + j layout,
//     used for cost matrices and accumulated-cost matrices.
//   - MatrixView, a non-owning rectangular window into a Dense, so a caller can
//     align a sub-block of a larger cost matrix without copying it.
//   - Grid[T], the same layout for non-numeric cells (direction tags,
//     optional scores).
//
// Public accessors never panic on bad coordinates; they return ErrOutOfRange
// wrapped with the method name and indices. Callers match sentinels with
// errors.Is.
package matrix
