// Package dtw computes the Dynamic Time Warping (DTW) alignment cost of two
// sequences from their precomputed pairwise cost matrix.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone path from cell (0,0) to (R-1, C-1) of an
//	R×C cost matrix, moving one step left, up or diagonally at a time. The
//	cost of a path is the sum of the cells it visits.
//
// ✨ Two strategies, one answer:
//   - FullMatrix: fills the accumulated-cost matrix S and the backtrace
//     matrix P; supports Path(). Memory O(R·C).
//   - DiagonalSweep: visits anti-diagonals i+j = k with three rolling
//     buffers; cost only. Memory O(min(R, C)).
//
// Both use one predecessor rule: diagonal wins ties, up beats left only when
// strictly smaller, left is the fallback. Their costs are identical, not just
// close.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/warp/dtw"
//	  "github.com/katalvlaran/warp/matrix"
//	)
//
//	csm, _ := matrix.NewDenseFrom(costs)         // built by the caller
//	res, err := dtw.Solve(ctx, csm,
//	  dtw.WithStrategy(dtw.FullMatrix),
//	  dtw.WithWorkers(4),                         // anti-diagonal wavefront
//	)
//	path, err := res.Path()
//
// Building the cost matrix (feature extraction, distance choice) is the
// caller's job. Costs must be finite and non-negative.
//
// Performance:
//
//   - Time:   O(R·C)
//   - Memory: O(R·C) (FullMatrix) or O(min(R,C)) (DiagonalSweep)
package dtw
