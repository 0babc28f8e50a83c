// Package warp computes exact Dynamic Time Warping alignment costs from a
// precomputed pairwise cost matrix.
//
// 🚀 What is warp?
//
//	A small library with two interchangeable DTW solvers that always agree:
//		• Full-Matrix Solver: accumulated-cost and backtrace matrices, path recovery
//		• Diagonal-Sweep Solver: three rolling anti-diagonals, O(min(R,C)) memory
//		• Per-diagonal step API for callers that stream costs diagonal by diagonal
//		• Optional anti-diagonal wavefront parallelism for both solvers
//
// ✨ Why choose warp?
//
//   - Identical costs from both strategies, bit for bit
//   - Errors, never panics, on bad input (nil, empty, NaN, negative costs)
//   - Structured slog records plus OpenTelemetry spans and counters per solve
//
// Packages:
//
//	dtw/     solvers, sweep driver, strategy selection, debug recorder
//	matrix/  row-major Dense, MatrixView windows, generic Grid[T]
//
// Quick example:
//
//	csm, _ := matrix.NewDenseFrom([][]float64{{0, 2}, {1, 0}})
//	res, _ := dtw.Solve(ctx, csm)
//	fmt.Println(res.Cost) // 0
//
//	go get github.com/katalvlaran/warp
package warp
