// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// choose selects the predecessor of a cell from its three candidates.
//
// Order and tie-break, shared by every solver in this package:
//  1. left, if set.
//  2. up, if set and strictly smaller than the current best (or nothing chosen yet).
//  3. diag, if set and smaller than OR EQUAL to the current best (or nothing chosen yet).
//
// So diagonal wins all ties, up beats left only when strictly smaller, and
// left is the fallback. An all-unset input (the origin) returns (unset, None).
func choose(left, up, diag Score) (Score, Direction) {
	best, dir := Score{}, None
	if left.set {
		best, dir = left, Left
	}
	if up.set && (!best.set || up.value < best.value) {
		best, dir = up, Up
	}
	if diag.set && (!best.set || diag.value <= best.value) {
		best, dir = diag, Diagonal
	}

	return best, dir
}

// relax returns S for a cell with the given pairwise cost and chosen predecessor.
// The origin has no predecessor and its S is its own cost.
func relax(cost float64, best Score) float64 {
	if !best.set {
		return cost
	}

	return cost + best.value
}

// checkTotal rejects an accumulated cost that overflowed to ±Inf.
func checkTotal(i, j int, total float64) error {
	if math.IsInf(total, 0) {
		return fmt.Errorf("S(%d,%d)=%g: %w", i, j, total, ErrCostOverflow)
	}

	return nil
}

// checkCost enforces the non-negative, finite cost contract.
func checkCost(i, j int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("cost(%d,%d)=%g: %w", i, j, v, ErrInvalidCost)
	}

	return nil
}
