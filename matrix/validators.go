// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match with errors.Is.
//
// Note:
//   - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
const DefaultValidateNaNInf = true

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer stored in the interface counts as nil for *Dense,
// *MatrixView and *Flipped; a Flipped over a nil base is nil too.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *MatrixView:
		if v == nil || v.base == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Flipped:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
		return ValidateNotNil(v.base)
	}

	return nil
}

// ValidateShape ensures m has strictly positive dimensions.
// Assumes m is not nil (run ValidateNotNil first).
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}
