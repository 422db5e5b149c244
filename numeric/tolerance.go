// SPDX-License-Identifier: MIT

package numeric

import "math"

const (
	// Epsilon is the structural tolerance: pivots, zero rows and unit pivots
	// are all decided against it.
	Epsilon = 1e-12

	// IdentityEpsilon is the coarser tolerance used to decide whether the left
	// block of a reduced [A | I] reached the identity. Accumulated rounding
	// over O(n^2) row operations routinely exceeds Epsilon.
	IdentityEpsilon = 1e-8

	// cleanScale rounds to 12 decimal places.
	cleanScale = 1e12

	// cleanLimit bounds the magnitude for which x*cleanScale stays well below
	// 2^52, so that rounding to 12 decimals is representable and stable.
	cleanLimit = 1024.0
)

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool { return math.Abs(x) < Epsilon }

// IsOne reports whether x is within Epsilon of 1.
func IsOne(x float64) bool { return IsZero(x - 1) }

// Clean removes float noise from x:
//   - |x| < Epsilon becomes exactly 0;
//   - otherwise x is rounded to 12 decimal places;
//   - negative zero is normalized to +0.
//
// Values with |x| ≥ 1024 carry too few fractional digits for a stable
// 12-decimal rounding and are returned as-is, as are ±Inf and NaN. Clean is idempotent
// for every finite x.
func Clean(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= cleanLimit {
		return x
	}
	r := math.Round(x*cleanScale) / cleanScale
	if r == 0 {
		return 0 // also folds -0
	}

	return r
}
