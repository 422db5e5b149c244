// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
)

const (
	annotationZero      = 1e-10 // below this an annotation shows "0"
	annotationIntTol    = 1e-10 // within this of an integer an annotation shows the integer
	annotationPrecision = 8     // significant digits for non-integer annotations
	solutionDecimals    = 1e6   // back-substituted values are rounded to 6 decimals
	annotationFixedMin  = 1e-6  // smallest magnitude printed without an exponent
	annotationFixedMax  = 1e21  // first magnitude printed with an exponent
)

// FormatAnnotation renders x for a symbolic row-operation annotation:
// "0" for |x| < 1e-10, the integer for near-integers, otherwise at most
// 8 significant digits without trailing zeros, in positional notation for
// magnitudes in [1e-6, 1e21).
//
//	FormatAnnotation(2)        == "2"
//	FormatAnnotation(-0.75)    == "-0.75"
//	FormatAnnotation(1.0 / 3)  == "0.33333333"
func FormatAnnotation(x float64) string {
	if math.Abs(x) < annotationZero {
		return "0"
	}
	r := math.Round(x)
	if math.Abs(x-r) < annotationIntTol {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}

	// 8 significant digits; positional inside [1e-6, 1e21).
	s := strconv.FormatFloat(x, 'g', annotationPrecision, 64)
	if a := math.Abs(x); a < annotationFixedMin || a >= annotationFixedMax {
		return s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSolution renders a solved variable value: exact integers without
// decimals, everything else rounded to 6 decimal places with trailing zeros
// dropped. Negative zero renders as "0".
func FormatSolution(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		if x == 0 {
			return "0"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	r := math.Round(x*solutionDecimals) / solutionDecimals
	if r == 0 {
		return "0"
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}
