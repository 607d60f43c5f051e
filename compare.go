/*
 * Dynnum - a self-sizing dynamic number type
 *
 * Copyright Dynnum Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dynnum

import (
	"math/big"
)

// Comparison is over the mathematically exact values, not a widened
// float view: 2^63 - 1 as an integer is not equal to 2^63 as a float,
// even though both widen to the same float64.
//
// The order is partial: NaN is unordered against everything,
// including itself.

func equal(a, b Value) bool {
	cmp, ok := compare(a, b)
	return ok && cmp == 0
}

func compare(a, b Value) (int, bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}

	// Infinities order by sign against everything finite,
	// and compare equal to themselves.
	switch {
	case a.IsPositiveInfinity():
		if b.IsPositiveInfinity() {
			return 0, true
		}
		return 1, true
	case a.IsNegativeInfinity():
		if b.IsNegativeInfinity() {
			return 0, true
		}
		return -1, true
	case b.IsPositiveInfinity():
		return -1, true
	case b.IsNegativeInfinity():
		return 1, true
	}

	aInt := isInteger(a)
	bInt := isInteger(b)

	switch {
	case aInt && bInt:
		return compareIntegers(a, b), true

	case !aInt && !bInt:
		// Finite floats compare exactly in float64:
		// widening from 32 bits is lossless.
		af := a.ToFloat64()
		bf := b.ToFloat64()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}

	default:
		// Mixed integer and float: big.Float holds both sides exactly.
		af := bigFloatOf(a)
		bf := bigFloatOf(b)
		return af.Cmp(bf), true
	}
}

func compareIntegers(a, b Value) int {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
	return integerBig(a).Cmp(integerBig(b))
}

func bigFloatOf(v Value) *big.Float {
	if isInteger(v) {
		return new(big.Float).SetInt(integerBig(v))
	}
	return new(big.Float).SetFloat64(v.ToFloat64())
}
