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

// Package dynnum provides a numeric value type that transparently selects
// the smallest representation able to hold a value exactly:
// a signed integer of 8, 16, 32, or 64 bits, an unsigned 64-bit integer
// for magnitudes beyond the signed range, or a 32 or 64-bit float.
//
// Arithmetic is total: overflow, division by zero, and invalid operations
// never fail, they produce NaN or a signed infinity, following IEEE-754
// propagation rules. Results are re-selected, so a computation that fits
// a narrower representation returns in that narrower representation.
//
// Values are immutable. All operations are read-only over their operands
// and return fresh values, so values may be shared freely across goroutines.
package dynnum

import (
	"fmt"
)

// Value is a number in its minimal representation.
//
// A Value is always exactly one of:
//
//   - a signed integer: Int8Value, Int16Value, Int32Value, Int64Value
//   - an unsigned integer: UInt64Value, only ever selected for magnitudes
//     above the signed 64-bit range
//   - a float: Float32Value, Float64Value, always finite
//   - a sentinel: NaNValue, PositiveInfinityValue, NegativeInfinityValue
//
// Use From, FromInt64, FromUint64, FromFloat64, or Parse to construct one.
type Value interface {
	fmt.Stringer
	isValue()

	// TypeName returns a stable identifier for the value's
	// current representation, e.g. "Integer16" or "Float64".
	TypeName() string

	IsNaN() bool
	IsInfinite() bool
	IsPositiveInfinity() bool
	IsNegativeInfinity() bool
	IsFinite() bool

	// ToFloat64 returns the nearest 64-bit float view of the value.
	// It is lossy for integer magnitudes above 2^53.
	ToFloat64() float64

	Plus(other Value) Value
	Minus(other Value) Value
	Mul(other Value) Value
	Div(other Value) Value
	Mod(other Value) Value

	// Equal reports whether the mathematically exact values are equal,
	// regardless of representation. NaN is not equal to anything,
	// including itself.
	Equal(other Value) bool

	// Compare returns -1, 0, or 1. The second result is false when the
	// two values are unordered, i.e. when either is NaN.
	Compare(other Value) (int, bool)
}

// IntegerValue is implemented by the integer representations.
type IntegerValue interface {
	Value
	isIntegerValue()
}

// FloatValue is implemented by the finite float representations.
type FloatValue interface {
	Value
	isFloatValue()
}

// Less reports a < b. It is false when a and b are unordered.
func Less(a, b Value) bool {
	cmp, ok := a.Compare(b)
	return ok && cmp < 0
}

// LessEqual reports a <= b. It is false when a and b are unordered.
func LessEqual(a, b Value) bool {
	cmp, ok := a.Compare(b)
	return ok && cmp <= 0
}

// Greater reports a > b. It is false when a and b are unordered.
func Greater(a, b Value) bool {
	cmp, ok := a.Compare(b)
	return ok && cmp > 0
}

// GreaterEqual reports a >= b. It is false when a and b are unordered.
func GreaterEqual(a, b Value) bool {
	cmp, ok := a.Compare(b)
	return ok && cmp >= 0
}
