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
	"math"

	"github.com/dynnum/dynnum/errors"
)

// The selector: every constructor routes through one of the functions
// in this file, so a freshly constructed value — and, because arithmetic
// re-selects its results, every value — is always minimally sized.

// FromInt64 returns the value in the narrowest signed integer
// representation that holds it exactly.
func FromInt64(v int64) Value {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return Int8Value(v)
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return Int16Value(v)
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return Int32Value(v)
	default:
		return Int64Value(v)
	}
}

// FromUint64 prefers a signed representation, and falls back to
// UInt64Value only for magnitudes above the signed 64-bit range.
func FromUint64(v uint64) Value {
	if v <= math.MaxInt64 {
		return FromInt64(int64(v))
	}
	return UInt64Value(v)
}

// FromFloat64 normalizes non-finite values into the sentinels,
// and selects Float32Value when the value round-trips through
// 32 bits without precision loss.
func FromFloat64(v float64) Value {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	}
	if narrowed := float32(v); float64(narrowed) == v {
		return Float32Value(narrowed)
	}
	return Float64Value(v)
}

// FromFloat32 normalizes non-finite values into the sentinels.
func FromFloat32(v float32) Value {
	return FromFloat64(float64(v))
}

// Number is the closed set of native numeric types a Value can be
// constructed from.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// From converts a native numeric value into its minimal representation.
// All native types route uniformly through the selector, so e.g.
// From(int64(7)) and From(uint8(7)) produce the same Int8Value.
func From[T Number](v T) Value {
	switch v := any(v).(type) {
	case int:
		return FromInt64(int64(v))
	case int8:
		return FromInt64(int64(v))
	case int16:
		return FromInt64(int64(v))
	case int32:
		return FromInt64(int64(v))
	case int64:
		return FromInt64(v)
	case uint:
		return FromUint64(uint64(v))
	case uint8:
		return FromUint64(uint64(v))
	case uint16:
		return FromUint64(uint64(v))
	case uint32:
		return FromUint64(uint64(v))
	case uint64:
		return FromUint64(v)
	case uintptr:
		return FromUint64(uint64(v))
	case float32:
		return FromFloat32(v)
	case float64:
		return FromFloat64(v)
	default:
		panic(errors.NewUnreachableError())
	}
}
