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
	"github.com/dynnum/dynnum/format"
)

// Float32Value
//
// The selector only produces a Float32Value when the 64-bit value
// round-trips through 32 bits exactly, so a Float32Value never holds
// a NaN or infinity bit pattern: those become the sentinel values.

type Float32Value float32

var _ Value = Float32Value(0)
var _ FloatValue = Float32Value(0)

func (Float32Value) isValue()      {}
func (Float32Value) isFloatValue() {}

func (Float32Value) TypeName() string {
	return "Float32"
}

func (v Float32Value) String() string {
	return format.Float(float64(v))
}

func (Float32Value) IsNaN() bool {
	return false
}

func (Float32Value) IsInfinite() bool {
	return false
}

func (Float32Value) IsPositiveInfinity() bool {
	return false
}

func (Float32Value) IsNegativeInfinity() bool {
	return false
}

func (Float32Value) IsFinite() bool {
	return true
}

func (v Float32Value) ToFloat64() float64 {
	return float64(v)
}

func (v Float32Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Float32Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Float32Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Float32Value) Div(other Value) Value {
	return div(v, other)
}

func (v Float32Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Float32Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Float32Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// Float64Value

type Float64Value float64

var _ Value = Float64Value(0)
var _ FloatValue = Float64Value(0)

func (Float64Value) isValue()      {}
func (Float64Value) isFloatValue() {}

func (Float64Value) TypeName() string {
	return "Float64"
}

func (v Float64Value) String() string {
	return format.Float(float64(v))
}

func (Float64Value) IsNaN() bool {
	return false
}

func (Float64Value) IsInfinite() bool {
	return false
}

func (Float64Value) IsPositiveInfinity() bool {
	return false
}

func (Float64Value) IsNegativeInfinity() bool {
	return false
}

func (Float64Value) IsFinite() bool {
	return true
}

func (v Float64Value) ToFloat64() float64 {
	return float64(v)
}

func (v Float64Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Float64Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Float64Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Float64Value) Div(other Value) Value {
	return div(v, other)
}

func (v Float64Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Float64Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Float64Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}
