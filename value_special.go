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

	"github.com/dynnum/dynnum/format"
)

// The sentinel values are not tied to a float representation:
// any arithmetic result can collapse into one of them,
// and they follow IEEE-754 propagation rules under every operator.

var (
	NaN              Value = NaNValue{}
	PositiveInfinity Value = PositiveInfinityValue{}
	NegativeInfinity Value = NegativeInfinityValue{}
)

// NaNValue

type NaNValue struct{}

var _ Value = NaNValue{}

func (NaNValue) isValue() {}

func (NaNValue) TypeName() string {
	return "NaN"
}

func (NaNValue) String() string {
	return format.NaN
}

func (NaNValue) IsNaN() bool {
	return true
}

func (NaNValue) IsInfinite() bool {
	return false
}

func (NaNValue) IsPositiveInfinity() bool {
	return false
}

func (NaNValue) IsNegativeInfinity() bool {
	return false
}

func (NaNValue) IsFinite() bool {
	return false
}

func (NaNValue) ToFloat64() float64 {
	return math.NaN()
}

// NaN combined with anything under any operator is NaN.

func (NaNValue) Plus(Value) Value {
	return NaN
}

func (NaNValue) Minus(Value) Value {
	return NaN
}

func (NaNValue) Mul(Value) Value {
	return NaN
}

func (NaNValue) Div(Value) Value {
	return NaN
}

func (NaNValue) Mod(Value) Value {
	return NaN
}

// NaN is not equal to anything, including itself,
// and is unordered against everything.

func (NaNValue) Equal(Value) bool {
	return false
}

func (NaNValue) Compare(Value) (int, bool) {
	return 0, false
}

// PositiveInfinityValue

type PositiveInfinityValue struct{}

var _ Value = PositiveInfinityValue{}

func (PositiveInfinityValue) isValue() {}

func (PositiveInfinityValue) TypeName() string {
	return "PositiveInfinity"
}

func (PositiveInfinityValue) String() string {
	return format.PositiveInfinity
}

func (PositiveInfinityValue) IsNaN() bool {
	return false
}

func (PositiveInfinityValue) IsInfinite() bool {
	return true
}

func (PositiveInfinityValue) IsPositiveInfinity() bool {
	return true
}

func (PositiveInfinityValue) IsNegativeInfinity() bool {
	return false
}

func (PositiveInfinityValue) IsFinite() bool {
	return false
}

func (PositiveInfinityValue) ToFloat64() float64 {
	return math.Inf(1)
}

func (v PositiveInfinityValue) Plus(other Value) Value {
	return add(v, other)
}

func (v PositiveInfinityValue) Minus(other Value) Value {
	return sub(v, other)
}

func (v PositiveInfinityValue) Mul(other Value) Value {
	return mul(v, other)
}

func (v PositiveInfinityValue) Div(other Value) Value {
	return div(v, other)
}

func (v PositiveInfinityValue) Mod(other Value) Value {
	return mod(v, other)
}

func (v PositiveInfinityValue) Equal(other Value) bool {
	return equal(v, other)
}

func (v PositiveInfinityValue) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// NegativeInfinityValue

type NegativeInfinityValue struct{}

var _ Value = NegativeInfinityValue{}

func (NegativeInfinityValue) isValue() {}

func (NegativeInfinityValue) TypeName() string {
	return "NegativeInfinity"
}

func (NegativeInfinityValue) String() string {
	return format.NegativeInfinity
}

func (NegativeInfinityValue) IsNaN() bool {
	return false
}

func (NegativeInfinityValue) IsInfinite() bool {
	return true
}

func (NegativeInfinityValue) IsPositiveInfinity() bool {
	return false
}

func (NegativeInfinityValue) IsNegativeInfinity() bool {
	return true
}

func (NegativeInfinityValue) IsFinite() bool {
	return false
}

func (NegativeInfinityValue) ToFloat64() float64 {
	return math.Inf(-1)
}

func (v NegativeInfinityValue) Plus(other Value) Value {
	return add(v, other)
}

func (v NegativeInfinityValue) Minus(other Value) Value {
	return sub(v, other)
}

func (v NegativeInfinityValue) Mul(other Value) Value {
	return mul(v, other)
}

func (v NegativeInfinityValue) Div(other Value) Value {
	return div(v, other)
}

func (v NegativeInfinityValue) Mod(other Value) Value {
	return mod(v, other)
}

func (v NegativeInfinityValue) Equal(other Value) bool {
	return equal(v, other)
}

func (v NegativeInfinityValue) Compare(other Value) (int, bool) {
	return compare(v, other)
}
