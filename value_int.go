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

// Int8Value

type Int8Value int8

var _ Value = Int8Value(0)
var _ IntegerValue = Int8Value(0)

func (Int8Value) isValue()        {}
func (Int8Value) isIntegerValue() {}

func (Int8Value) TypeName() string {
	return "Integer8"
}

func (v Int8Value) String() string {
	return format.Int(int64(v))
}

func (Int8Value) IsNaN() bool {
	return false
}

func (Int8Value) IsInfinite() bool {
	return false
}

func (Int8Value) IsPositiveInfinity() bool {
	return false
}

func (Int8Value) IsNegativeInfinity() bool {
	return false
}

func (Int8Value) IsFinite() bool {
	return true
}

func (v Int8Value) ToFloat64() float64 {
	return float64(v)
}

func (v Int8Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Int8Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Int8Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Int8Value) Div(other Value) Value {
	return div(v, other)
}

func (v Int8Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Int8Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Int8Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// Int16Value

type Int16Value int16

var _ Value = Int16Value(0)
var _ IntegerValue = Int16Value(0)

func (Int16Value) isValue()        {}
func (Int16Value) isIntegerValue() {}

func (Int16Value) TypeName() string {
	return "Integer16"
}

func (v Int16Value) String() string {
	return format.Int(int64(v))
}

func (Int16Value) IsNaN() bool {
	return false
}

func (Int16Value) IsInfinite() bool {
	return false
}

func (Int16Value) IsPositiveInfinity() bool {
	return false
}

func (Int16Value) IsNegativeInfinity() bool {
	return false
}

func (Int16Value) IsFinite() bool {
	return true
}

func (v Int16Value) ToFloat64() float64 {
	return float64(v)
}

func (v Int16Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Int16Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Int16Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Int16Value) Div(other Value) Value {
	return div(v, other)
}

func (v Int16Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Int16Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Int16Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// Int32Value

type Int32Value int32

var _ Value = Int32Value(0)
var _ IntegerValue = Int32Value(0)

func (Int32Value) isValue()        {}
func (Int32Value) isIntegerValue() {}

func (Int32Value) TypeName() string {
	return "Integer32"
}

func (v Int32Value) String() string {
	return format.Int(int64(v))
}

func (Int32Value) IsNaN() bool {
	return false
}

func (Int32Value) IsInfinite() bool {
	return false
}

func (Int32Value) IsPositiveInfinity() bool {
	return false
}

func (Int32Value) IsNegativeInfinity() bool {
	return false
}

func (Int32Value) IsFinite() bool {
	return true
}

func (v Int32Value) ToFloat64() float64 {
	return float64(v)
}

func (v Int32Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Int32Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Int32Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Int32Value) Div(other Value) Value {
	return div(v, other)
}

func (v Int32Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Int32Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Int32Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// Int64Value

type Int64Value int64

var _ Value = Int64Value(0)
var _ IntegerValue = Int64Value(0)

func (Int64Value) isValue()        {}
func (Int64Value) isIntegerValue() {}

func (Int64Value) TypeName() string {
	return "Integer64"
}

func (v Int64Value) String() string {
	return format.Int(int64(v))
}

func (Int64Value) IsNaN() bool {
	return false
}

func (Int64Value) IsInfinite() bool {
	return false
}

func (Int64Value) IsPositiveInfinity() bool {
	return false
}

func (Int64Value) IsNegativeInfinity() bool {
	return false
}

func (Int64Value) IsFinite() bool {
	return true
}

func (v Int64Value) ToFloat64() float64 {
	return float64(v)
}

func (v Int64Value) Plus(other Value) Value {
	return add(v, other)
}

func (v Int64Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v Int64Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v Int64Value) Div(other Value) Value {
	return div(v, other)
}

func (v Int64Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v Int64Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v Int64Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}

// UInt64Value
//
// UInt64Value is only ever selected for magnitudes above the signed
// 64-bit range: for anything smaller, the selector prefers a signed width,
// so the narrower unsigned widths would be unreachable and do not exist.

type UInt64Value uint64

var _ Value = UInt64Value(0)
var _ IntegerValue = UInt64Value(0)

func (UInt64Value) isValue()        {}
func (UInt64Value) isIntegerValue() {}

func (UInt64Value) TypeName() string {
	return "UInteger64"
}

func (v UInt64Value) String() string {
	return format.Uint(uint64(v))
}

func (UInt64Value) IsNaN() bool {
	return false
}

func (UInt64Value) IsInfinite() bool {
	return false
}

func (UInt64Value) IsPositiveInfinity() bool {
	return false
}

func (UInt64Value) IsNegativeInfinity() bool {
	return false
}

func (UInt64Value) IsFinite() bool {
	return true
}

func (v UInt64Value) ToFloat64() float64 {
	return float64(v)
}

func (v UInt64Value) Plus(other Value) Value {
	return add(v, other)
}

func (v UInt64Value) Minus(other Value) Value {
	return sub(v, other)
}

func (v UInt64Value) Mul(other Value) Value {
	return mul(v, other)
}

func (v UInt64Value) Div(other Value) Value {
	return div(v, other)
}

func (v UInt64Value) Mod(other Value) Value {
	return mod(v, other)
}

func (v UInt64Value) Equal(other Value) bool {
	return equal(v, other)
}

func (v UInt64Value) Compare(other Value) (int, bool) {
	return compare(v, other)
}
