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
	"math/big"

	"github.com/dynnum/dynnum/errors"
)

// Arithmetic is total. Each operator promotes in the same order:
//
//  1. NaN operands short-circuit to NaN.
//  2. Infinite operands short-circuit to the IEEE-754 result
//     (computed in 64-bit floats, which encode the full propagation
//     table: Inf + -Inf, Inf * 0, and Inf / Inf are NaN, all other
//     combinations are a sign-ruled infinity or zero).
//  3. Two integer operands are computed exactly: in int64 when both
//     fit, escalating to big.Int on overflow or an unsigned operand.
//     A result beyond all integer representations falls back to the
//     nearest 64-bit float.
//  4. Anything else is computed in 64-bit floats.
//
// Every finite result is re-run through the selector, so results are
// minimally sized regardless of the operand representations.

func add(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.IsInfinite() || b.IsInfinite() {
		return FromFloat64(a.ToFloat64() + b.ToFloat64())
	}
	if isInteger(a) && isInteger(b) {
		return integerAdd(a, b)
	}
	return FromFloat64(a.ToFloat64() + b.ToFloat64())
}

func sub(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.IsInfinite() || b.IsInfinite() {
		return FromFloat64(a.ToFloat64() - b.ToFloat64())
	}
	if isInteger(a) && isInteger(b) {
		return integerSub(a, b)
	}
	return FromFloat64(a.ToFloat64() - b.ToFloat64())
}

func mul(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.IsInfinite() || b.IsInfinite() {
		return FromFloat64(a.ToFloat64() * b.ToFloat64())
	}
	if isInteger(a) && isInteger(b) {
		return integerMul(a, b)
	}
	return FromFloat64(a.ToFloat64() * b.ToFloat64())
}

func div(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.IsInfinite() || b.IsInfinite() {
		return FromFloat64(a.ToFloat64() / b.ToFloat64())
	}
	if isInteger(a) && isInteger(b) {
		return integerDiv(a, b)
	}
	// Division by a zero divisor is covered by float semantics:
	// a sign-ruled infinity, or NaN for 0 / 0.
	return FromFloat64(a.ToFloat64() / b.ToFloat64())
}

// mod uses truncated division semantics for mixed signs,
// like Go's % operator: -7 mod 3 is -1, and 7 mod -3 is 1.
func mod(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	// Unlike the other operators, mod is NaN for any infinite operand:
	// an infinite modulus would otherwise pass the dividend through.
	if a.IsInfinite() || b.IsInfinite() {
		return NaN
	}
	if isInteger(a) && isInteger(b) {
		return integerMod(a, b)
	}
	return FromFloat64(math.Mod(a.ToFloat64(), b.ToFloat64()))
}

func isInteger(v Value) bool {
	_, ok := v.(IntegerValue)
	return ok
}

// toInt64 widens a signed integer variant to int64.
// It reports false for UInt64Value, whose magnitude never fits.
func toInt64(v Value) (int64, bool) {
	switch v := v.(type) {
	case Int8Value:
		return int64(v), true
	case Int16Value:
		return int64(v), true
	case Int32Value:
		return int64(v), true
	case Int64Value:
		return int64(v), true
	}
	return 0, false
}

func integerBig(v Value) *big.Int {
	switch v := v.(type) {
	case Int8Value:
		return big.NewInt(int64(v))
	case Int16Value:
		return big.NewInt(int64(v))
	case Int32Value:
		return big.NewInt(int64(v))
	case Int64Value:
		return big.NewInt(int64(v))
	case UInt64Value:
		return new(big.Int).SetUint64(uint64(v))
	default:
		panic(errors.NewUnreachableError())
	}
}

// fromBigInt re-selects an exact integer result:
// signed when it fits, unsigned for magnitudes up to the 64-bit
// unsigned range, and a 64-bit float approximation beyond that.
func fromBigInt(v *big.Int) Value {
	if v.IsInt64() {
		return FromInt64(v.Int64())
	}
	if v.IsUint64() {
		return FromUint64(v.Uint64())
	}
	approx, _ := new(big.Float).SetInt(v).Float64()
	return float64Approximation(approx)
}

// float64Approximation keeps an inexact integer result in the wide
// float representation. Overflow results cluster near powers of two,
// which tend to round-trip through 32 bits even though the exact
// result does not: narrowing here would discard precision the
// selector cannot see.
func float64Approximation(v float64) Value {
	switch {
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	}
	return Float64Value(v)
}

func integerAdd(a, b Value) Value {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		// INT32-C
		overflows := (bi > 0 && ai > math.MaxInt64-bi) ||
			(bi < 0 && ai < math.MinInt64-bi)
		if !overflows {
			return FromInt64(ai + bi)
		}
	}
	return fromBigInt(new(big.Int).Add(integerBig(a), integerBig(b)))
}

func integerSub(a, b Value) Value {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		// INT32-C
		overflows := (bi > 0 && ai < math.MinInt64+bi) ||
			(bi < 0 && ai > math.MaxInt64+bi)
		if !overflows {
			return FromInt64(ai - bi)
		}
	}
	return fromBigInt(new(big.Int).Sub(integerBig(a), integerBig(b)))
}

func integerMul(a, b Value) Value {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok && !mulInt64Overflows(ai, bi) {
		return FromInt64(ai * bi)
	}
	return fromBigInt(new(big.Int).Mul(integerBig(a), integerBig(b)))
}

// INT32-C
func mulInt64Overflows(a, b int64) bool {
	if a > 0 {
		if b > 0 {
			return a > math.MaxInt64/b
		}
		return b < math.MinInt64/a
	}
	if b > 0 {
		return a < math.MinInt64/b
	}
	return a != 0 && b < math.MaxInt64/a
}

// integerDiv keeps an exact quotient integral, and falls back to float
// division for inexact quotients and zero divisors.
func integerDiv(a, b Value) Value {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		if bi != 0 && ai%bi == 0 {
			if ai == math.MinInt64 && bi == -1 {
				// the only exact int64 quotient that overflows
				return fromBigInt(new(big.Int).Neg(big.NewInt(math.MinInt64)))
			}
			return FromInt64(ai / bi)
		}
		return FromFloat64(float64(ai) / float64(bi))
	}

	divisor := integerBig(b)
	if divisor.Sign() != 0 {
		quo, rem := new(big.Int).QuoRem(integerBig(a), divisor, new(big.Int))
		if rem.Sign() == 0 {
			return fromBigInt(quo)
		}
	}
	return FromFloat64(a.ToFloat64() / b.ToFloat64())
}

func integerMod(a, b Value) Value {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		if bi == 0 {
			return NaN
		}
		return FromInt64(ai % bi)
	}

	divisor := integerBig(b)
	if divisor.Sign() == 0 {
		return NaN
	}
	return fromBigInt(new(big.Int).Rem(integerBig(a), divisor))
}
