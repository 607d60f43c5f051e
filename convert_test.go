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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFromInt64Selection(t *testing.T) {

	t.Parallel()

	testCases := []struct {
		value    int64
		expected string
	}{
		{0, "Integer8"},
		{127, "Integer8"},
		{-128, "Integer8"},
		{128, "Integer16"},
		{-129, "Integer16"},
		{32767, "Integer16"},
		{-32768, "Integer16"},
		{32768, "Integer32"},
		{-32769, "Integer32"},
		{math.MaxInt32, "Integer32"},
		{math.MinInt32, "Integer32"},
		{math.MaxInt32 + 1, "Integer64"},
		{math.MinInt32 - 1, "Integer64"},
		{math.MaxInt64, "Integer64"},
		{math.MinInt64, "Integer64"},
	}

	for _, testCase := range testCases {
		value := FromInt64(testCase.value)
		assert.Equal(t, testCase.expected, value.TypeName(), "value: %d", testCase.value)
	}
}

func TestFromUint64Selection(t *testing.T) {

	t.Parallel()

	// The selector prefers signed representations:
	// unsigned is the escape hatch above the signed 64-bit range
	testCases := []struct {
		value    uint64
		expected string
	}{
		{0, "Integer8"},
		{5, "Integer8"},
		{300, "Integer16"},
		{math.MaxInt64, "Integer64"},
		{math.MaxInt64 + 1, "UInteger64"},
		{math.MaxUint64, "UInteger64"},
	}

	for _, testCase := range testCases {
		value := FromUint64(testCase.value)
		assert.Equal(t, testCase.expected, value.TypeName(), "value: %d", testCase.value)
	}
}

func TestFromFloat64Selection(t *testing.T) {

	t.Parallel()

	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "Float32"},
		{"exact in 32 bits", 2.5, "Float32"},
		{"integral", 250, "Float32"},
		{"largest 32-bit", math.MaxFloat32, "Float32"},
		{"inexact in 32 bits", 0.1, "Float64"},
		{"beyond 32-bit range", 1e300, "Float64"},
		{"smallest 64-bit subnormal", math.SmallestNonzeroFloat64, "Float64"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value := FromFloat64(testCase.value)
			assert.Equal(t, testCase.expected, value.TypeName())
			assert.Equal(t, testCase.value, value.ToFloat64())
		})
	}
}

func TestFromFloat64Sentinels(t *testing.T) {

	t.Parallel()

	assert.True(t, FromFloat64(math.NaN()).IsNaN())
	assert.True(t, FromFloat64(math.Inf(1)).IsPositiveInfinity())
	assert.True(t, FromFloat64(math.Inf(-1)).IsNegativeInfinity())
	assert.True(t, FromFloat32(float32(math.Inf(1))).IsPositiveInfinity())
}

func TestFromNativeTypes(t *testing.T) {

	t.Parallel()

	// all native types route uniformly through the selector
	testCases := map[string]struct {
		value    Value
		expected Value
	}{
		"int":     {From(7), Int8Value(7)},
		"int8":    {From(int8(-5)), Int8Value(-5)},
		"int16":   {From(int16(300)), Int16Value(300)},
		"int32":   {From(int32(70_000)), Int32Value(70_000)},
		"int64":   {From(int64(math.MinInt64)), Int64Value(math.MinInt64)},
		"uint":    {From(uint(7)), Int8Value(7)},
		"uint8":   {From(uint8(7)), Int8Value(7)},
		"uint16":  {From(uint16(300)), Int16Value(300)},
		"uint32":  {From(uint32(70_000)), Int32Value(70_000)},
		"uint64":  {From(uint64(math.MaxUint64)), UInt64Value(math.MaxUint64)},
		"float32": {From(float32(1.5)), Float32Value(1.5)},
		"float64": {From(0.1), Float64Value(0.1)},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.value)
		})
	}
}

func TestSelectorMinimality(t *testing.T) {

	t.Parallel()

	narrowestSigned := func(v int64) string {
		switch {
		case v >= math.MinInt8 && v <= math.MaxInt8:
			return "Integer8"
		case v >= math.MinInt16 && v <= math.MaxInt16:
			return "Integer16"
		case v >= math.MinInt32 && v <= math.MaxInt32:
			return "Integer32"
		default:
			return "Integer64"
		}
	}

	properties := gopter.NewProperties(nil)

	properties.Property("integers select the narrowest width", prop.ForAll(
		func(v int64) bool {
			return FromInt64(v).TypeName() == narrowestSigned(v)
		},
		gen.Int64(),
	))

	properties.Property("integers round-trip exactly", prop.ForAll(
		func(v int64) bool {
			value := FromInt64(v)
			cmp, ok := value.Compare(FromInt64(v))
			return ok && cmp == 0 && value.String() == FromInt64(v).String()
		},
		gen.Int64(),
	))

	properties.Property("floats never widen needlessly", prop.ForAll(
		func(v float64) bool {
			value := FromFloat64(v)
			if float64(float32(v)) == v {
				return value.TypeName() == "Float32"
			}
			return value.TypeName() == "Float64"
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}
