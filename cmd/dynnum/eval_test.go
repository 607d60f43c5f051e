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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {

	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{"1 + 2", "3"},
		{"1+2*3", "7"},
		{"(1 + 2) * 3", "9"},
		{"7 / 2", "3.5"},
		{"7 % 3", "1"},
		{"-5", "-5"},
		{"-(2 + 3)", "-5"},
		{"+5", "5"},
		{"2.5e2 + 0.5", "250.5"},
		{"3e+2", "300"},
		{"1e-1", "0.1"},
		{"32767 + 1", "32768"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"inf + -inf", "NaN"},
		{"5 / 0", "inf"},
		{"-5 / 0", "-inf"},
		{"0 / 0", "NaN"},
		{"nan * 2", "NaN"},
	}

	for _, testCase := range testCases {
		result, err := evaluate(testCase.input)
		require.NoError(t, err, "input: %q", testCase.input)
		assert.Equal(t, testCase.expected, result.String(), "input: %q", testCase.input)
	}
}

func TestEvaluateTypeSelection(t *testing.T) {

	t.Parallel()

	testCases := []struct {
		input    string
		typeName string
	}{
		{"100 + 100", "Integer16"},
		{"1000 - 999", "Integer8"},
		{"9223372036854775807 + 1", "UInteger64"},
		{"1 / 3", "Float64"},
		{"7 / 2", "Float32"},
	}

	for _, testCase := range testCases {
		result, err := evaluate(testCase.input)
		require.NoError(t, err, "input: %q", testCase.input)
		assert.Equal(t, testCase.typeName, result.TypeName(), "input: %q", testCase.input)
	}
}

func TestEvaluateErrors(t *testing.T) {

	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"1 +",
		"* 2",
		"(1 + 2",
		"1 2",
		"foo + 1",
		"1 & 2",
	}

	for _, input := range inputs {
		_, err := evaluate(input)
		assert.Error(t, err, "input: %q", input)
	}
}

func TestLexExpression(t *testing.T) {

	t.Parallel()

	tokens, err := lexExpression("1+2.5e-3 * (nan % -inf)")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"1", "+", "2.5e-3", "*", "(", "nan", "%", "-", "inf", ")"},
		tokens,
	)

	_, err = lexExpression("1 # 2")
	assert.Error(t, err)
}
