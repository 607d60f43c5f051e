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

package format

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "-42", Int(-42))
	assert.Equal(t, "-9223372036854775808", Int(math.MinInt64))
}

func TestUint(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "18446744073709551615", Uint(math.MaxUint64))
}

func TestFloat(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "0.1", Float(0.1))
	assert.Equal(t, "2.5", Float(2.5))
	assert.Equal(t, "250", Float(250))
	assert.Equal(t, "1.5e+21", Float(1.5e21))
	assert.Equal(t, "-0", Float(math.Copysign(0, -1)))
}

func TestFloatRoundTrips(t *testing.T) {

	t.Parallel()

	for _, v := range []float64{
		0, 0.1, 2.5, 1e-300, 1.5e21,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		float64(math.MaxFloat32),
	} {
		parsed, err := strconv.ParseFloat(Float(v), 64)
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}
