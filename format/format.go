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

// Package format renders numeric values in their canonical textual form.
//
// The canonical forms are the ones the parser accepts back,
// so for every finite value, formatting and re-parsing round-trips.
package format

import (
	"strconv"
)

const (
	NaN              = "NaN"
	PositiveInfinity = "inf"
	NegativeInfinity = "-inf"
)

func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

func Uint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Float renders the shortest decimal form that parses back
// to exactly the given value.
//
// NOTE: 32-bit float values are rendered through their exact 64-bit value,
// not with a 32-bit shortest form: the 32-bit shortest form may re-parse
// to a nearby but different 64-bit value, which would break round-tripping.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
