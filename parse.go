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
	"fmt"
	"strconv"
	"strings"

	"github.com/dynnum/dynnum/errors"
)

// InvalidNumberError is returned by Parse for text that is neither
// a special token nor an integer or float literal.
type InvalidNumberError struct {
	Input string
}

var _ errors.UserError = &InvalidNumberError{}

func (*InvalidNumberError) IsUserError() {}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("cannot parse %q as a number", e.Input)
}

// Parse converts text into a number in its minimal representation.
//
// Surrounding whitespace is ignored. The case-insensitive tokens
// "nan", "inf"/"infinity", "+inf"/"+infinity", and "-inf"/"-infinity"
// map directly to the sentinel values. Anything else must be an
// integer literal (optional sign, decimal digits) or a float literal
// in decimal or scientific notation, consumed in full.
func Parse(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)

	switch strings.ToLower(trimmed) {
	case "nan":
		return NaN, nil
	case "inf", "infinity", "+inf", "+infinity":
		return PositiveInfinity, nil
	case "-inf", "-infinity":
		return NegativeInfinity, nil
	}

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return FromInt64(i), nil
	} else if rangeError(err) {
		// Integers beyond the signed 64-bit range may still fit the
		// unsigned escape representation.
		if u, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
			return FromUint64(u), nil
		}
		// Beyond all integer representations, an integer literal
		// becomes a 64-bit float approximation, never narrowed.
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil || rangeError(err) {
			return float64Approximation(f), nil
		}
	}

	// ParseFloat also accepts hexadecimal mantissas and digit
	// separators, which are not part of the accepted syntax here.
	if !strings.ContainsAny(trimmed, "xX_") {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err == nil || rangeError(err) {
			// An out-of-range literal saturates to an infinity,
			// which the selector turns into the matching sentinel.
			return FromFloat64(f), nil
		}
	}

	return nil, &InvalidNumberError{Input: s}
}

func rangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
