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
	"github.com/logrusorgru/aurora/v4"

	"github.com/dynnum/dynnum"
)

var au = aurora.New(aurora.WithColors(true))

func colorizeResult(value dynnum.Value) string {
	return au.Colorize(value.String(), aurora.YellowFg|aurora.BrightFg).String()
}

func colorizeTypeName(name string) string {
	return au.Colorize(name, aurora.CyanFg).String()
}

func colorizeError(message string) string {
	return au.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
