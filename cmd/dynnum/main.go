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

// dynnum is a calculator over self-sizing numbers.
//
// With arguments, it evaluates them as a single expression and prints
// the result:
//
//	$ dynnum 32767 + 1
//	32768
//
// Without arguments, it starts an interactive REPL.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) > 1 {
		result, err := evaluate(strings.Join(os.Args[1:], " "))
		if err != nil {
			fmt.Fprintln(os.Stderr, colorizeError(err.Error()))
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	runREPL()
}
