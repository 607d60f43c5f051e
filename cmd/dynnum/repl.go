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
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
)

type repl struct {
	showTypes bool
}

func runREPL() {
	printReplWelcome()

	r := &repl{}

	executor := func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			r.handleCommand(line)
			return
		}

		result, err := evaluate(line)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}

		if r.showTypes {
			fmt.Printf("%s  %s\n",
				colorizeResult(result),
				colorizeTypeName(result.TypeName()),
			)
		} else {
			fmt.Println(colorizeResult(result))
		}
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 {
			return nil
		}
		return prompt.FilterHasPrefix(replSuggestions, word, true)
	}

	prompt.New(
		executor,
		suggest,
		prompt.OptionPrefix("> "),
	).Run()
}

var replSuggestions = []prompt.Suggest{
	{Text: "nan", Description: "Not a number"},
	{Text: "inf", Description: "Positive infinity"},
	{Text: "infinity", Description: "Positive infinity"},
	{Text: ".help", Description: "Print the help message"},
	{Text: ".type", Description: "Toggle printing representation names"},
	{Text: ".exit", Description: "Exit the calculator"},
}

const replHelpMessage = `
Enter an expression over + - * / % to evaluate it.
Numbers may be integers, floats, or the tokens nan, inf, and -inf.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the calculator
.type     Toggle printing representation names next to results
.help     Print this help message

Press ^C to abort the current expression, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func (r *repl) handleCommand(command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	case ".type":
		r.showTypes = !r.showTypes
		if r.showTypes {
			fmt.Println("Printing representation names")
		} else {
			fmt.Println("Not printing representation names")
		}
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to the dynnum calculator!\n%s\n\n", replAssistanceMessage)
}
