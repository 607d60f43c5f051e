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
	"strings"
	"unicode"

	"github.com/dynnum/dynnum"
)

// evaluate computes an infix expression over dynnum values.
//
// Grammar:
//
//	expression: term (("+" | "-") term)*
//	term:       factor (("*" | "/" | "%") factor)*
//	factor:     ("+" | "-") factor | "(" expression ")" | literal
//
// Literals are anything dynnum.Parse accepts: integer and float
// literals, and the nan/inf special tokens.
func evaluate(input string) (dynnum.Value, error) {
	tokens, err := lexExpression(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	p := &exprParser{tokens: tokens}
	result, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("unexpected %q", p.peek())
	}
	return result, nil
}

func lexExpression(input string) ([]string, error) {
	var tokens []string
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case strings.ContainsRune("+-*/%()", r):
			tokens = append(tokens, string(r))
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) {
				r := runes[i]
				if unicode.IsDigit(r) || r == '.' || r == 'e' || r == 'E' {
					i++
					continue
				}
				// a sign directly after the exponent marker
				// belongs to the literal
				if (r == '+' || r == '-') && i > start &&
					(runes[i-1] == 'e' || runes[i-1] == 'E') {
					i++
					continue
				}
				break
			}
			tokens = append(tokens, string(runes[start:i]))

		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))

		default:
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}

	return tokens, nil
}

type exprParser struct {
	tokens []string
	pos    int
}

func (p *exprParser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *exprParser) peek() string {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *exprParser) next() string {
	token := p.peek()
	p.pos++
	return token
}

func (p *exprParser) parseExpression() (dynnum.Value, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek() {
		case "+":
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = left.Plus(right)
		case "-":
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = left.Minus(right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (dynnum.Value, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek() {
		case "*":
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = left.Mul(right)
		case "/":
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = left.Div(right)
		case "%":
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = left.Mod(right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseFactor() (dynnum.Value, error) {
	switch p.peek() {
	case "":
		return nil, fmt.Errorf("unexpected end of expression")

	case "+":
		p.next()
		return p.parseFactor()

	case "-":
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return dynnum.From(0).Minus(operand), nil

	case "(":
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.next() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil

	default:
		return dynnum.Parse(p.next())
	}
}
