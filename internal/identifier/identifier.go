/*
Copyright 2026 The demo-tools Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package identifier scans C++ source text for identifiers. This is a
// lightweight lexical scan, not true C++ tokenization: string literals,
// character literals, comments, and pp-numbers are skipped so that their
// contents are not mistaken for identifiers.
package identifier

import "iter"

// All returns an iterator over the identifiers in text, in order.
func All(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		i := 0
		for i < len(text) {
			c := text[i]
			switch {
			case c == '"' || c == '\'':
				i = skipString(text, i+1, c)
			case c == '/':
				i = skipComment(text, i+1)
			case isDigit(c):
				i = skipNumber(text, i+1)
			case c == '.':
				if i+1 < len(text) && isDigit(text[i+1]) {
					i = skipNumber(text, i+2)
				} else {
					i++
				}
			case isIdentStart(c):
				start := i
				i++
				for i < len(text) && isIdentCont(text[i]) {
					i++
				}
				if !yield(text[start:i]) {
					return
				}
			default:
				i++
			}
		}
	}
}

func skipString(text string, i int, delim byte) int {
	for i < len(text) {
		c := text[i]
		i++
		if c == delim {
			return i
		}
		if c == '\\' {
			i++
		}
	}
	return i
}

func skipComment(text string, i int) int {
	if i >= len(text) {
		return i
	}
	switch text[i] {
	case '/':
		for i++; i < len(text); i++ {
			if text[i] == '\n' || text[i] == '\r' {
				return i + 1
			}
		}
		return i
	case '*':
		for i++; i+1 < len(text); i++ {
			if text[i] == '*' && text[i+1] == '/' {
				return i + 2
			}
		}
		return len(text)
	}
	return i
}

// skipNumber skips a pp-number after its leading digit (or period and
// digit) have been consumed.
func skipNumber(text string, i int) int {
	for i < len(text) {
		c := text[i]
		switch {
		case c == 'e' || c == 'E' || c == 'p' || c == 'P':
			i++
			if i < len(text) && (text[i] == '+' || text[i] == '-') {
				i++
			}
		case isDigit(c) || isIdentStart(c) || c == '.':
			i++
		case c == '\'':
			// Digit separator, only inside the number.
			if i+1 < len(text) && isIdentCont(text[i+1]) {
				i += 2
			} else {
				return i
			}
		default:
			return i
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
