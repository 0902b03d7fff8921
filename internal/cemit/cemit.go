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

// Package cemit has helpers for emitting generated C++ source text.
package cemit

import (
	"fmt"
	"os"
	"strings"

	"goarrg.com/debug"
)

// Header is the banner at the top of every generated file.
const Header = "// This file is automatically generated. Do not edit.\n"

const columns = 79

// StringWriter emits a quoted C string literal, split across multiple lines
// so that no line exceeds the column limit.
type StringWriter struct {
	out  *strings.Builder
	line int
	size int
}

// NewStringWriter starts a string literal on out.
func NewStringWriter(out *strings.Builder) *StringWriter {
	out.WriteByte('"')
	return &StringWriter{out: out, line: 1}
}

// Write appends bytes to the literal, escaping as needed.
func (w *StringWriter) Write(data []byte) {
	for _, c := range data {
		escaped := escape(c)
		if w.line+len(escaped) > columns-1 {
			w.out.WriteString("\"\n\"")
			w.line = 1
		}
		w.out.WriteString(escaped)
		w.line += len(escaped)
		w.size++
	}
}

// Finish closes the literal and returns the number of content bytes
// written. The count excludes the terminating NUL that the compiler adds.
func (w *StringWriter) Finish() int {
	w.out.WriteByte('"')
	return w.size
}

func escape(c byte) string {
	switch c {
	case '\\':
		return `\\`
	case '"':
		return `\"`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\n':
		return `\n`
	}
	if 32 <= c && c <= 126 {
		return string(c)
	}
	return fmt.Sprintf(`\x%02x`, c)
}

// WriteOrStdout writes contents to the given path, or to stdout when the
// path is empty.
func WriteOrStdout(path string, contents []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(contents)
		return err
	}
	debug.IPrintf("Writing file: %s", path)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return debug.ErrorWrapf(err, "failed to write %s", path)
	}
	return nil
}
