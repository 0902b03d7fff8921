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

package glreg

import (
	"os"

	"goarrg.com/debug"

	"demo-tools/internal/identifier"
)

// IsEntryPoint reports whether an identifier matches the pattern expected
// for an OpenGL entry point: "gl" followed by an uppercase letter.
func IsEntryPoint(name string) bool {
	return len(name) >= 3 && name[0] == 'g' && name[1] == 'l' &&
		'A' <= name[2] && name[2] <= 'Z'
}

// ScanEntryPoints returns all identifiers in text that look like OpenGL
// entry points.
func ScanEntryPoints(text string) map[string]bool {
	result := make(map[string]bool)
	for ident := range identifier.All(text) {
		if IsEntryPoint(ident) {
			result[ident] = true
		}
	}
	return result
}

// ReadEntryPoints scans the given source files and returns the union of
// their entry points.
func ReadEntryPoints(files []string) (map[string]bool, error) {
	result := make(map[string]bool)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, debug.ErrorWrapf(err, "failed to scan %s", file)
		}
		for name := range ScanEntryPoints(string(data)) {
			result[name] = true
		}
	}
	return result, nil
}
