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

package shaderpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goarrg.com/debug"

	"demo-tools/internal/cemit"
)

// ErrNullByte reports shader source that contains a NUL byte. NUL bytes
// separate shaders in the packed output, so they cannot appear in sources.
var ErrNullByte = errors.New("shader source code contains null byte")

// ReadData reads and normalizes the source for every shader in the
// manifest, relative to directory. Trailing whitespace is stripped from
// each line and trailing blank lines are dropped.
func ReadData(manifest *Manifest, directory string) ([]string, error) {
	shaders := make([]string, 0, len(manifest.Shaders))
	for _, shader := range manifest.Shaders {
		path := filepath.Join(directory, shader.Name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, debug.ErrorWrapf(err, "failed to read shader %s", path)
		}
		shaders = append(shaders, normalize(string(data)))
	}
	return shaders, nil
}

func normalize(text string) string {
	var out strings.Builder
	out.Grow(len(text) + 1)
	for line := range strings.Lines(text) {
		out.WriteString(strings.TrimRight(line, " \t\r\n"))
		out.WriteByte('\n')
	}
	return strings.TrimRight(out.String(), " \t\r\n")
}

// EmitText packs the shader sources into a C++ definition of the
// NUL-separated ShaderText array.
func EmitText(shaders []string) (string, error) {
	size := len(shaders)
	for _, shader := range shaders {
		if strings.ContainsRune(shader, 0) {
			return "", ErrNullByte
		}
		size += len(shader)
	}
	var out strings.Builder
	out.WriteString(cemit.Header)
	out.WriteString("namespace demo {\nnamespace gl_shader {\n")
	fmt.Fprintf(&out, "extern const char ShaderText[%d] =\n", size)
	writer := cemit.NewStringWriter(&out)
	for n, shader := range shaders {
		if n != 0 {
			writer.Write([]byte{0})
		}
		writer.Write([]byte(shader))
	}
	writer.Finish()
	out.WriteString(";\n")
	out.WriteString("}\n}\n")
	return out.String(), nil
}
