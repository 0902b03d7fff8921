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

// Package shaderpack bundles GLSL shader sources into embeddable C++ data.
// A spec file lists one program per line: a program name followed by its
// vertex and fragment shader filenames, with # starting a comment.
package shaderpack

import (
	"fmt"
	"strings"
)

// Type is a type of shader.
type Type int

const (
	Vertex Type = iota
	Fragment
)

func (t Type) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// TypeFromExtension returns the shader type for a filename extension.
func TypeFromExtension(ext string) (Type, bool) {
	switch ext {
	case "vert":
		return Vertex, true
	case "frag":
		return Fragment, true
	}
	return 0, false
}

// Program is one shader program to compile and link.
type Program struct {
	// Name is used for variable names in the generated source code.
	Name     string
	Vertex   string
	Fragment string
}

// Spec lists all shader programs to compile and link.
type Spec struct {
	Programs []Program
}

// ParseError reports a malformed spec line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseSpec parses a program spec from text.
func ParseSpec(text string) (*Spec, error) {
	spec := &Spec{}
	lineno := 0
	for line := range strings.Lines(text) {
		lineno++
		program, ok, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineno, Msg: err.Error()}
		}
		if ok {
			spec.Programs = append(spec.Programs, program)
		}
	}
	return spec, nil
}

func parseLine(line string) (Program, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Program{}, false, nil
	}
	program := Program{Name: fields[0]}
	for _, field := range fields[1:] {
		i := strings.LastIndexByte(field, '.')
		if i < 0 {
			return Program{}, false, fmt.Errorf("unknown field: %q", field)
		}
		shaderType, ok := TypeFromExtension(field[i+1:])
		if !ok {
			return Program{}, false, fmt.Errorf("unknown file extension: %q", field[i+1:])
		}
		slot := &program.Vertex
		if shaderType == Fragment {
			slot = &program.Fragment
		}
		if *slot != "" {
			return Program{}, false, fmt.Errorf("multiple %s shaders", shaderType)
		}
		*slot = field
	}
	if program.Vertex == "" {
		return Program{}, false, fmt.Errorf("missing %s shader", Vertex)
	}
	if program.Fragment == "" {
		return Program{}, false, fmt.Errorf("missing %s shader", Fragment)
	}
	return program, true, nil
}

// Shader is a single shader to compile.
type Shader struct {
	Type Type
	Name string
}

// IndexedProgram is a program whose shaders are indexes into a manifest's
// shader list.
type IndexedProgram struct {
	Name     string
	Vertex   int
	Fragment int
}

// Manifest lists each unique shader exactly once: every vertex shader
// first, then every fragment shader, with program references by index.
type Manifest struct {
	Shaders  []Shader
	Programs []IndexedProgram
}

// Manifest converts the spec to a manifest, deduplicating shaders.
func (s *Spec) Manifest() Manifest {
	vertex := newShaderIndex()
	fragment := newShaderIndex()
	programs := make([]IndexedProgram, 0, len(s.Programs))
	for _, program := range s.Programs {
		programs = append(programs, IndexedProgram{
			Name:     program.Name,
			Vertex:   vertex.add(program.Vertex),
			Fragment: fragment.add(program.Fragment),
		})
	}
	offset := len(vertex.names)
	for i := range programs {
		programs[i].Fragment += offset
	}
	shaders := make([]Shader, 0, len(vertex.names)+len(fragment.names))
	for _, name := range vertex.names {
		shaders = append(shaders, Shader{Type: Vertex, Name: name})
	}
	for _, name := range fragment.names {
		shaders = append(shaders, Shader{Type: Fragment, Name: name})
	}
	return Manifest{Shaders: shaders, Programs: programs}
}

// Dump formats the spec for diagnostics.
func (s *Spec) Dump() string {
	var out strings.Builder
	out.WriteString("Programs:\n")
	for n, program := range s.Programs {
		fmt.Fprintf(&out, "  %d: %s; %s %s\n", n, program.Name, program.Vertex, program.Fragment)
	}
	return out.String()
}

// Dump formats the manifest for diagnostics.
func (m *Manifest) Dump() string {
	var out strings.Builder
	out.WriteString("Shaders:\n")
	for n, shader := range m.Shaders {
		fmt.Fprintf(&out, "  %d: %s %s\n", n, shader.Type, shader.Name)
	}
	out.WriteString("Programs:\n")
	for n, program := range m.Programs {
		fmt.Fprintf(&out, "  %d: %s; %s(id=%d) %s(id=%d)\n", n, program.Name,
			m.Shaders[program.Vertex].Name, program.Vertex,
			m.Shaders[program.Fragment].Name, program.Fragment)
	}
	return out.String()
}

type shaderIndex struct {
	names   []string
	indexes map[string]int
}

func newShaderIndex() *shaderIndex {
	return &shaderIndex{indexes: make(map[string]int)}
}

func (x *shaderIndex) add(name string) int {
	if index, ok := x.indexes[name]; ok {
		return index
	}
	index := len(x.names)
	x.names = append(x.names, name)
	x.indexes[name] = index
	return index
}
