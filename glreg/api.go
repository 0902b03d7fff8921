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
	"fmt"
	"sort"
	"strings"

	"demo-tools/internal/cemit"
	"demo-tools/internal/xmltree"
)

// API is a resolved OpenGL API subset, ready to emit bindings.
type API struct {
	enums      string
	functions  []Function
	extensions []string
}

// Load parses registry XML and resolves it against the requested runtime
// surface (api) and link-time surface (link).
func Load(data []byte, api, link APISpec) (*API, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}
	return New(root, api, link)
}

// New resolves a parsed registry against the requested runtime surface
// (api) and link-time surface (link).
func New(registry *xmltree.Node, api, link APISpec) (*API, error) {
	if registry.Tag != "registry" {
		return nil, xmltree.Unexpected(registry, nil)
	}
	spec, err := newFeatureSpec(api, link, registry)
	if err != nil {
		return nil, err
	}
	set, err := buildFeatureSet(registry, spec)
	if err != nil {
		return nil, err
	}
	enums, err := emitEnums(set.enums, registry)
	if err != nil {
		return nil, err
	}
	functions, err := parseFunctions(set.commands, registry)
	if err != nil {
		return nil, err
	}
	extensions := make([]string, 0, len(spec.extensions))
	for name := range spec.extensions {
		extensions = append(extensions, name)
	}
	sort.Strings(extensions)
	return &API{
		enums:      enums,
		functions:  functions,
		extensions: extensions,
	}, nil
}

// Bindings is the generated output: a header to include wherever GL calls
// are made, and a data file to compile into exactly one translation unit.
type Bindings struct {
	Header string
	Data   string
}

// MakeBindings creates bindings for the full resolved surface.
func (a *API) MakeBindings() Bindings {
	return a.makeBindings(nil)
}

// MakeSubsetBindings creates bindings where only the named runtime
// commands get a live pointer slot; every other runtime command is emitted
// as a missing-function stub. Names that match no resolved command are
// collected into a single UnknownFunctionsError.
func (a *API) MakeSubsetBindings(subset map[string]bool) (Bindings, error) {
	known := make(map[string]bool, len(a.functions))
	for _, f := range a.functions {
		known[f.Name] = true
	}
	var unknown []string
	for name := range subset {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Bindings{}, &UnknownFunctionsError{Names: unknown}
	}
	return a.makeBindings(subset), nil
}

// functionOutput is the emitted function block plus the ordered list of
// runtime lookups. The wrapper index for each runtime command equals its
// position in lookups, which is also its offset in the packed name table;
// both outputs derive from this single pass.
type functionOutput struct {
	text    string
	lookups []string
}

func (a *API) makeBindings(subset map[string]bool) Bindings {
	var out strings.Builder
	var lookups []string
	for i := range a.functions {
		f := &a.functions[i]
		switch f.Call {
		case CallLinker:
			f.emitLinked(&out)
		case CallRuntime:
			if subset == nil || subset[f.Name] {
				index := len(lookups)
				lookups = append(lookups, f.Name)
				f.emitRuntime(&out, index)
			} else {
				f.emitMissing(&out)
			}
		}
	}
	functions := functionOutput{text: out.String(), lookups: lookups}
	return Bindings{
		Header: emitHeader(a.enums, &functions, a.extensions),
		Data:   emitData(&functions, a.extensions),
	}
}

func emitHeader(enums string, functions *functionOutput, extensions []string) string {
	var out strings.Builder
	out.WriteString(cemit.Header)
	out.WriteString("#pragma once\n" +
		"#ifndef GLAPI\n#define GLAPI\n#endif\n" +
		"#ifndef GLIMPORT\n#define GLIMPORT\n#endif\n")
	out.WriteString("namespace demo {\nnamespace gl_api {\n")
	fmt.Fprintf(&out, "constexpr int FunctionPointerCount = %d;\n", len(functions.lookups))
	out.WriteString("extern void *FunctionPointers[FunctionPointerCount];\n" +
		"extern const char FunctionNames[];\n" +
		"[[noreturn]] void MissingFunction(const char *name);\n")
	fmt.Fprintf(&out, "constexpr int ExtensionCount = %d;\n", len(extensions))
	if len(extensions) > 0 {
		out.WriteString("extern bool ExtensionAvailable[ExtensionCount];\n" +
			"extern const char ExtensionNames[];\n" +
			"class Extension {\n" +
			"public:\n" +
			"\texplicit constexpr Extension(int index): mIndex{index} {}\n" +
			"\tbool available() const { return ExtensionAvailable[mIndex]; }\n" +
			"private:\n" +
			"\tint mIndex;\n" +
			"};\n")
		for n, name := range extensions {
			shortName := strings.TrimPrefix(name, "GL_")
			fmt.Fprintf(&out, "#define %s 1\nconstexpr Extension %s{%d};\n", name, shortName, n)
		}
	}
	out.WriteString("}\n}\n\n// Constants\n\n")
	out.WriteString(enums)
	out.WriteString("\n// Functions\n\nextern \"C\" {\n")
	out.WriteString(functions.text)
	out.WriteString("}\n")
	return out.String()
}

func emitData(functions *functionOutput, extensions []string) string {
	var out strings.Builder
	out.WriteString(cemit.Header)
	out.WriteString("#include <cstdio>\n#include <cstdlib>\n\n")
	out.WriteString("namespace demo {\nnamespace gl_api {\n")
	fmt.Fprintf(&out, "void *FunctionPointers[%d];\n", len(functions.lookups))
	emitNameTable(&out, "FunctionNames", functions.lookups)
	if len(extensions) > 0 {
		fmt.Fprintf(&out, "bool ExtensionAvailable[%d];\n", len(extensions))
		emitNameTable(&out, "ExtensionNames", extensions)
	}
	out.WriteString("void MissingFunction(const char *name) {\n" +
		"\tstd::fputs(name, stderr);\n" +
		"\tstd::fputs(\": missing OpenGL function\\n\", stderr);\n" +
		"\tstd::abort();\n" +
		"}\n")
	out.WriteString("}\n}\n")
	return out.String()
}

// emitNameTable writes a fixed-size char array holding the given names,
// NUL-separated, with one terminator per name including the last. The
// declared size is computed up front and checked against the bytes
// actually written.
func emitNameTable(out *strings.Builder, arrayName string, names []string) {
	size := len(names)
	for _, name := range names {
		size += len(name)
	}
	fmt.Fprintf(out, "extern const char %s[%d] =\n", arrayName, size)
	writer := cemit.NewStringWriter(out)
	for n, name := range names {
		if n != 0 {
			writer.Write([]byte{0})
		}
		writer.Write([]byte(name))
	}
	// The string literal's implicit terminator supplies the final NUL.
	written := writer.Finish()
	if len(names) > 0 {
		written++
	}
	if written != size {
		panic(fmt.Sprintf("%s: wrote %d bytes, declared %d", arrayName, written, size))
	}
	out.WriteString(";\n")
}
