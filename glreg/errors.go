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
	"strings"

	"demo-tools/internal/xmltree"
)

// MissingCommandProtoError reports a <command> with no <proto> child.
type MissingCommandProtoError struct {
	Pos xmltree.Pos
}

func (e *MissingCommandProtoError) Error() string {
	return fmt.Sprintf("missing command <proto> at %s", e.Pos)
}

// MissingCommandNameError reports a <proto> with no <name> child.
type MissingCommandNameError struct {
	Pos xmltree.Pos
}

func (e *MissingCommandNameError) Error() string {
	return fmt.Sprintf("missing command <name> at %s", e.Pos)
}

// InvalidVersionError reports a feature number that does not parse as a
// version.
type InvalidVersionError struct {
	Text string
	Pos  xmltree.Pos
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version number %q at %s", e.Text, e.Pos)
}

// InvalidRemoveProfileError reports a <remove> with a profile other than
// "core".
type InvalidRemoveProfileError struct {
	Profile string
	Pos     xmltree.Pos
}

func (e *InvalidRemoveProfileError) Error() string {
	return fmt.Sprintf("invalid profile %q for remove at %s", e.Profile, e.Pos)
}

// DuplicateEnumError reports an enum defined more than once in the
// selected set.
type DuplicateEnumError struct {
	Name string
}

func (e *DuplicateEnumError) Error() string {
	return fmt.Sprintf("duplicate enum %q", e.Name)
}

// DuplicateFunctionError reports a command defined more than once in the
// selected set.
type DuplicateFunctionError struct {
	Name string
}

func (e *DuplicateFunctionError) Error() string {
	return fmt.Sprintf("duplicate function %q", e.Name)
}

// InvalidPrototypeError reports a malformed <proto> or <param>.
type InvalidPrototypeError struct {
	Pos xmltree.Pos
}

func (e *InvalidPrototypeError) Error() string {
	return fmt.Sprintf("invalid prototype at %s", e.Pos)
}

// AliasConflictError reports an enum alias whose target has a different
// type or value.
type AliasConflictError struct {
	Name  string
	Alias string
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("enum %q is alias for %q, but that has a conflicting definition", e.Name, e.Alias)
}

// UnknownTypeError reports an enum type attribute that is not recognized.
type UnknownTypeError struct {
	Type string
	Pos  xmltree.Pos
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q at %s", e.Type, e.Pos)
}

// UnknownExtensionError reports a requested extension that is not declared
// anywhere in the registry.
type UnknownExtensionError struct {
	Name string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension %q", e.Name)
}

// UnknownFunctionsError reports requested entry points that do not exist in
// the resolved API. All unknown names are collected before reporting.
type UnknownFunctionsError struct {
	Names []string
}

func (e *UnknownFunctionsError) Error() string {
	var b strings.Builder
	b.WriteString("unknown OpenGL functions: ")
	for n, name := range e.Names {
		if n != 0 {
			b.WriteString(", ")
		}
		if isCleanName(name) {
			b.WriteString(name)
		} else {
			fmt.Fprintf(&b, "%q", name)
		}
	}
	return b.String()
}

func isCleanName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
