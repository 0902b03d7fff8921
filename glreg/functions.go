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

// Function is one resolved command from the registry.
type Function struct {
	Name string
	Call CallType
	// ReturnType is the return type after the C type mapping.
	ReturnType string
	// ParameterDeclarations is the comma-joined "type name" list, empty
	// for a function with no parameters.
	ParameterDeclarations string
	// ParameterNames is the comma-joined bare name list, used for call
	// forwarding.
	ParameterNames string
}

// commandInfo returns the name and <proto> node for a <command>.
func commandInfo(node *xmltree.Node) (string, *xmltree.Node, error) {
	proto := node.Element("proto")
	if proto == nil {
		return "", nil, &MissingCommandProtoError{Pos: node.Pos}
	}
	name := proto.Element("name")
	if name == nil {
		return "", nil, &MissingCommandNameError{Pos: proto.Pos}
	}
	text, err := name.Text()
	if err != nil {
		return "", nil, err
	}
	return text, proto, nil
}

// parseReturnType builds the return type from a <proto>: leading text plus
// any <ptype>, all before the <name>.
func parseReturnType(proto *xmltree.Node) (string, error) {
	var out strings.Builder
	hasName := false
	for _, child := range proto.Children {
		if child.Node != nil {
			switch child.Node.Tag {
			case "name":
				hasName = true
			case "ptype":
				if hasName {
					return "", &InvalidPrototypeError{Pos: proto.Pos}
				}
				text, err := child.Node.Text()
				if err != nil {
					return "", err
				}
				out.WriteString(mapType(text))
			default:
				return "", xmltree.Unexpected(child.Node, proto)
			}
			continue
		}
		if !hasName {
			out.WriteString(child.Text)
		} else if strings.TrimSpace(child.Text) != "" {
			return "", &InvalidPrototypeError{Pos: proto.Pos}
		}
	}
	result := strings.TrimRight(out.String(), " \t\r\n")
	if result == "" {
		return "", &InvalidPrototypeError{Pos: proto.Pos}
	}
	return result, nil
}

// parseParameters builds the parameter declaration list and the bare name
// list from a <command>'s <param> children.
func parseParameters(node *xmltree.Node) (string, string, error) {
	var declarations, names strings.Builder
	hasParameter := false
	for _, param := range node.ElementsByTag("param") {
		if hasParameter {
			declarations.WriteString(", ")
			names.WriteString(", ")
		}
		hasParameter = true
		hasName := false
		for _, item := range param.Children {
			if item.Node == nil {
				declarations.WriteString(item.Text)
				continue
			}
			switch item.Node.Tag {
			case "ptype":
				text, err := item.Node.Text()
				if err != nil {
					return "", "", err
				}
				declarations.WriteString(mapType(text))
			case "name":
				if hasName {
					return "", "", &InvalidPrototypeError{Pos: item.Node.Pos}
				}
				hasName = true
				text, err := item.Node.Text()
				if err != nil {
					return "", "", err
				}
				declarations.WriteString(text)
				names.WriteString(text)
			default:
				return "", "", xmltree.Unexpected(item.Node, param)
			}
		}
		if !hasName {
			return "", "", &InvalidPrototypeError{Pos: param.Pos}
		}
	}
	return declarations.String(), names.String(), nil
}

// parseFunctions runs a single pass over the registry's <commands> blocks
// and returns the functions selected by the resolved command map, in
// document order.
func parseFunctions(commands map[string]CallType, registry *xmltree.Node) ([]Function, error) {
	result := make([]Function, 0, len(commands))
	seen := make(map[string]bool, len(commands))
	for _, block := range registry.ElementsByTag("commands") {
		for _, item := range block.Elements() {
			if item.Tag != "command" {
				return nil, xmltree.Unexpected(item, block)
			}
			name, proto, err := commandInfo(item)
			if err != nil {
				return nil, err
			}
			call, ok := commands[name]
			if !ok {
				continue
			}
			if seen[name] {
				return nil, &DuplicateFunctionError{Name: name}
			}
			seen[name] = true
			returnType, err := parseReturnType(proto)
			if err != nil {
				return nil, err
			}
			declarations, names, err := parseParameters(item)
			if err != nil {
				return nil, err
			}
			result = append(result, Function{
				Name:                  name,
				Call:                  call,
				ReturnType:            returnType,
				ParameterDeclarations: declarations,
				ParameterNames:        names,
			})
		}
	}
	return result, nil
}

// emitLinked writes a statically linked declaration.
func (f *Function) emitLinked(out *strings.Builder) {
	fmt.Fprintf(out, "GLIMPORT %s GLAPI %s(%s);\n", f.ReturnType, f.Name, f.ParameterDeclarations)
}

// emitRuntime writes an inline wrapper that dispatches through the
// function-pointer table slot at index.
func (f *Function) emitRuntime(out *strings.Builder, index int) {
	fmt.Fprintf(out, "inline %s %s(%s) {\n\tusing Proc = %s (GLAPI *)(%s);\n\t",
		f.ReturnType, f.Name, f.ParameterDeclarations, f.ReturnType, f.ParameterDeclarations)
	if f.ReturnType != "void" {
		out.WriteString("return ")
	}
	fmt.Fprintf(out, "static_cast<Proc>(demo::gl_api::FunctionPointers[%d])(%s);\n}\n",
		index, f.ParameterNames)
}

// emitMissing writes a stub for a runtime function excluded from the
// requested subset. Calling it reports the function name and aborts.
func (f *Function) emitMissing(out *strings.Builder) {
	fmt.Fprintf(out, "inline %s %s(%s) {\n\tdemo::gl_api::MissingFunction(\"%s\");\n}\n",
		f.ReturnType, f.Name, f.ParameterDeclarations, f.Name)
}
