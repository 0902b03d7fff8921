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

// enumDefinition records an emitted enum: its C type and value literal,
// used to resolve later aliases.
type enumDefinition struct {
	typeName string
	value    string
}

// emitEnums writes one constexpr declaration for each enum selected by the
// feature set, in registry document order. An enum declared as an alias of
// an already emitted enum with an identical definition is emitted with the
// alias target's name as the value expression, so the compiler keeps the
// two numerically identical.
func emitEnums(enums map[string]bool, registry *xmltree.Node) (string, error) {
	var out strings.Builder
	emitted := make(map[string]enumDefinition, len(enums))
	for _, block := range registry.ElementsByTag("enums") {
		blockType := "GLenum"
		if block.Attr("type") == "bitmask" {
			blockType = "GLbitfield"
		}
		blockType = mapType(blockType)
		for _, item := range block.Elements() {
			switch item.Tag {
			case "enum":
				if api, ok := item.LookupAttr("api"); ok && api != "gl" {
					continue
				}
				name, err := item.RequireAttr("name")
				if err != nil {
					return "", err
				}
				if !enums[name] {
					continue
				}
				if _, ok := emitted[name]; ok {
					return "", &DuplicateEnumError{Name: name}
				}
				typeName := blockType
				if t, ok := item.LookupAttr("type"); ok {
					switch t {
					case "u":
						typeName = "unsigned"
					case "ull":
						typeName = "unsigned long long"
					default:
						return "", &UnknownTypeError{Type: t, Pos: item.Pos}
					}
				}
				value, err := item.RequireAttr("value")
				if err != nil {
					return "", err
				}
				definition := enumDefinition{typeName: typeName, value: value}
				expr := value
				if alias, ok := item.LookupAttr("alias"); ok {
					if target, ok := emitted[alias]; ok {
						if target != definition {
							return "", &AliasConflictError{Name: name, Alias: alias}
						}
						expr = alias
					}
				}
				fmt.Fprintf(&out, "constexpr %s %s = %s;\n", typeName, name, expr)
				emitted[name] = definition
			case "unused":
			default:
				return "", xmltree.Unexpected(item, block)
			}
		}
	}
	return out.String(), nil
}
