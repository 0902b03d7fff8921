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

import "demo-tools/internal/xmltree"

// CallType is how an OpenGL function is called.
type CallType int

const (
	// CallLinker marks a call resolved at link time.
	CallLinker CallType = iota
	// CallRuntime marks a function loaded by pointer at runtime.
	CallRuntime
)

func (c CallType) String() string {
	switch c {
	case CallLinker:
		return "linker"
	case CallRuntime:
		return "runtime"
	}
	return "unknown"
}

// featureSpec is the resolved request: the version bounds plus the
// requested extensions with their assigned call types.
type featureSpec struct {
	maxVersion      Version
	linkableVersion Version
	extensions      map[string]CallType
}

// allExtensions collects every extension name declared in the registry,
// used to validate requests.
func allExtensions(registry *xmltree.Node) (map[string]bool, error) {
	extensions := make(map[string]bool)
	for _, child := range registry.ElementsByTag("extensions") {
		for _, item := range child.ElementsByTag("extension") {
			name, err := item.RequireAttr("name")
			if err != nil {
				return nil, err
			}
			extensions[name] = true
		}
	}
	return extensions, nil
}

// newFeatureSpec builds a featureSpec from the runtime and link-time API
// specs. Extensions named in the link spec are promoted to link-time calls;
// all requested extensions must exist in the registry.
func newFeatureSpec(api, link APISpec, registry *xmltree.Node) (*featureSpec, error) {
	known, err := allExtensions(registry)
	if err != nil {
		return nil, err
	}
	extensions := make(map[string]CallType)
	for _, name := range api.Extensions {
		if !known[name] {
			return nil, &UnknownExtensionError{Name: name}
		}
		extensions[name] = CallRuntime
	}
	for _, name := range link.Extensions {
		if !known[name] {
			return nil, &UnknownExtensionError{Name: name}
		}
		if _, ok := extensions[name]; ok {
			extensions[name] = CallLinker
		}
	}
	return &featureSpec{
		maxVersion:      api.Version,
		linkableVersion: link.Version,
		extensions:      extensions,
	}, nil
}

// featureSet is the resolved output of walking the registry: which enums
// are included, and which commands with which call type.
type featureSet struct {
	enums    map[string]bool
	commands map[string]CallType
}

// buildFeatureSet folds the registry's <feature> and <extension> elements,
// in document order, into a featureSet. Document order matters: a <remove>
// may only delete what a syntactically earlier <require> added.
func buildFeatureSet(registry *xmltree.Node, spec *featureSpec) (*featureSet, error) {
	set := &featureSet{
		enums:    make(map[string]bool),
		commands: make(map[string]CallType),
	}
	for _, child := range registry.Elements() {
		switch child.Tag {
		case "feature":
			if err := set.parseFeature(child, spec); err != nil {
				return nil, err
			}
		case "extensions":
			for _, item := range child.ElementsByTag("extension") {
				if err := set.parseExtension(item, spec); err != nil {
					return nil, err
				}
			}
		}
	}
	return set, nil
}

func (s *featureSet) parseFeature(node *xmltree.Node, spec *featureSpec) error {
	api, err := node.RequireAttr("api")
	if err != nil {
		return err
	}
	if api != "gl" {
		return nil
	}
	number, err := node.RequireAttr("number")
	if err != nil {
		return err
	}
	version, ok := ParseVersion(number)
	if !ok {
		return &InvalidVersionError{Text: number, Pos: node.Pos}
	}
	if version.Compare(spec.maxVersion) > 0 {
		return nil
	}
	availability := CallRuntime
	if version.Compare(spec.linkableVersion) <= 0 {
		availability = CallLinker
	}
	for _, child := range node.Elements() {
		switch child.Tag {
		case "require":
			if err := s.parseRequire(child, availability); err != nil {
				return err
			}
		case "remove":
			if err := s.parseRemove(child); err != nil {
				return err
			}
		default:
			return xmltree.Unexpected(child, node)
		}
	}
	return nil
}

func (s *featureSet) parseExtension(node *xmltree.Node, spec *featureSpec) error {
	name, err := node.RequireAttr("name")
	if err != nil {
		return err
	}
	callType, ok := spec.extensions[name]
	if !ok {
		return nil
	}
	for _, child := range node.Elements() {
		switch child.Tag {
		case "require":
			if err := s.parseRequire(child, callType); err != nil {
				return err
			}
		default:
			return xmltree.Unexpected(child, node)
		}
	}
	return nil
}

func (s *featureSet) parseRequire(node *xmltree.Node, availability CallType) error {
	for _, child := range node.Elements() {
		switch child.Tag {
		case "command":
			name, err := child.RequireAttr("name")
			if err != nil {
				return err
			}
			s.commands[name] = availability
		case "enum":
			name, err := child.RequireAttr("name")
			if err != nil {
				return err
			}
			s.enums[name] = true
		case "type":
		default:
			return xmltree.Unexpected(child, node)
		}
	}
	return nil
}

func (s *featureSet) parseRemove(node *xmltree.Node) error {
	profile, err := node.RequireAttr("profile")
	if err != nil {
		return err
	}
	if profile != "core" {
		return &InvalidRemoveProfileError{Profile: profile, Pos: node.Pos}
	}
	for _, child := range node.Elements() {
		switch child.Tag {
		case "command":
			name, err := child.RequireAttr("name")
			if err != nil {
				return err
			}
			delete(s.commands, name)
		case "enum":
			name, err := child.RequireAttr("name")
			if err != nil {
				return err
			}
			delete(s.enums, name)
		case "type":
		default:
			return xmltree.Unexpected(child, node)
		}
	}
	return nil
}
