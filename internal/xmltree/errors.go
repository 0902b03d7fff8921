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

package xmltree

import "fmt"

// SyntaxError reports a malformed document.
type SyntaxError struct {
	Msg string
	Pos Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

// UnexpectedTagError reports an element that is not allowed where it
// appears.
type UnexpectedTagError struct {
	Tag    string
	Parent string
	Pos    Pos
}

func (e *UnexpectedTagError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("unexpected tag <%s> at %s", e.Tag, e.Pos)
	}
	return fmt.Sprintf("unexpected tag <%s> at %s in <%s>", e.Tag, e.Pos, e.Parent)
}

// MissingAttrError reports a required attribute that is absent.
type MissingAttrError struct {
	Tag  string
	Attr string
	Pos  Pos
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("missing required attribute %q in <%s> at %s", e.Attr, e.Tag, e.Pos)
}

// Unexpected returns an UnexpectedTagError for a child of parent.
func Unexpected(child, parent *Node) error {
	name := ""
	if parent != nil {
		name = parent.Tag
	}
	return &UnexpectedTagError{Tag: child.Tag, Parent: name, Pos: child.Pos}
}
