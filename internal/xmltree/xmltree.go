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

// Package xmltree parses an XML document into an in-memory node tree that
// keeps the line/column position of every element, so that errors reported
// long after parsing can still point into the document.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Pos is a 1-based line/column position in the source document.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Attr is a single attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Child is one item of an element's mixed content. Exactly one of Node and
// Text is meaningful: Node is nil for text runs.
type Child struct {
	Node *Node
	Text string
}

// Node is one element in the document.
type Node struct {
	Tag      string
	Pos      Pos
	Attrs    []Attr
	Children []Child
}

// Parse parses a complete XML document and returns the root element.
func Parse(data []byte) (*Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	counter := posCounter{data: data, line: 1, col: 1}
	var root *Node
	var stack []*Node
	for {
		offset := d.InputOffset()
		token, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{
				Tag: t.Name.Local,
				Pos: counter.at(offset),
			}
			if len(t.Attr) > 0 {
				n.Attrs = make([]Attr, 0, len(t.Attr))
				for _, a := range t.Attr {
					n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &SyntaxError{Msg: "multiple root elements", Pos: n.Pos}
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, Child{Node: n})
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, Child{Text: string(t)})
			}
		}
	}
	if root == nil {
		return nil, &SyntaxError{Msg: "no root element", Pos: Pos{Line: 1, Col: 1}}
	}
	return root, nil
}

// Attr returns the value of the named attribute, or "" if it is absent.
func (n *Node) Attr(name string) string {
	value, _ := n.LookupAttr(name)
	return value
}

// LookupAttr returns the value of the named attribute and whether it is
// present.
func (n *Node) LookupAttr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RequireAttr returns the value of the named attribute, or a
// MissingAttrError if it is absent.
func (n *Node) RequireAttr(name string) (string, error) {
	value, ok := n.LookupAttr(name)
	if !ok {
		return "", &MissingAttrError{Tag: n.Tag, Attr: name, Pos: n.Pos}
	}
	return value, nil
}

// Elements returns the element children of n, in document order.
func (n *Node) Elements() []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Node != nil {
			result = append(result, c.Node)
		}
	}
	return result
}

// ElementsByTag returns the element children of n with the given tag, in
// document order.
func (n *Node) ElementsByTag(tag string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Tag == tag {
			result = append(result, c.Node)
		}
	}
	return result
}

// Element returns the first element child of n with the given tag, or nil.
func (n *Node) Element(tag string) *Node {
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Tag == tag {
			return c.Node
		}
	}
	return nil
}

// Text returns the concatenated text content of n. An element child is an
// UnexpectedTagError.
func (n *Node) Text() (string, error) {
	var buf bytes.Buffer
	for _, c := range n.Children {
		if c.Node != nil {
			return "", &UnexpectedTagError{Tag: c.Node.Tag, Parent: n.Tag, Pos: c.Node.Pos}
		}
		buf.WriteString(c.Text)
	}
	return buf.String(), nil
}

// posCounter converts increasing byte offsets to line/column positions.
type posCounter struct {
	data   []byte
	offset int64
	line   int
	col    int
}

func (c *posCounter) at(offset int64) Pos {
	for ; c.offset < offset && c.offset < int64(len(c.data)); c.offset++ {
		if c.data[c.offset] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	return Pos{Line: c.line, Col: c.col}
}
