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

// Package glreg resolves a requested OpenGL API surface against the Khronos
// gl.xml registry and emits C++ bindings for it: typed enum constants,
// statically linked declarations, and a runtime function-pointer table with
// inline dispatch wrappers.
package glreg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is an OpenGL API version.
type Version struct {
	Major uint8
	Minor uint8
}

// ParseVersion parses a version of the form "MAJOR.MINOR". Components after
// the second are ignored, so "3.3.1" parses as 3.3.
func ParseVersion(text string) (Version, bool) {
	parts := strings.SplitN(text, ".", 3)
	if len(parts) < 2 {
		return Version{}, false
	}
	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Version{}, false
	}
	return Version{Major: uint8(major), Minor: uint8(minor)}, true
}

// Compare returns -1, 0, or 1 as v is ordered before, equal to, or after o.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		if v.Major < o.Major {
			return -1
		}
		return 1
	}
	if v.Minor != o.Minor {
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// APISpec parse errors.
var (
	ErrEmptySpec      = errors.New("empty spec")
	ErrInvalidVersion = errors.New("invalid version")
)

// APISpec specifies a subset of the OpenGL API: which version and which
// extensions are included.
type APISpec struct {
	Version    Version
	Extensions []string
}

// ParseAPISpec parses a spec of the form "3.3 GL_EXT_a GL_EXT_b". The first
// token is the version; the remaining tokens are extension names, kept in
// order, not validated until the registry is resolved.
func ParseAPISpec(text string) (APISpec, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return APISpec{}, ErrEmptySpec
	}
	version, ok := ParseVersion(fields[0])
	if !ok {
		return APISpec{}, ErrInvalidVersion
	}
	var extensions []string
	if len(fields) > 1 {
		extensions = fields[1:]
	}
	return APISpec{Version: version, Extensions: extensions}, nil
}
