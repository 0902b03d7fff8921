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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-tools/internal/xmltree"
)

func emitEnumsFor(t *testing.T, doc string, names ...string) (string, error) {
	t.Helper()
	root, err := xmltree.Parse([]byte(doc))
	require.NoError(t, err)
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		selected[name] = true
	}
	return emitEnums(selected, root)
}

func TestEmitEnumsBasic(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_TEXTURE_2D" value="0x0DE1"/>
<enum name="GL_SKIPPED" value="0x1234"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_TEXTURE_2D")
	require.NoError(t, err)
	assert.Equal(t, "constexpr GLenum GL_TEXTURE_2D = 0x0DE1;\n", out)
}

func TestEmitEnumsBitmask(t *testing.T) {
	doc := `<registry>
<enums type="bitmask">
<enum name="GL_COLOR_BUFFER_BIT" value="0x00004000"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_COLOR_BUFFER_BIT")
	require.NoError(t, err)
	// GLbitfield goes through the C type mapping.
	assert.Equal(t, "constexpr unsigned GL_COLOR_BUFFER_BIT = 0x00004000;\n", out)
}

func TestEmitEnumsTypeOverride(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_SMALL" value="0xFFFFFFFF" type="u"/>
<enum name="GL_BIG" value="0xFFFFFFFFFFFFFFFF" type="ull"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_SMALL", "GL_BIG")
	require.NoError(t, err)
	assert.Equal(t, "constexpr unsigned GL_SMALL = 0xFFFFFFFF;\n"+
		"constexpr unsigned long long GL_BIG = 0xFFFFFFFFFFFFFFFF;\n", out)
}

func TestEmitEnumsUnknownType(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_ODD" value="1" type="q"/>
</enums>
</registry>`
	_, err := emitEnumsFor(t, doc, "GL_ODD")
	var typeErr *UnknownTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "q", typeErr.Type)
}

func TestEmitEnumsSkipsOtherAPIs(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_SHARED" value="1" api="gles2"/>
<enum name="GL_SHARED" value="2"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_SHARED")
	require.NoError(t, err)
	assert.Equal(t, "constexpr GLenum GL_SHARED = 2;\n", out)
}

func TestEmitEnumsDuplicate(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_TWICE" value="1"/>
<enum name="GL_TWICE" value="1"/>
</enums>
</registry>`
	_, err := emitEnumsFor(t, doc, "GL_TWICE")
	var dupErr *DuplicateEnumError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "GL_TWICE", dupErr.Name)
}

func TestEmitEnumsAlias(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_ORIGINAL" value="0x10"/>
<enum name="GL_ALIASED" value="0x10" alias="GL_ORIGINAL"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_ORIGINAL", "GL_ALIASED")
	require.NoError(t, err)
	// The alias refers to the target by name, not a duplicate literal.
	assert.Equal(t, "constexpr GLenum GL_ORIGINAL = 0x10;\n"+
		"constexpr GLenum GL_ALIASED = GL_ORIGINAL;\n", out)
}

func TestEmitEnumsAliasConflict(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_ORIGINAL" value="0x10"/>
<enum name="GL_ALIASED" value="0x20" alias="GL_ORIGINAL"/>
</enums>
</registry>`
	_, err := emitEnumsFor(t, doc, "GL_ORIGINAL", "GL_ALIASED")
	var conflictErr *AliasConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "GL_ALIASED", conflictErr.Name)
	assert.Equal(t, "GL_ORIGINAL", conflictErr.Alias)
}

func TestEmitEnumsAliasTypeConflict(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_ORIGINAL" value="0x10" type="u"/>
<enum name="GL_ALIASED" value="0x10" alias="GL_ORIGINAL"/>
</enums>
</registry>`
	_, err := emitEnumsFor(t, doc, "GL_ORIGINAL", "GL_ALIASED")
	var conflictErr *AliasConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestEmitEnumsAliasTargetNotEmitted(t *testing.T) {
	doc := `<registry>
<enums>
<enum name="GL_ORIGINAL" value="0x10"/>
<enum name="GL_ALIASED" value="0x10" alias="GL_ORIGINAL"/>
</enums>
</registry>`
	// The target is not in the selected set, so the alias falls back to
	// its own literal value.
	out, err := emitEnumsFor(t, doc, "GL_ALIASED")
	require.NoError(t, err)
	assert.Equal(t, "constexpr GLenum GL_ALIASED = 0x10;\n", out)
}

func TestEmitEnumsUnusedSkipped(t *testing.T) {
	doc := `<registry>
<enums>
<unused start="0x0001" end="0x00FF"/>
<enum name="GL_OK" value="1"/>
</enums>
</registry>`
	out, err := emitEnumsFor(t, doc, "GL_OK")
	require.NoError(t, err)
	assert.Equal(t, "constexpr GLenum GL_OK = 1;\n", out)
}

func TestEmitEnumsUnexpectedTag(t *testing.T) {
	doc := `<registry>
<enums>
<group name="Boolean"/>
</enums>
</registry>`
	_, err := emitEnumsFor(t, doc)
	var tagErr *xmltree.UnexpectedTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "group", tagErr.Tag)
}
