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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-tools/internal/xmltree"
)

func resolveFeatures(t *testing.T, doc string, api, link APISpec) (*featureSet, error) {
	t.Helper()
	root, err := xmltree.Parse([]byte(doc))
	require.NoError(t, err)
	spec, err := newFeatureSpec(api, link, root)
	if err != nil {
		return nil, err
	}
	return buildFeatureSet(root, spec)
}

func mustResolve(t *testing.T, doc string, api, link APISpec) *featureSet {
	t.Helper()
	set, err := resolveFeatures(t, doc, api, link)
	require.NoError(t, err)
	return set
}

const growingRegistry = `<registry>
<feature api="gl" number="1.0">
<require>
<command name="glClear"/>
<enum name="GL_COLOR_BUFFER_BIT"/>
</require>
</feature>
<feature api="gl" number="1.1">
<require>
<command name="glGenTextures"/>
<enum name="GL_TEXTURE_2D"/>
</require>
</feature>
<feature api="gl" number="2.0">
<require>
<command name="glCreateShader"/>
</require>
</feature>
</registry>`

func TestFeatureSetVersionBound(t *testing.T) {
	set := mustResolve(t, growingRegistry,
		APISpec{Version: Version{1, 1}}, APISpec{Version: Version{1, 0}})
	assert.Equal(t, map[string]CallType{
		"glClear":       CallLinker,
		"glGenTextures": CallRuntime,
	}, set.commands)
	assert.Equal(t, map[string]bool{
		"GL_COLOR_BUFFER_BIT": true,
		"GL_TEXTURE_2D":       true,
	}, set.enums)
}

func TestFeatureSetMonotonicity(t *testing.T) {
	versions := []Version{{1, 0}, {1, 1}, {2, 0}}
	var previous *featureSet
	for _, version := range versions {
		set := mustResolve(t, growingRegistry,
			APISpec{Version: version}, APISpec{Version: Version{1, 0}})
		if previous != nil {
			for name := range previous.commands {
				_, ok := set.commands[name]
				assert.True(t, ok, "command %s lost at %s", name, version)
			}
			for name := range previous.enums {
				assert.True(t, set.enums[name], "enum %s lost at %s", name, version)
			}
		}
		previous = set
	}
	assert.Len(t, previous.commands, 3)
}

func TestFeatureSetRemove(t *testing.T) {
	doc := `<registry>
<feature api="gl" number="1.0">
<require>
<command name="glAccum"/>
<enum name="GL_ACCUM"/>
</require>
</feature>
<feature api="gl" number="3.2">
<remove profile="core">
<command name="glAccum"/>
<enum name="GL_ACCUM"/>
</remove>
</feature>
</registry>`
	// Introduced at 1.0, removed at 3.2: present below the removal...
	set := mustResolve(t, doc, APISpec{Version: Version{3, 1}}, APISpec{Version: Version{1, 0}})
	assert.Contains(t, set.commands, "glAccum")
	assert.True(t, set.enums["GL_ACCUM"])
	// ...and absent at or above it.
	set = mustResolve(t, doc, APISpec{Version: Version{3, 2}}, APISpec{Version: Version{1, 0}})
	assert.NotContains(t, set.commands, "glAccum")
	assert.False(t, set.enums["GL_ACCUM"])
}

func TestFeatureSetSkipsOtherAPIs(t *testing.T) {
	doc := `<registry>
<feature api="gles2" number="2.0">
<require>
<command name="glOnlyInES"/>
</require>
</feature>
</registry>`
	set := mustResolve(t, doc, APISpec{Version: Version{3, 3}}, APISpec{Version: Version{1, 1}})
	assert.Empty(t, set.commands)
}

func TestFeatureSetExtensionGating(t *testing.T) {
	doc := `<registry>
<extensions>
<extension name="GL_EXT_runtime">
<require>
<command name="glRuntimeEXT"/>
</require>
</extension>
<extension name="GL_EXT_linked">
<require>
<command name="glLinkedEXT"/>
</require>
</extension>
<extension name="GL_EXT_ignored">
<require>
<command name="glIgnoredEXT"/>
</require>
</extension>
</extensions>
</registry>`
	set := mustResolve(t, doc,
		APISpec{Version: Version{3, 3}, Extensions: []string{"GL_EXT_runtime", "GL_EXT_linked"}},
		APISpec{Version: Version{1, 1}, Extensions: []string{"GL_EXT_linked"}})
	assert.Equal(t, map[string]CallType{
		"glRuntimeEXT": CallRuntime,
		"glLinkedEXT":  CallLinker,
	}, set.commands)
}

func TestFeatureSetUnknownExtension(t *testing.T) {
	doc := `<registry>
<extensions>
<extension name="GL_EXT_real"/>
</extensions>
</registry>`
	_, err := resolveFeatures(t, doc,
		APISpec{Version: Version{3, 3}, Extensions: []string{"GL_EXT_bogus"}},
		APISpec{Version: Version{1, 1}})
	var unknownErr *UnknownExtensionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "GL_EXT_bogus", unknownErr.Name)

	// The link spec's extensions are validated too.
	_, err = resolveFeatures(t, doc,
		APISpec{Version: Version{3, 3}},
		APISpec{Version: Version{1, 1}, Extensions: []string{"GL_EXT_missing"}})
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "GL_EXT_missing", unknownErr.Name)
}

func TestFeatureSetInvalidRemoveProfile(t *testing.T) {
	doc := `<registry>
<feature api="gl" number="3.2">
<remove profile="compatibility">
<command name="glAccum"/>
</remove>
</feature>
</registry>`
	_, err := resolveFeatures(t, doc, APISpec{Version: Version{3, 3}}, APISpec{Version: Version{1, 1}})
	var profileErr *InvalidRemoveProfileError
	require.ErrorAs(t, err, &profileErr)
	assert.Equal(t, "compatibility", profileErr.Profile)
	assert.Equal(t, 3, profileErr.Pos.Line)
}

func TestFeatureSetInvalidVersion(t *testing.T) {
	doc := `<registry>
<feature api="gl" number="fish">
</feature>
</registry>`
	_, err := resolveFeatures(t, doc, APISpec{Version: Version{3, 3}}, APISpec{Version: Version{1, 1}})
	var versionErr *InvalidVersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "fish", versionErr.Text)
}

func TestFeatureSetUnexpectedTag(t *testing.T) {
	doc := `<registry>
<feature api="gl" number="1.0">
<deprecate/>
</feature>
</registry>`
	_, err := resolveFeatures(t, doc, APISpec{Version: Version{3, 3}}, APISpec{Version: Version{1, 1}})
	var tagErr *xmltree.UnexpectedTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "deprecate", tagErr.Tag)
	assert.Equal(t, "feature", tagErr.Parent)
}

func TestFeatureSetDocumentOrder(t *testing.T) {
	// A remove in a later feature must see state built by earlier
	// requires, even when the later feature re-adds the command afterward.
	doc := `<registry>
<feature api="gl" number="1.0">
<require>
<command name="glFlip"/>
</require>
</feature>
<feature api="gl" number="2.0">
<remove profile="core">
<command name="glFlip"/>
</remove>
<require>
<command name="glFlip"/>
</require>
</feature>
</registry>`
	set := mustResolve(t, doc, APISpec{Version: Version{2, 0}}, APISpec{Version: Version{1, 0}})
	assert.Equal(t, map[string]CallType{"glFlip": CallRuntime}, set.commands)
}

func TestFeatureSetLinkerBoundary(t *testing.T) {
	for _, test := range []struct {
		link Version
		want CallType
	}{
		{Version{1, 0}, CallRuntime},
		{Version{1, 1}, CallLinker},
		{Version{2, 0}, CallLinker},
	} {
		doc := `<registry>
<feature api="gl" number="1.1">
<require>
<command name="glGenTextures"/>
</require>
</feature>
</registry>`
		set := mustResolve(t, doc, APISpec{Version: Version{3, 3}}, APISpec{Version: test.link})
		assert.Equal(t, test.want, set.commands["glGenTextures"],
			fmt.Sprintf("link version %s", test.link))
	}
}
