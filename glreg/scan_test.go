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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEntryPoint(t *testing.T) {
	assert.True(t, IsEntryPoint("glClear"))
	assert.True(t, IsEntryPoint("glX"))
	assert.False(t, IsEntryPoint("gl"))
	assert.False(t, IsEntryPoint("glint"))
	assert.False(t, IsEntryPoint("gl_handle"))
	assert.False(t, IsEntryPoint("myglClear"))
	assert.False(t, IsEntryPoint("GlClear"))
}

func TestScanEntryPoints(t *testing.T) {
	const source = `
#include <cstdio>

void render() {
	glClear(GL_COLOR_BUFFER_BIT); // glFlush
	glDrawArrays(GL_TRIANGLES, 0, count);
	printf("glGetError\n");
	glClear(0);
}
`
	assert.Equal(t, map[string]bool{
		"glClear":      true,
		"glDrawArrays": true,
	}, ScanEntryPoints(source))
}

func TestReadEntryPoints(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.cpp")
	second := filepath.Join(dir, "b.cpp")
	require.NoError(t, os.WriteFile(first, []byte("glClear(0); glFlush();"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("glClear(0); glFinish();"), 0o600))

	result, err := ReadEntryPoints([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"glClear":  true,
		"glFlush":  true,
		"glFinish": true,
	}, result)

	_, err = ReadEntryPoints([]string{filepath.Join(dir, "missing.cpp")})
	require.Error(t, err)
}
