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

// typeMap maps OpenGL scalar typedefs to plain C types, so the generated
// header does not depend on the registry's <types> section. GLenum is kept
// as-is; the header consumer defines it.
var typeMap = map[string]string{
	"GLboolean":      "unsigned char",
	"GLbitfield":     "unsigned",
	"GLbyte":         "char",
	"GLubyte":        "unsigned char",
	"GLshort":        "short",
	"GLushort":       "unsigned short",
	"GLint":          "int",
	"GLuint":         "unsigned",
	"GLsizei":        "int",
	"GLfloat":        "float",
	"GLclampf":       "float",
	"GLdouble":       "double",
	"GLclampd":       "double",
	"GLchar":         "char",
	"GLintptr":       "long long",
	"GLsizeiptr":     "long long",
	"GLint64":        "long long",
	"GLuint64":       "unsigned long long",
	"GLDEBUGPROCKHR": "GLDEBUGPROC",
}

// mapType maps an OpenGL typedef name to its C type, or returns the name
// unchanged when there is no mapping.
func mapType(name string) string {
	if mapped, ok := typeMap[name]; ok {
		return mapped
	}
	return name
}
