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

package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"goarrg.com/debug"

	"demo-tools/glreg"
	"demo-tools/internal/cemit"
)

func newGLCmd() *cobra.Command {
	var (
		registry     string
		apiSpec      string
		linkSpec     string
		entryPoints  string
		outputHeader string
		outputData   string
	)
	cmd := &cobra.Command{
		Use:   "gl",
		Short: "Generate OpenGL API bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := glreg.ParseAPISpec(apiSpec)
			if err != nil {
				return debug.ErrorWrapf(err, "invalid --api spec %q", apiSpec)
			}
			link, err := glreg.ParseAPISpec(linkSpec)
			if err != nil {
				return debug.ErrorWrapf(err, "invalid --link spec %q", linkSpec)
			}
			data, err := os.ReadFile(registry)
			if err != nil {
				return debug.ErrorWrapf(err, "failed to read registry %s", registry)
			}
			resolved, err := glreg.Load(data, api, link)
			if err != nil {
				return err
			}
			var bindings glreg.Bindings
			if entryPoints == "" {
				bindings = resolved.MakeBindings()
			} else {
				subset, err := readEntryPointList(entryPoints)
				if err != nil {
					return err
				}
				bindings, err = resolved.MakeSubsetBindings(subset)
				if err != nil {
					return err
				}
			}
			if err := cemit.WriteOrStdout(outputHeader, []byte(bindings.Header)); err != nil {
				return err
			}
			return cemit.WriteOrStdout(outputData, []byte(bindings.Data))
		},
	}
	cmd.Flags().StringVar(&registry, "registry", "", "path to the gl.xml registry")
	cmd.Flags().StringVar(&apiSpec, "api", "3.3", "maximum runtime API surface, e.g. \"3.3 GL_EXT_a\"")
	cmd.Flags().StringVar(&linkSpec, "link", "1.1", "link-time API surface")
	cmd.Flags().StringVar(&entryPoints, "entry-points", "", "file with list of OpenGL functions, one per line")
	cmd.Flags().StringVar(&outputHeader, "output-header", "", "output C++ header file")
	cmd.Flags().StringVar(&outputData, "output-data", "", "output C++ source file")
	_ = cmd.MarkFlagRequired("registry")
	return cmd
}

func readEntryPointList(path string) (map[string]bool, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "failed to read entry points %s", path)
	}
	subset := make(map[string]bool)
	for line := range strings.Lines(string(text)) {
		line = strings.TrimSpace(line)
		if line != "" {
			subset[line] = true
		}
	}
	return subset, nil
}
