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
	"path/filepath"

	"github.com/spf13/cobra"
	"goarrg.com/debug"

	"demo-tools/internal/cemit"
	"demo-tools/shaderpack"
)

func newShaderCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "shader <spec> [output]",
		Short: "Bundle GLSL shader sources into embeddable C++ data",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := args[0]
			text, err := os.ReadFile(specPath)
			if err != nil {
				return debug.ErrorWrapf(err, "failed to read spec %s", specPath)
			}
			spec, err := shaderpack.ParseSpec(string(text))
			if err != nil {
				return debug.ErrorWrapf(err, "invalid spec %s", specPath)
			}
			if dump {
				os.Stderr.WriteString(spec.Dump())
			}
			manifest := spec.Manifest()
			if dump {
				os.Stderr.WriteString(manifest.Dump())
			}
			shaders, err := shaderpack.ReadData(&manifest, filepath.Dir(specPath))
			if err != nil {
				return err
			}
			output, err := shaderpack.EmitText(shaders)
			if err != nil {
				return err
			}
			target := ""
			if len(args) == 2 {
				target = args[1]
			}
			return cemit.WriteOrStdout(target, []byte(output))
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the parsed spec and manifest to stderr")
	return cmd
}
