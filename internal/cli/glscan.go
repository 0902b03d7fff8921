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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"demo-tools/glreg"
	"demo-tools/internal/cemit"
)

func newGLScanCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "glscan <source>...",
		Short: "Scan source files for usage of OpenGL functions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryPoints, err := glreg.ReadEntryPoints(args)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(entryPoints))
			for name := range entryPoints {
				names = append(names, name)
			}
			sort.Strings(names)
			var out strings.Builder
			for _, name := range names {
				out.WriteString(name)
				out.WriteByte('\n')
			}
			return cemit.WriteOrStdout(output, []byte(out.String()))
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "output file")
	return cmd
}
