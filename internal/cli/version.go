package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/internal/buildinfo"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(_ *RootOptions) *cobra.Command {
	var manifest bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and, optionally, the package manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Manifest()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, info.String())
			if !manifest {
				return nil
			}

			fmt.Fprintf(out, "distribution: %s\n", info.Distribution)
			fmt.Fprintln(out, "packages:")
			for _, pkg := range info.Packages {
				fmt.Fprintf(out, "  %s\n", pkg)
			}
			fmt.Fprintln(out, "tooling:")
			for _, tool := range info.Tooling {
				fmt.Fprintf(out, "  %s (%s) >= %s\n", tool.Name, tool.Purpose, tool.MinVersion)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&manifest, "manifest", false, "print member packages and tooling")

	return cmd
}
