// Package cli implements the dsa command line.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/internal/buildinfo"
	"github.com/askiada/go-dsa/pkg/drawer"
	"github.com/askiada/go-dsa/pkg/greedy"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Logger  *log.Logger
}

// NewRootCommand creates the root command for the dsa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           buildinfo.Name,
		Short:         "Greedy graph and coding algorithms",
		Long:          "Run Dijkstra, Kruskal, maximum flow and Huffman coding on adjacency matrices, texts and problem files.",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.Logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: buildinfo.Name})
			if opts.Verbose {
				opts.Logger.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDijkstraCommand(opts))
	cmd.AddCommand(NewKruskalCommand(opts))
	cmd.AddCommand(NewMaxFlowCommand(opts))
	cmd.AddCommand(NewHuffmanCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		return 1
	}

	return 0
}

// readMatrix reads an adjacency matrix from path, or from the command input when path is empty.
func readMatrix(cmd *cobra.Command, path string) (greedy.Matrix, error) {
	var input io.Reader = cmd.InOrStdin()

	if path != "" {
		//nolint:gosec // path is provided by the user on the command line
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer file.Close()
		input = file
	}

	m, err := greedy.ParseMatrix(input)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read adjacency matrix")
	}

	return m, nil
}

func writeDOT(opts *RootOptions, d drawer.Drawer[int], path string) error {
	if path == "" {
		return nil
	}

	if err := d.DrawFile(path); err != nil {
		return err
	}

	opts.Logger.Info("wrote graph", "path", path)

	return nil
}
