package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/pkg/drawer"
	"github.com/askiada/go-dsa/pkg/greedy"
)

type kruskalOptions struct {
	file string
	dot  string
}

// NewKruskalCommand creates the kruskal command.
func NewKruskalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &kruskalOptions{}

	cmd := &cobra.Command{
		Use:   "kruskal",
		Short: "Minimum spanning tree of an undirected graph",
		Long: `Reads the number of vertices followed by a symmetric adjacency matrix and prints
the edges of a minimum spanning tree, or forest when the graph is disconnected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKruskal(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "matrix file (default stdin)")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the graph with the tree highlighted as a DOT file")

	return cmd
}

func runKruskal(cmd *cobra.Command, rootOpts *RootOptions, opts *kruskalOptions) error {
	m, err := readMatrix(cmd, opts.file)
	if err != nil {
		return err
	}

	g, err := m.Undirected()
	if err != nil {
		return err
	}

	tree, err := greedy.Kruskal(g)
	if err != nil {
		return err
	}

	if !tree.Connected() {
		rootOpts.Logger.Warn("graph is not connected, printing a spanning forest", "components", tree.Components)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Edge\tWeight")
	for _, e := range tree.Edges {
		fmt.Fprintf(out, "%d - %d\t%d\n", e.Source, e.Target, e.Weight)
	}
	fmt.Fprintf(out, "Total weight: %d\n", tree.Weight)

	if opts.dot == "" {
		return nil
	}

	d := drawer.NewDOTDrawer(g)
	for _, e := range tree.Edges {
		if err := d.Highlight(e.Source, e.Target); err != nil {
			return err
		}
	}

	return writeDOT(rootOpts, d, opts.dot)
}
