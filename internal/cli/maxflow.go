package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/pkg/drawer"
	"github.com/askiada/go-dsa/pkg/greedy"
)

type maxFlowOptions struct {
	file   string
	source int
	sink   int
	cut    bool
	dot    string
}

// NewMaxFlowCommand creates the maxflow command.
func NewMaxFlowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &maxFlowOptions{}

	cmd := &cobra.Command{
		Use:   "maxflow",
		Short: "Maximum flow between two vertices",
		Long: `Reads the number of vertices followed by the capacity matrix and prints the
maximum flow from the source to the sink (Ford-Fulkerson with breadth-first augmenting paths).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaxFlow(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "matrix file (default stdin)")
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source vertex")
	cmd.Flags().IntVarP(&opts.sink, "sink", "t", -1, "sink vertex (default last vertex)")
	cmd.Flags().BoolVar(&opts.cut, "cut", false, "print the source side of a minimum cut")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the flow network as a DOT file")

	return cmd
}

func runMaxFlow(cmd *cobra.Command, rootOpts *RootOptions, opts *maxFlowOptions) error {
	m, err := readMatrix(cmd, opts.file)
	if err != nil {
		return err
	}

	sink := opts.sink
	if sink < 0 {
		sink = len(m) - 1
	}

	g, err := m.Directed()
	if err != nil {
		return err
	}

	flow, err := greedy.MaxFlow(g, opts.source, sink)
	if err != nil {
		return err
	}

	for _, e := range flow.Edges() {
		rootOpts.Logger.Debug("edge", "from", e.Source, "to", e.Target, "flow", e.Flow, "capacity", e.Capacity)
	}
	rootOpts.Logger.Debug("augmenting paths", "count", flow.Augmentations)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The maximum possible flow is %d\n", flow.Value)

	if opts.cut {
		fmt.Fprintf(out, "Minimum cut source side: %v\n", flow.MinCut())
	}

	if opts.dot == "" {
		return nil
	}

	d := drawer.NewDOTDrawer(g)
	d.SetAttribute("rankdir", "LR")
	if err := d.AddFlow(flow); err != nil {
		return err
	}

	return writeDOT(rootOpts, d, opts.dot)
}
