package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/pkg/drawer"
	"github.com/askiada/go-dsa/pkg/greedy"
)

type dijkstraOptions struct {
	file       string
	source     int
	undirected bool
	paths      bool
	dot        string
}

// NewDijkstraCommand creates the dijkstra command.
func NewDijkstraCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &dijkstraOptions{}

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest distances from a source vertex",
		Long: `Reads the number of vertices followed by the adjacency matrix and prints the
shortest distance from the source to every vertex. A zero entry means no edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDijkstra(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "matrix file (default stdin)")
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source vertex")
	cmd.Flags().BoolVar(&opts.undirected, "undirected", false, "treat the matrix as an undirected graph")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "print the shortest path to every vertex")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the shortest path tree as a DOT file")

	return cmd
}

func runDijkstra(cmd *cobra.Command, rootOpts *RootOptions, opts *dijkstraOptions) error {
	m, err := readMatrix(cmd, opts.file)
	if err != nil {
		return err
	}

	var g graph.Graph[int, int]
	if opts.undirected {
		g, err = m.Undirected()
	} else {
		g, err = m.Directed()
	}
	if err != nil {
		return err
	}

	rootOpts.Logger.Debug("running dijkstra", "vertices", len(m), "source", opts.source)

	sp, err := greedy.Dijkstra(g, opts.source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	header := "Node\tDist"
	if opts.paths {
		header += "\tPath"
	}
	fmt.Fprintf(out, "\n%s\n", header)

	for _, v := range sp.Vertices() {
		dist, ok := sp.Distance(v)
		row := fmt.Sprintf("%d\t%s", v, formatDistance(dist, ok))

		if opts.paths && ok {
			path, err := sp.Path(v)
			if err != nil {
				return err
			}
			row += "\t" + strings.Join(lo.Map(path, func(p int, _ int) string { return strconv.Itoa(p) }), " -> ")
		}

		fmt.Fprintln(out, row)
	}

	if opts.dot == "" {
		return nil
	}

	d := drawer.NewDOTDrawer(g)
	d.SetAttribute("label", fmt.Sprintf("shortest paths from %d", opts.source))
	for _, v := range sp.Vertices() {
		dist, ok := sp.Distance(v)
		if err := d.SetVertexLabel(v, formatDistance(dist, ok)); err != nil {
			return err
		}
	}
	for v, parent := range sp.Tree() {
		if err := d.Highlight(parent, v); err != nil {
			return err
		}
	}

	return writeDOT(rootOpts, d, opts.dot)
}

func formatDistance(dist int, reachable bool) string {
	if !reachable {
		return "INF"
	}

	return strconv.Itoa(dist)
}
