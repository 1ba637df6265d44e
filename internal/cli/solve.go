package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/internal/batch"
	"github.com/askiada/go-dsa/internal/problem"
)

type solveOptions struct {
	concurrency     int
	continueOnError bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <problems.yaml>",
		Short: "Solve every problem of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 1, "number of problems solved in parallel")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "keep solving after a problem fails")

	return cmd
}

func runSolve(cmd *cobra.Command, rootOpts *RootOptions, opts *solveOptions, path string) error {
	file, err := problem.Load(path)
	if err != nil {
		return err
	}

	runOpts := []batch.Option{
		batch.Concurrency(opts.concurrency),
		batch.WithLogger(rootOpts.Logger),
	}
	if opts.continueOnError {
		runOpts = append(runOpts, batch.ContinueOnError())
	}

	report, runErr := batch.Run(cmd.Context(), file.Problems, runOpts...)
	if report == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		printResult(out, res)
	}
	printSummary(out, report)

	if runErr != nil {
		return runErr
	}
	if failed := len(report.Failed()); failed > 0 {
		return errors.Errorf("%d of %d problems failed", failed, len(report.Results))
	}

	return nil
}

func printResult(out io.Writer, res batch.Result) {
	fmt.Fprintf(out, "== %s (%s)\n", res.Problem, res.Algorithm)

	if res.Err != nil {
		fmt.Fprintf(out, "error: %v\n", res.Err)
		return
	}

	switch {
	case res.ShortestPaths != nil:
		fmt.Fprintln(out, "Node\tDist")
		for _, v := range res.ShortestPaths.Vertices() {
			dist, ok := res.ShortestPaths.Distance(v)
			fmt.Fprintf(out, "%d\t%s\n", v, formatDistance(dist, ok))
		}
	case res.SpanningTree != nil:
		for _, e := range res.SpanningTree.Edges {
			fmt.Fprintf(out, "%d - %d\t%d\n", e.Source, e.Target, e.Weight)
		}
		fmt.Fprintf(out, "Total weight: %d\n", res.SpanningTree.Weight)
	case res.Flow != nil:
		fmt.Fprintf(out, "The maximum possible flow is %d\n", res.Flow.Value)
	case res.Codes != nil:
		for _, code := range res.Codes {
			fmt.Fprintf(out, "%c: %s\n", code.Symbol, code.Bits)
		}
	}
}

func printSummary(out io.Writer, report *batch.Report) {
	metrics := report.Measure.AllMetrics()
	names := lo.Keys(metrics)
	sort.Strings(names)

	lines := lo.Map(names, func(name string, _ int) string {
		mt := metrics[name]
		return fmt.Sprintf("%s: runs=%d failures=%d", name, mt.Runs(), mt.Failures())
	})

	fmt.Fprintf(out, "-- %d problems, %d failed\n", len(report.Results), len(report.Failed()))
	if len(lines) > 0 {
		fmt.Fprintln(out, strings.Join(lines, "\n"))
	}
}
