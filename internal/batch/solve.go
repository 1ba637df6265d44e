package batch

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-dsa/internal/problem"
	"github.com/askiada/go-dsa/pkg/greedy"
)

// Result is the outcome of one problem. Exactly one of the algorithm specific
// fields is set when Err is nil.
type Result struct {
	Problem   string
	Algorithm problem.Algorithm
	Duration  time.Duration
	Err       error

	ShortestPaths *greedy.ShortestPaths[int]
	SpanningTree  *greedy.SpanningTree[int]
	Flow          *greedy.Flow[int]
	Codes         []greedy.Code
}

// Solve runs the algorithm of a single problem.
func Solve(ctx context.Context, p problem.Problem) Result {
	res := Result{Problem: p.Name, Algorithm: p.Algorithm}

	if err := ctx.Err(); err != nil {
		res.Err = errors.Wrapf(err, "problem %s", p.Name)
		return res
	}

	start := time.Now()
	res.Err = solve(p, &res)
	res.Duration = time.Since(start)

	if res.Err != nil {
		res.Err = errors.Wrapf(res.Err, "problem %s", p.Name)
	}

	return res
}

func solve(p problem.Problem, res *Result) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch p.Algorithm {
	case problem.Huffman:
		tree, err := greedy.BuildHuffmanTree(p.HuffmanInput())
		if err != nil {
			return err
		}
		res.Codes = tree.Ordered()

	case problem.Kruskal:
		g, err := p.Matrix.Undirected()
		if err != nil {
			return err
		}
		res.SpanningTree, err = greedy.Kruskal(g)
		if err != nil {
			return err
		}

	case problem.Dijkstra:
		g, err := p.Matrix.Directed()
		if p.Undirected {
			g, err = p.Matrix.Undirected()
		}
		if err != nil {
			return err
		}
		res.ShortestPaths, err = greedy.Dijkstra(g, p.Source)
		if err != nil {
			return err
		}

	case problem.MaxFlow:
		g, err := p.Matrix.Directed()
		if err != nil {
			return err
		}
		res.Flow, err = greedy.MaxFlow(g, p.Source, p.SinkVertex())
		if err != nil {
			return err
		}
	}

	return nil
}
