package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dsa/internal/problem"
	"github.com/askiada/go-dsa/pkg/greedy"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	file, err := problem.Load("testdata/problems.yaml")
	require.NoError(t, err)
	require.Len(t, file.Problems, 5)

	flow := file.Problems[0]
	assert.Equal(t, "clrs-flow", flow.Name)
	assert.Equal(t, problem.MaxFlow, flow.Algorithm)
	require.NotNil(t, flow.Sink)
	assert.Equal(t, 5, flow.SinkVertex())
	assert.Len(t, flow.Matrix, 6)

	assert.True(t, file.Problems[1].Undirected)
	assert.Equal(t, 1, file.Problems[2].Source)

	symbols, freq := file.Problems[3].HuffmanInput()
	assert.Equal(t, []rune("abcdef"), symbols)
	assert.Equal(t, []int{5, 9, 12, 13, 16, 45}, freq)

	symbols, freq = file.Problems[4].HuffmanInput()
	assert.Equal(t, []rune("abrcd"), symbols)
	assert.Equal(t, []int{5, 2, 2, 1, 1}, freq)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := problem.Load("testdata/missing.yaml")
	assert.ErrorContains(t, err, "failed to open")
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		errIs error
	}{
		"empty document": {
			input: "",
			errIs: problem.ErrNoProblems,
		},
		"empty list": {
			input: "problems: []",
			errIs: problem.ErrNoProblems,
		},
		"missing name": {
			input: "problems:\n  - algorithm: huffman\n    text: abc\n",
			errIs: problem.ErrMissingName,
		},
		"unknown algorithm": {
			input: "problems:\n  - name: a\n    algorithm: prim\n",
			errIs: problem.ErrUnknownAlgorithm,
		},
		"duplicate names": {
			input: "problems:\n  - name: a\n    algorithm: huffman\n    text: x\n  - name: a\n    algorithm: huffman\n    text: y\n",
			errIs: problem.ErrDuplicateName,
		},
		"missing matrix": {
			input: "problems:\n  - name: a\n    algorithm: dijkstra\n",
			errIs: problem.ErrMissingMatrix,
		},
		"ragged matrix": {
			input: "problems:\n  - name: a\n    algorithm: kruskal\n    matrix: [[0, 1], [1]]\n",
			errIs: greedy.ErrNotSquare,
		},
		"sink out of range": {
			input: "problems:\n  - name: a\n    algorithm: maxflow\n    sink: 2\n    matrix: [[0, 1], [0, 0]]\n",
			errIs: problem.ErrVertexOutOfRange,
		},
		"negative source": {
			input: "problems:\n  - name: a\n    algorithm: dijkstra\n    source: -1\n    matrix: [[0, 1], [0, 0]]\n",
			errIs: problem.ErrVertexOutOfRange,
		},
		"missing symbols": {
			input: "problems:\n  - name: a\n    algorithm: huffman\n",
			errIs: problem.ErrMissingSymbols,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := problem.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	t.Parallel()

	_, err := problem.Parse(strings.NewReader("problems:\n  - name: a\n    algorithm: huffman\n    text: x\n    colour: red\n"))
	assert.ErrorContains(t, err, "colour")
}

func TestSinkVertex(t *testing.T) {
	t.Parallel()

	file, err := problem.Parse(strings.NewReader(`problems:
  - name: default-sink
    algorithm: maxflow
    matrix:
      - [0, 3, 0]
      - [0, 0, 2]
      - [0, 0, 0]
  - name: explicit-sink
    algorithm: maxflow
    sink: 1
    matrix:
      - [0, 3, 0]
      - [0, 0, 2]
      - [0, 0, 0]
`))
	require.NoError(t, err)

	assert.Nil(t, file.Problems[0].Sink)
	assert.Equal(t, 2, file.Problems[0].SinkVertex())
	assert.Equal(t, 1, file.Problems[1].SinkVertex())
}
