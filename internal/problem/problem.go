// Package problem loads batches of algorithm problems from YAML files.
package problem

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-dsa/pkg/greedy"
)

// Algorithm names a solver.
type Algorithm string

const (
	Dijkstra Algorithm = "dijkstra"
	Kruskal  Algorithm = "kruskal"
	MaxFlow  Algorithm = "maxflow"
	Huffman  Algorithm = "huffman"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{Dijkstra, Kruskal, MaxFlow, Huffman}

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrMissingName      = errors.New("problem name is required")
	ErrDuplicateName    = errors.New("duplicate problem name")
	ErrMissingMatrix    = errors.New("matrix is required")
	ErrMissingSymbols   = errors.New("symbols and frequencies, or text, are required")
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrNoProblems       = errors.New("no problems defined")
)

// Problem is a single input for one algorithm.
type Problem struct {
	Name        string        `yaml:"name"`
	Algorithm   Algorithm     `yaml:"algorithm"`
	Matrix      greedy.Matrix `yaml:"matrix"`
	Undirected  bool          `yaml:"undirected"`
	Source      int           `yaml:"source"`
	Sink        *int          `yaml:"sink"`
	Symbols     string        `yaml:"symbols"`
	Frequencies []int         `yaml:"frequencies"`
	Text        string        `yaml:"text"`
}

// File is the top level document of a problem file.
type File struct {
	Problems []Problem `yaml:"problems"`
}

// Load reads and validates a problem file.
func Load(path string) (*File, error) {
	//nolint:gosec // path is provided by the user on the command line
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	res, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return res, nil
}

// Parse decodes and validates a problem document. Unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var res File
	if err := decoder.Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProblems
		}
		return nil, errors.Wrap(err, "failed to decode yaml")
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return &res, nil
}

// Validate checks every problem and that names are unique.
func (f *File) Validate() error {
	if len(f.Problems) == 0 {
		return ErrNoProblems
	}

	names := lo.Map(f.Problems, func(p Problem, _ int) string { return p.Name })
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return errors.Wrapf(ErrDuplicateName, "%q", dup[0])
	}

	for i := range f.Problems {
		if err := f.Problems[i].Validate(); err != nil {
			return errors.Wrapf(err, "problem %d", i)
		}
	}

	return nil
}

// Validate checks that the problem carries the inputs its algorithm needs.
func (p *Problem) Validate() error {
	if p.Name == "" {
		return ErrMissingName
	}

	if !lo.Contains(Algorithms, p.Algorithm) {
		return errors.Wrapf(ErrUnknownAlgorithm, "%q in %s, expected one of %v", p.Algorithm, p.Name, Algorithms)
	}

	if p.Algorithm == Huffman {
		if p.Text == "" && p.Symbols == "" {
			return errors.Wrap(ErrMissingSymbols, p.Name)
		}
		return nil
	}

	if len(p.Matrix) == 0 {
		return errors.Wrap(ErrMissingMatrix, p.Name)
	}

	if err := p.Matrix.Validate(); err != nil {
		return errors.Wrap(err, p.Name)
	}

	vertices := []int{p.Source}
	if p.Algorithm == MaxFlow {
		vertices = append(vertices, p.SinkVertex())
	}

	for _, v := range vertices {
		if v < 0 || v >= len(p.Matrix) {
			return errors.Wrapf(ErrVertexOutOfRange, "%s: vertex %d with %d vertices", p.Name, v, len(p.Matrix))
		}
	}

	return nil
}

// SinkVertex returns the sink of a flow problem. When no sink is given the last
// vertex of the matrix is used.
func (p *Problem) SinkVertex() int {
	if p.Sink == nil {
		return len(p.Matrix) - 1
	}

	return *p.Sink
}

// HuffmanInput returns the symbols and frequencies of a Huffman problem. Text,
// when present, takes precedence over explicit symbols.
func (p *Problem) HuffmanInput() ([]rune, []int) {
	if p.Text != "" {
		return greedy.Frequencies(p.Text)
	}

	return []rune(p.Symbols), p.Frequencies
}
