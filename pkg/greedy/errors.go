package greedy

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyGraph           = errors.New("graph has no vertices")
	ErrNotSquare            = errors.New("matrix must be square")
	ErrNotSymmetric         = errors.New("matrix must be symmetric for an undirected graph")
	ErrNegativeWeight       = errors.New("negative edge weight")
	ErrDirectedGraph        = errors.New("graph must be undirected")
	ErrUndirectedGraph      = errors.New("graph must be directed")
	ErrSameSourceSink       = errors.New("source and sink must differ")
	ErrUnreachable          = errors.New("vertex is unreachable")
	ErrNoSymbols            = errors.New("at least one symbol is required")
	ErrLengthMismatch       = errors.New("symbols and frequencies must have the same length")
	ErrNonPositiveFrequency = errors.New("frequency must be greater than 0")
	ErrDuplicateSymbol      = errors.New("duplicate symbol")
	ErrUnknownSymbol        = errors.New("symbol has no code")
	ErrInvalidEncoding      = errors.New("invalid encoded input")
	ErrOverflow             = errors.New("sum of weights overflows int")
)
