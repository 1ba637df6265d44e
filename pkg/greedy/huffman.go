package greedy

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/askiada/go-dsa/pkg/heap"
)

// HuffmanNode is a node of a Huffman tree. Leaves carry a symbol; internal
// nodes carry the sum of their children's frequencies.
type HuffmanNode struct {
	Symbol    rune
	Frequency int
	Left      *HuffmanNode
	Right     *HuffmanNode

	order int
}

// IsLeaf reports whether n has no children.
func (n *HuffmanNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// HuffmanTree is a prefix code tree.
type HuffmanTree struct {
	Root    *HuffmanNode
	symbols []rune
}

// Code is the bit string assigned to a symbol.
type Code struct {
	Symbol rune
	Bits   string
}

// Codes maps every symbol to its bit string.
type Codes map[rune]string

// BuildHuffmanTree builds the Huffman tree of symbols with the given frequencies.
// The two least frequent nodes are merged repeatedly; ties go to the node created
// first. The first node taken becomes the left child.
func BuildHuffmanTree(symbols []rune, freq []int) (*HuffmanTree, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	if len(symbols) != len(freq) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d symbols, %d frequencies", len(symbols), len(freq))
	}

	if dup := lo.FindDuplicates(symbols); len(dup) > 0 {
		return nil, errors.Wrapf(ErrDuplicateSymbol, "%q", string(dup))
	}

	nodes := heap.New(func(a, b *HuffmanNode) bool {
		if a.Frequency != b.Frequency {
			return a.Frequency < b.Frequency
		}
		return a.order < b.order
	})

	for i, s := range symbols {
		if freq[i] <= 0 {
			return nil, errors.Wrapf(ErrNonPositiveFrequency, "symbol %q has frequency %d", s, freq[i])
		}
		nodes.Push(&HuffmanNode{Symbol: s, Frequency: freq[i], order: i})
	}

	order := len(symbols)
	for nodes.Len() >= 2 {
		left, _ := nodes.Pop()
		right, _ := nodes.Pop()
		nodes.Push(&HuffmanNode{
			Frequency: left.Frequency + right.Frequency,
			Left:      left,
			Right:     right,
			order:     order,
		})
		order++
	}

	root, _ := nodes.Pop()

	return &HuffmanTree{Root: root, symbols: append([]rune(nil), symbols...)}, nil
}

// HuffmanCodes returns the Huffman code of every symbol.
func HuffmanCodes(symbols []rune, freq []int) (Codes, error) {
	tree, err := BuildHuffmanTree(symbols, freq)
	if err != nil {
		return nil, err
	}

	return tree.Codes(), nil
}

// Frequencies counts the runes of text. Symbols are returned in order of first appearance.
func Frequencies(text string) ([]rune, []int) {
	counts := lo.CountValues([]rune(text))
	symbols := lo.Uniq([]rune(text))
	freq := lo.Map(symbols, func(s rune, _ int) int {
		return counts[s]
	})

	return symbols, freq
}

// Preorder returns the leaves' codes in pre-order, left before right.
// A tree with a single leaf assigns it the code "0".
func (t *HuffmanTree) Preorder() []Code {
	if t.Root.IsLeaf() {
		return []Code{{Symbol: t.Root.Symbol, Bits: "0"}}
	}

	codes := make([]Code, 0, len(t.symbols))

	var walk func(n *HuffmanNode, prefix []byte)
	walk = func(n *HuffmanNode, prefix []byte) {
		if n.IsLeaf() {
			codes = append(codes, Code{Symbol: n.Symbol, Bits: string(prefix)})
			return
		}
		walk(n.Left, append(prefix, '0'))
		walk(n.Right, append(prefix, '1'))
	}
	walk(t.Root, make([]byte, 0, len(t.symbols)))

	return codes
}

// Codes returns the code of every symbol.
func (t *HuffmanTree) Codes() Codes {
	return lo.SliceToMap(t.Preorder(), func(c Code) (rune, string) {
		return c.Symbol, c.Bits
	})
}

// Ordered returns the codes in the order the symbols were given.
func (t *HuffmanTree) Ordered() []Code {
	codes := t.Codes()

	return lo.Map(t.symbols, func(s rune, _ int) Code {
		return Code{Symbol: s, Bits: codes[s]}
	})
}

// Decode turns a string of '0' and '1' back into text.
func (t *HuffmanTree) Decode(bits string) (string, error) {
	var out strings.Builder

	if t.Root.IsLeaf() {
		for i, b := range bits {
			if b != '0' {
				return "", errors.Wrapf(ErrInvalidEncoding, "unexpected %q at offset %d", b, i)
			}
			out.WriteRune(t.Root.Symbol)
		}
		return out.String(), nil
	}

	n := t.Root
	for i, b := range bits {
		switch b {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", errors.Wrapf(ErrInvalidEncoding, "unexpected %q at offset %d", b, i)
		}

		if n.IsLeaf() {
			out.WriteRune(n.Symbol)
			n = t.Root
		}
	}

	if n != t.Root {
		return "", errors.Wrap(ErrInvalidEncoding, "truncated code at end of input")
	}

	return out.String(), nil
}

// Encode concatenates the codes of every rune of text.
func (c Codes) Encode(text string) (string, error) {
	var out strings.Builder

	for i, r := range text {
		bits, ok := c[r]
		if !ok {
			return "", errors.Wrapf(ErrUnknownSymbol, "%q at offset %d", r, i)
		}
		out.WriteString(bits)
	}

	return out.String(), nil
}

// Length returns the total number of bits needed to encode the symbols with the
// given frequencies.
func (c Codes) Length(symbols []rune, freq []int) (int, error) {
	if len(symbols) != len(freq) {
		return 0, errors.Wrapf(ErrLengthMismatch, "%d symbols, %d frequencies", len(symbols), len(freq))
	}

	total := 0
	for i, s := range symbols {
		bits, ok := c[s]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownSymbol, "%q", s)
		}
		total += len(bits) * freq[i]
	}

	return total, nil
}
