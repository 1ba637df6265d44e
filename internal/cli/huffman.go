package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-dsa/pkg/greedy"
)

type huffmanOptions struct {
	freq   []int
	text   string
	encode bool
}

// NewHuffmanCommand creates the huffman command.
func NewHuffmanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &huffmanOptions{}

	cmd := &cobra.Command{
		Use:   "huffman [symbols]",
		Short: "Huffman codes for a set of symbols",
		Long: `Builds Huffman codes either from symbols and their frequencies, or from the
symbol counts of a text. Codes are printed in symbol order.`,
		Example: `  dsa huffman abcdef --freq 5,9,12,13,16,45
  dsa huffman --text abracadabra --encode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHuffman(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().IntSliceVar(&opts.freq, "freq", nil, "comma separated symbol frequencies")
	cmd.Flags().StringVar(&opts.text, "text", "", "derive symbols and frequencies from a text")
	cmd.Flags().BoolVar(&opts.encode, "encode", false, "print the encoded text (requires --text)")

	return cmd
}

func runHuffman(cmd *cobra.Command, rootOpts *RootOptions, opts *huffmanOptions, args []string) error {
	var (
		symbols []rune
		freq    []int
	)

	switch {
	case opts.text != "" && len(args) > 0:
		return errors.New("symbols and --text are mutually exclusive")
	case opts.text != "":
		symbols, freq = greedy.Frequencies(opts.text)
	case len(args) == 1:
		symbols, freq = []rune(args[0]), opts.freq
	default:
		return errors.New("either symbols with --freq or --text is required")
	}

	if opts.encode && opts.text == "" {
		return errors.New("--encode requires --text")
	}

	tree, err := greedy.BuildHuffmanTree(symbols, freq)
	if err != nil {
		return err
	}

	codes := tree.Codes()
	bits, err := codes.Length(symbols, freq)
	if err != nil {
		return err
	}
	rootOpts.Logger.Debug("huffman tree built", "symbols", len(symbols), "bits", bits)

	out := cmd.OutOrStdout()
	for _, code := range tree.Ordered() {
		fmt.Fprintf(out, "%c: %s\n", code.Symbol, code.Bits)
	}

	if !opts.encode {
		return nil
	}

	encoded, err := codes.Encode(opts.text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Encoded: %s\n", encoded)

	return nil
}
