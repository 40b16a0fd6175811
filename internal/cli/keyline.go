package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/align"
)

// keylineOptions holds the keyline command flags.
type keylineOptions struct {
	size     int
	offset   int
	fraction float64
	edge     string
	item     int
	anchor   float64
	reverse  bool
}

// keylineCommand creates the keyline command, a calculator for keyline and
// anchor positions.
func (c *CLI) keylineCommand() *cobra.Command {
	opts := keylineOptions{size: 1000, fraction: 0.5, anchor: 0.5, item: 100}

	cmd := &cobra.Command{
		Use:   "keyline",
		Short: "Compute where an item is placed on the keyline",
		Long: `Compute where an item is placed on the keyline.

The keyline sits at offset + fraction * size inside the viewport, measured
from the end in reverse layouts. An item is aligned by placing its anchor,
at anchor * item size from its start, on the keyline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeyline(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", opts.size, "viewport size along the scroll axis")
	cmd.Flags().IntVar(&opts.offset, "offset", opts.offset, "keyline offset in pixels")
	cmd.Flags().Float64Var(&opts.fraction, "fraction", opts.fraction, "keyline fraction of the viewport size")
	cmd.Flags().StringVar(&opts.edge, "edge", "min_max", "preferred edges: none, min, max, min_max")
	cmd.Flags().IntVar(&opts.item, "item", opts.item, "item size along the scroll axis")
	cmd.Flags().Float64Var(&opts.anchor, "anchor", opts.anchor, "child anchor fraction of the item size")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "reverse layout")

	return cmd
}

func runKeyline(w io.Writer, opts keylineOptions) error {
	edge, err := layout.ParseEdge(opts.edge)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "edge")
	}
	if err := errors.ValidateFraction("keyline", opts.fraction); err != nil {
		return err
	}
	if err := errors.ValidateFraction("anchor", opts.anchor); err != nil {
		return err
	}
	if opts.size <= 0 || opts.item < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "viewport size must be > 0 and item size >= 0")
	}

	parent := layout.ParentAlignment{Edge: edge, Offset: opts.offset, Fraction: opts.fraction}
	keyline := align.Keyline(opts.size, parent, opts.reverse)
	anchor := align.AnchorOffset(opts.item, layout.ChildAlignment{Fraction: opts.anchor}, opts.reverse)
	start := keyline - anchor

	printKeyValue(w, "keyline", styleKeyline.Render(strconv.Itoa(keyline)))
	printKeyValue(w, "anchor", strconv.Itoa(anchor))
	printKeyValue(w, "item", fmt.Sprintf("[%d, %d]", start, start+opts.item))
	printKeyValue(w, "edges", edge.String())
	if start < 0 || start+opts.item > opts.size {
		printWarning(w, "item extends past the viewport")
	}
	return nil
}
