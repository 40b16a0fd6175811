package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/snapshot"
)

// simulateOptions holds the simulate command flags.
type simulateOptions struct {
	config string
	moves  []string
	scroll int
	output string
	svg    string
	dot    string
	labels bool
}

// simulateCommand creates the simulate command for running scenarios.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Lay out a scenario and apply moves",
		Long: `Lay out a scenario and apply moves.

The simulate command builds the items and options of a scenario file (or a
default list of 100 items), runs a full layout, optionally scrolls, then
applies each move in order. Moves are up, down, left, right, next and
previous. A move without a target is reported and the pivot is kept.

The final layout can be exported as a JSON snapshot, Graphviz DOT source or
an SVG drawing of the viewport.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "scenario file (TOML)")
	cmd.Flags().StringSliceVarP(&opts.moves, "moves", "m", nil, "comma-separated moves, overriding the scenario")
	cmd.Flags().IntVar(&opts.scroll, "scroll", 0, "scroll by this many pixels before the moves")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the final snapshot as JSON")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "render the final layout to SVG")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the final layout as Graphviz DOT")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label boxes with item labels instead of positions")

	return cmd
}

// runSimulate runs the scenario and writes the requested outputs.
func (c *CLI) runSimulate(w io.Writer, opts simulateOptions) error {
	f, err := loadScenario(opts.config)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	if opts.moves != nil {
		f.Moves = opts.moves
	}
	moves, err := f.ParseMoves()
	if err != nil {
		return fmt.Errorf("parse moves: %w", err)
	}

	s, err := c.newSession(f)
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}
	m := s.manager

	prog := newProgress(c.Logger)
	res := m.Layout()
	printInfo(w, "Layout placed %d children around pivot %d", res.Placed, res.Pivot)

	if opts.scroll != 0 {
		scrolled := m.ScrollBy(opts.scroll)
		printInfo(w, "Scrolled %d of %d px, pivot %d", scrolled, opts.scroll, m.Pivot())
	}

	for _, d := range moves {
		from := m.Pivot()
		to, err := m.Move(d)
		switch {
		case errors.Is(err, errors.ErrCodeNoTarget):
			printWarning(w, "%s from %d: no target", d, from)
		case err != nil:
			return fmt.Errorf("move %s: %w", d, err)
		default:
			printInfo(w, "%s %d %s %d", d, from, iconArrow, to)
		}
	}
	prog.done(fmt.Sprintf("Simulated %d moves", len(moves)))

	snap := snapshot.Capture(m)
	fmt.Fprintln(w)
	printSnapshot(w, snap)

	return writeOutputs(w, snap, opts)
}

// writeOutputs writes the snapshot files selected by the flags.
func writeOutputs(w io.Writer, snap snapshot.Snapshot, opts simulateOptions) error {
	var written []string
	if opts.output != "" {
		if err := snapshot.ExportJSON(snap, opts.output); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		written = append(written, opts.output)
	}

	dot := snapshot.ToDOT(snap, snapshot.DOTOptions{Labels: opts.labels})
	if opts.dot != "" {
		if err := os.WriteFile(opts.dot, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.dot, err)
		}
		written = append(written, opts.dot)
	}
	if opts.svg != "" {
		svg, err := snapshot.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.svg, err)
		}
		written = append(written, opts.svg)
	}

	if len(written) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	printSuccess(w, "Wrote %d file(s)", len(written))
	for _, path := range written {
		printFile(w, path)
	}
	if opts.output != "" {
		fmt.Fprintln(w)
		printNextStep(w, "Explore interactively", appName+" explore")
	}
	return nil
}
