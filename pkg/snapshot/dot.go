package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// pointsPerInch converts layout pixels, drawn as points, to the inch units
// of node sizes.
const pointsPerInch = 72.0

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Labels draws item labels instead of positions.
	Labels bool
	// HideKeyline omits the keyline bar.
	HideKeyline bool
}

// ToDOT converts a snapshot to Graphviz DOT source with every box pinned
// at its layout position. Render it with [RenderSVG], which uses neato.
// The y axis is flipped because DOT coordinates grow upwards.
func ToDOT(s Snapshot, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph keyline {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fixedsize=true, fontsize=10, margin=0];\n")
	buf.WriteString("\n")

	vw, vh := s.Viewport.Secondary, s.Viewport.Size
	if s.Horizontal() {
		vw, vh = vh, vw
	}
	writeBox(&buf, "viewport", "", 0, 0, vw, vh, `style=dashed, fillcolor=none, color=grey`)

	if !opts.HideKeyline {
		if s.Horizontal() {
			writeBox(&buf, "keyline", "", s.Keyline, 0, s.Keyline+1, vh, `style=filled, fillcolor=red, color=red`)
		} else {
			writeBox(&buf, "keyline", "", 0, s.Keyline, vw, s.Keyline+1, `style=filled, fillcolor=red, color=red`)
		}
	}

	for _, c := range s.Children {
		label := strconv.Itoa(c.Position)
		if opts.Labels && c.Label != "" {
			label = c.Label
		}
		attrs := `fillcolor=white`
		if c.Position == s.Pivot {
			attrs = `fillcolor=gold, penwidth=2`
		}
		r := c.Rect
		writeBox(&buf, fmt.Sprintf("item%d", c.Position), label, r.Left, r.Top, r.Right, r.Bottom, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeBox(buf *bytes.Buffer, id, label string, left, top, right, bottom int, attrs string) {
	cx := float64(left+right) / 2
	cy := -float64(top+bottom) / 2
	w := float64(right-left) / pointsPerInch
	h := float64(bottom-top) / pointsPerInch
	fmt.Fprintf(buf, "  %q [label=%q, pos=\"%.1f,%.1f!\", width=%.4f, height=%.4f, %s];\n",
		id, label, cx, cy, w, h, attrs)
}

// RenderSVG renders DOT source to SVG with the neato engine, keeping the
// pinned positions.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.\-]+)\s+([0-9.\-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox drops the fixed width and height graphviz emits in
// points so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
