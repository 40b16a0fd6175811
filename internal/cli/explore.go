package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/pivot"
	"github.com/matzehuels/keyline/pkg/sim"
	"github.com/matzehuels/keyline/pkg/snapshot"
)

// Canvas styles
var (
	styleBoxEven = lipgloss.NewStyle().Foreground(colorGray)
	styleBoxOdd  = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel   = lipgloss.NewStyle().Foreground(colorWhite)
)

const (
	// chrome is the number of terminal lines used around the canvas.
	chrome = 6

	minCanvasCols = 20
	minCanvasRows = 5
)

// exploreCommand creates the explore command for driving a scenario
// interactively.
func (c *CLI) exploreCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Drive a scenario interactively",
		Long: `Drive a scenario interactively.

Arrow keys (or hjkl) move the pivot, tab and shift+tab select the next and
previous item, page up and page down scroll freely. Press + or - to change
the span count, i to insert an item after the pivot, d to delete the pivot
and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "scenario file (TOML)")
	return cmd
}

func (c *CLI) runExplore(ctx context.Context, path string) error {
	f, err := loadScenario(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	s, err := c.newSession(f)
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}
	s.manager.Layout()

	p := tea.NewProgram(NewExploreModel(s), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}

// =============================================================================
// ExploreModel - Interactive layout
// =============================================================================

// ExploreModel is the bubbletea model of the explore command.
type ExploreModel struct {
	session *session
	Cols    int
	Rows    int
	Status  string
}

// NewExploreModel creates a model over a laid out session.
func NewExploreModel(s *session) ExploreModel {
	return ExploreModel{session: s, Cols: 60, Rows: 20}
}

var keyMoves = map[string]pivot.Move{
	"up":        pivot.MoveUp,
	"k":         pivot.MoveUp,
	"down":      pivot.MoveDown,
	"j":         pivot.MoveDown,
	"left":      pivot.MoveLeft,
	"h":         pivot.MoveLeft,
	"right":     pivot.MoveRight,
	"l":         pivot.MoveRight,
	"tab":       pivot.MoveNext,
	"shift+tab": pivot.MovePrevious,
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mgr := m.session.manager
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if d, ok := keyMoves[key]; ok {
			from := mgr.Pivot()
			to, err := mgr.Move(d)
			switch {
			case errors.Is(err, errors.ErrCodeNoTarget):
				m.Status = fmt.Sprintf("%s from %d: no target", d, from)
			case err != nil:
				m.Status = errors.UserMessage(err)
			default:
				m.Status = fmt.Sprintf("%s %d %s %d", d, from, iconArrow, to)
			}
			return m, nil
		}
		page := mgr.Options().Viewport.Size / 2
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "pgdown", " ":
			m.Status = fmt.Sprintf("scrolled %d", mgr.ScrollBy(page))
		case "pgup":
			m.Status = fmt.Sprintf("scrolled %d", mgr.ScrollBy(-page))
		case "+", "-":
			n := mgr.Options().SpanCount + 1
			if key == "-" {
				n -= 2
			}
			if err := mgr.SetSpanCount(n); err != nil {
				m.Status = errors.UserMessage(err)
				return m, nil
			}
			m.Status = fmt.Sprintf("span count %d", n)
		case "i":
			at := mgr.Pivot() + 1
			m.session.adapter.Insert(at, sim.Item{
				Label:  "new",
				Width:  mgr.Options().Viewport.SecondarySize / mgr.Options().SpanCount,
				Height: averageHeight(mgr.Children()),
			})
			m.Status = fmt.Sprintf("inserted at %d", at)
		case "d":
			if at := mgr.Pivot(); at != layout.NoPosition {
				m.session.adapter.Remove(at, 1)
				m.Status = fmt.Sprintf("removed %d", at)
			}
		}
		if mgr.NeedsLayout() {
			mgr.Layout()
		}
	case tea.WindowSizeMsg:
		m.Cols = max(msg.Width-2, minCanvasCols)
		m.Rows = max(msg.Height-chrome, minCanvasRows)
	}
	return m, nil
}

func (m ExploreModel) View() string {
	snap := snapshot.Capture(m.session.manager)

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Keyline"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("arrows: move  tab: next  pgup/pgdn: scroll  +/-: spans  i/d: insert/delete  q: quit"))
	b.WriteString("\n\n")
	b.WriteString(drawCanvas(buildCanvas(snap, m.Cols, m.Rows), snap.Pivot))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("pivot %s  keyline %d  limits [%s, %s]  %s  %d items",
		stylePivot.Render(strconv.Itoa(snap.Pivot)), snap.Keyline,
		formatLimit(snap.Limits.Start), formatLimit(snap.Limits.End), snap.Strategy, snap.ItemCount)))
	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(StyleValue.Render(m.Status))
	}
	return b.String()
}

func averageHeight(children []layout.Child) int {
	if len(children) == 0 {
		return 100
	}
	total := 0
	for _, c := range children {
		total += c.Bounds.Size()
	}
	return total / len(children)
}

// =============================================================================
// Canvas
// =============================================================================

// cell is one character of the canvas. owner is the position drawn in the
// cell, or layout.NoPosition.
type cell struct {
	ch      rune
	owner   int
	keyline bool
}

// buildCanvas scales the snapshot viewport onto a cols x rows character
// grid. Every child fills the cells its rectangle covers and is labelled
// with its position in its top-left corner.
func buildCanvas(s snapshot.Snapshot, cols, rows int) [][]cell {
	vw, vh := s.Viewport.Secondary, s.Viewport.Size
	if s.Horizontal() {
		vw, vh = vh, vw
	}
	cw := max(ceilDiv(vw, cols), 1)
	ch := max(ceilDiv(vh, rows), 1)

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', owner: layout.NoPosition}
		}
	}

	if s.Horizontal() {
		if x := s.Keyline / cw; x >= 0 && x < cols {
			for y := range grid {
				grid[y][x] = cell{ch: '│', owner: layout.NoPosition, keyline: true}
			}
		}
	} else if y := s.Keyline / ch; y >= 0 && y < rows {
		for x := range grid[y] {
			grid[y][x] = cell{ch: '─', owner: layout.NoPosition, keyline: true}
		}
	}

	for _, c := range s.Children {
		r := c.Rect
		x0, x1 := max(r.Left/cw, 0), min(ceilDiv(r.Right, cw), cols)
		y0, y1 := max(r.Top/ch, 0), min(ceilDiv(r.Bottom, ch), rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				grid[y][x] = cell{ch: '█', owner: c.Position, keyline: grid[y][x].keyline}
			}
		}
		// Clipped at the top, the label would describe a box it is not on.
		if r.Top < 0 || y0 >= y1 {
			continue
		}
		for i, d := range strconv.Itoa(c.Position) {
			if x0+i >= x1 {
				break
			}
			grid[y0][x0+i].ch = d
		}
	}
	return grid
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// plainCanvas renders the canvas without styles.
func plainCanvas(grid [][]cell) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.ch)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// drawCanvas renders the canvas with the pivot highlighted and alternating
// shades for neighbouring items.
func drawCanvas(grid [][]cell, pivotPos int) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			s := string(c.ch)
			switch {
			case c.owner == layout.NoPosition && c.keyline:
				b.WriteString(styleKeyline.Render(s))
			case c.owner == layout.NoPosition:
				b.WriteString(s)
			case c.ch >= '0' && c.ch <= '9':
				b.WriteString(styleLabel.Render(s))
			case c.owner == pivotPos:
				b.WriteString(stylePivot.Render(s))
			case c.owner%2 == 0:
				b.WriteString(styleBoxEven.Render(s))
			default:
				b.WriteString(styleBoxOdd.Render(s))
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
