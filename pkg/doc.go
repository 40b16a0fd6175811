// Package pkg provides the core libraries for Keyline, a virtualized list and
// grid layout engine that keeps a focused item (the pivot) aligned to a
// configurable keyline inside the viewport.
//
// # Overview
//
// Keyline is host-agnostic: it never owns views, it only decides which
// adapter positions are materialized, where they are placed and which ones
// are recycled. The pkg directory is organized into these areas:
//
//  1. [layout] - Shared values (bounds, directions, requests, window) and the
//     collaborator interfaces a host implements
//  2. [layout/align] - Keyline computation, scroll offsets and scroll limits
//  3. [layout/span] - Span sizes and span index lookups for grids
//  4. [layout/engineer] - Fill loops, scrolling and the linear/grid strategies
//  5. [pivot] - The public manager: pivot selection, focus moves, mutations
//  6. [sim] - An in-memory adapter and host for tests and the CLI
//  7. [snapshot] - Capturing a manager's state as JSON, DOT or SVG
//  8. [config] - TOML scenario files
//
// # Architecture
//
// A typical pass:
//
//	Adapter mutation / focus move / scroll
//	         ↓
//	    [pivot] manager (pivot + alignment state)
//	         ↓
//	    [layout/engineer] (fill both directions from the pivot)
//	         ↓
//	    [layout/align] (keyline, limits, scroll offset)
//	         ↓
//	    Host.Place / Host.Recycle
//
// # Quick Start
//
// Lay out a list and focus an item:
//
//	import (
//	    "github.com/matzehuels/keyline/pkg/layout"
//	    "github.com/matzehuels/keyline/pkg/pivot"
//	    "github.com/matzehuels/keyline/pkg/sim"
//	    "github.com/matzehuels/keyline/pkg/snapshot"
//	)
//
//	adapter := sim.NewAdapter(sim.Uniform(100, 400, 100))
//	host := sim.NewHost()
//	m, err := pivot.New(adapter, host, pivot.Options{
//	    Viewport: layout.Viewport{Size: 1000, SecondarySize: 400},
//	})
//	if err != nil {
//	    return err
//	}
//	m.Layout()
//	if err := m.SetPivot(20); err != nil {
//	    return err
//	}
//
// Move focus and inspect the result:
//
//	next, err := m.Move(pivot.MoveDown)
//	fmt.Println(next, m.Keyline(), len(m.Children()))
//
// Export what the viewport shows:
//
//	snap := snapshot.Capture(m)
//	_ = snapshot.ExportJSON(snap, "state.json")
//	svg, err := snapshot.RenderSVG(snapshot.ToDOT(snap, snapshot.DOTOptions{Labels: true}))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/layout/...      # Engine only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/layout
// [layout/align]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/layout/align
// [layout/span]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/layout/span
// [layout/engineer]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/layout/engineer
// [pivot]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/pivot
// [sim]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/sim
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/snapshot
// [config]: https://pkg.go.dev/github.com/matzehuels/keyline/pkg/config
package pkg
