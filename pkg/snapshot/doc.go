// Package snapshot captures the state of a pivot manager for inspection.
//
// # Overview
//
// A [Snapshot] records the viewport, the pivot, the keyline, the scroll
// limits and the rectangle of every laid out child. Snapshots are plain
// values and can be:
//
//   - Written as JSON with [WriteJSON] or [ExportJSON] and read back with
//     [ReadJSON] or [ImportJSON]
//   - Converted to Graphviz DOT source with [ToDOT]
//   - Rendered to SVG with [RenderSVG]
//
// # JSON Format
//
//	{
//	  "orientation": "vertical",
//	  "viewport": {"size": 1000, "secondary": 400},
//	  "strategy": "linear",
//	  "item_count": 100,
//	  "pivot": 0,
//	  "keyline": 500,
//	  "limits": {"start": 0},
//	  "complete": false,
//	  "children": [
//	    {"position": 0, "label": "item 0", "rect": {"left": 0, "top": 0, "right": 400, "bottom": 100}}
//	  ]
//	}
//
// Unknown limits are omitted.
//
// # Rendering
//
// [ToDOT] pins every child at its laid out rectangle, so the neato engine
// draws the layout as is instead of computing one. The viewport is drawn
// as a dashed frame and the keyline as a thin red bar across it.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package snapshot
