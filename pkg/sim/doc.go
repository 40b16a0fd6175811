// Package sim provides an in-memory adapter and host for driving the layout
// engine without a real view system.
//
// The [Adapter] holds a slice of [Item] values and notifies a [Listener]
// about every mutation, the way a UI adapter notifies its layout manager.
// The [Host] measures views from their item sizes and records every
// placement and recycle so tests and the CLI can inspect what the engine
// did.
//
// Text items derive their width from the display width of their label,
// measured with github.com/rivo/uniseg so wide runes and emoji take the
// cells a terminal would give them.
package sim
