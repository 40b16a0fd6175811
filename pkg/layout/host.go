package layout

// View is an opaque handle to a host view.
type View any

// Adapter exposes the logical item sequence.
type Adapter interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// ItemAt returns a view bound to the item at position.
	ItemAt(position int) View
}

// Host owns concrete views: it measures, positions and recycles them.
type Host interface {
	// Measure returns the measured width and height of v.
	Measure(v View) (width, height int)
	// Place positions v at r.
	Place(v View, r Rect)
	// Recycle releases v once the engine no longer shows it.
	Recycle(v View)
	// Scrap lists views that were detached but are kept for reuse or
	// for an item animation.
	Scrap() []ScrapEntry
}

// ScrapEntry is one view held in the host's scrap.
type ScrapEntry struct {
	Position int
	View     View
	// Removed is set for views whose item was removed from the adapter.
	Removed bool
}

// Child is a view placed in the current window.
type Child struct {
	Position int
	View     View
	Bounds   Bounds
}
