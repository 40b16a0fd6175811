// Package layout defines the values shared by every stage of the keyline
// engine: orientations and directions, item bounds, the per-pass layout
// request, alignment configuration, the window of placed children, adapter
// mutation records and the collaborator interfaces implemented by a host.
//
// # Coordinates
//
// All engine arithmetic happens on two abstract axes. The primary axis is the
// scroll axis (y for [Vertical], x for [Horizontal]); the secondary axis is the
// axis grids pack their spans along. [Bounds] stores an item's extent on both
// axes and [Bounds.Rect] converts it into the host's [Rect].
//
// # Directions
//
// [Direction] is visual: [Start] is towards the top/left edge of the viewport,
// [End] towards the bottom/right. [ItemDirection] is logical: [Tail] moves
// towards higher adapter positions, [Head] towards lower ones. The mapping
// between the two depends on reverse layout and is resolved in exactly one
// place, [Request.Append] and [Request.Prepend].
//
// # Collaborators
//
// The engine never owns concrete views. It consumes an [Adapter] (item count
// and view binding) and a [Host] (measure, place, recycle, scrap enumeration)
// and refers to views only through the opaque [View] handle.
package layout
