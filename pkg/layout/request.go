package layout

// Request describes how much space a fill loop must still cover, in which
// direction and from which checkpoint. One request is configured per fill
// direction per pass and mutated in place by the fill loop.
type Request struct {
	// Direction is the visual direction of the fill.
	Direction Direction
	// ItemDirection is the direction adapter positions advance in.
	ItemDirection ItemDirection
	// CurrentPosition is the next adapter position to materialize.
	CurrentPosition int
	// Checkpoint is where the next item's leading edge must be placed:
	// its Start when filling towards End, its End when filling towards Start.
	Checkpoint int
	// Available is the space still to fill inside the viewport. It may go
	// negative once Extra is being consumed.
	Available int
	// Extra is speculative space to fill beyond the viewport.
	Extra int
	// Infinite disables the space check, loops stop only when items run out.
	Infinite bool
	// Reverse is set for reverse layouts, position 0 sits at the End edge.
	Reverse bool
	// Recycle allows the recycler to run after this fill.
	Recycle bool
}

// Append configures the request to fill towards End, continuing after the
// item at reference.
func (r *Request) Append(reference int) {
	r.configure(End, reference)
}

// Prepend configures the request to fill towards Start, continuing before
// the item at reference.
func (r *Request) Prepend(reference int) {
	r.configure(Start, reference)
}

func (r *Request) configure(d Direction, reference int) {
	r.Direction = d
	r.ItemDirection = ItemDirectionFor(d, r.Reverse)
	r.CurrentPosition = reference + r.ItemDirection.Value()
	r.Recycle = false
}

// IsLayingOutEnd reports whether the request fills towards End.
func (r *Request) IsLayingOutEnd() bool { return r.Direction == End }

// IsLayingOutStart reports whether the request fills towards Start.
func (r *Request) IsLayingOutStart() bool { return r.Direction == Start }

// HasSpace reports whether the fill loop may place another item.
func (r *Request) HasSpace() bool {
	return r.Infinite || r.Available+r.Extra > 0
}

// HasMoreItems reports whether CurrentPosition is within [0, itemCount).
func (r *Request) HasMoreItems(itemCount int) bool {
	return r.CurrentPosition >= 0 && r.CurrentPosition < itemCount
}

// NextPosition returns the next position to materialize and advances the
// request. It returns false once the position runs past [0, itemCount).
func (r *Request) NextPosition(itemCount int) (int, bool) {
	if !r.HasMoreItems(itemCount) {
		return NoPosition, false
	}
	p := r.CurrentPosition
	r.CurrentPosition += r.ItemDirection.Value()
	return p, true
}

// Consume moves the checkpoint by consumed pixels in the fill direction and
// shrinks the available space.
func (r *Request) Consume(consumed int) {
	if r.Direction == End {
		r.Checkpoint += consumed
	} else {
		r.Checkpoint -= consumed
	}
	r.Available -= consumed
}

// State is a request plus the primary-axis extent already laid out in the
// current pass.
type State struct {
	Request Request
	// Start and End delimit the laid out content.
	Start, End int
}

// Reset clears the state for a new pass, keeping only the reverse flag.
func (s *State) Reset(reverse bool) {
	*s = State{Request: Request{Reverse: reverse}}
}

// AppendWindow grows the extent towards End by consumed pixels.
func (s *State) AppendWindow(consumed int) {
	s.End += consumed
	s.Request.Consume(consumed)
}

// PrependWindow grows the extent towards Start by consumed pixels.
func (s *State) PrependWindow(consumed int) {
	s.Start -= consumed
	s.Request.Consume(consumed)
}

// Consume grows the extent in the request's direction.
func (s *State) Consume(consumed int) {
	if s.Request.IsLayingOutEnd() {
		s.AppendWindow(consumed)
	} else {
		s.PrependWindow(consumed)
	}
}
