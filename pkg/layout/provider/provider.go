// Package provider supplies views to the fill loop.
//
// A [Provider] turns the next position of a [layout.Request] into a view.
// [Fresh] binds views from the adapter. [Scrap] hands out views the host
// detached but kept, such as views that are animating out.
package provider

import "github.com/matzehuels/keyline/pkg/layout"

// Provider yields the next view for a request and advances the request's
// current position.
type Provider interface {
	// HasNext reports whether Next would return a view.
	HasNext(req *layout.Request, itemCount int) bool
	// Peek returns the position Next would return without advancing.
	Peek(req *layout.Request, itemCount int) (int, bool)
	// Next returns the next view. The returned child has no bounds yet.
	Next(req *layout.Request, itemCount int) (layout.Child, bool)
}

// Fresh binds views from an adapter, one position after another.
type Fresh struct {
	adapter layout.Adapter
}

// NewFresh returns a provider binding views from adapter.
func NewFresh(adapter layout.Adapter) *Fresh {
	return &Fresh{adapter: adapter}
}

// HasNext implements Provider.
func (f *Fresh) HasNext(req *layout.Request, itemCount int) bool {
	return req.HasMoreItems(itemCount)
}

// Peek implements Provider.
func (f *Fresh) Peek(req *layout.Request, itemCount int) (int, bool) {
	if !req.HasMoreItems(itemCount) {
		return layout.NoPosition, false
	}
	return req.CurrentPosition, true
}

// Next implements Provider.
func (f *Fresh) Next(req *layout.Request, itemCount int) (layout.Child, bool) {
	p, ok := req.NextPosition(itemCount)
	if !ok {
		return layout.Child{}, false
	}
	return layout.Child{Position: p, View: f.adapter.ItemAt(p)}, true
}
