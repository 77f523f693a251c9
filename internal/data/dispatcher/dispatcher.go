// Package dispatcher applies backend poll results to the scene.
package dispatcher

import (
	"github.com/atomicstack/eash/internal/backend"
	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/state"
)

// Result reports what an event changed.
type Result struct {
	SegmentsUpdated bool
	Failed          bool
}

// Dispatcher routes backend events into a scene.
type Dispatcher struct {
	scene *state.Scene
}

func New(scene *state.Scene) *Dispatcher {
	return &Dispatcher{scene: scene}
}

// Handle merges the values carried by evt. Failed polls are traced and leave
// the previous values in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Segment.Error(evt.Kind.String(), evt.Err)
		res.Failed = true
		return res
	}
	if len(evt.Values) == 0 {
		return res
	}
	if d.scene.SetSegments(evt.Values) {
		events.Segment.Update(evt.Values)
		res.SegmentsUpdated = true
	}
	return res
}

// Drain handles events until ch is closed.
func (d *Dispatcher) Drain(ch <-chan backend.Event) {
	for evt := range ch {
		d.Handle(evt)
	}
}
