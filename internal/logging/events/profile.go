package events

import "github.com/atomicstack/eash/internal/logging"

type ProfileTracer struct{}

type SegmentTracer struct{}

var (
	Profile = ProfileTracer{}
	Segment = SegmentTracer{}
)

func (ProfileTracer) Loaded(path string, elements, glyphs int) {
	logging.Trace("profile.loaded", map[string]interface{}{"path": path, "elements": elements, "glyphs": glyphs})
}

func (ProfileTracer) Reloaded(path string, elements int) {
	logging.Trace("profile.reloaded", map[string]interface{}{"path": path, "elements": elements})
}

func (ProfileTracer) ReloadFailed(path string, err error) {
	logging.Trace("profile.reload.failed", map[string]interface{}{"path": path, "error": err.Error()})
}

func (SegmentTracer) Update(values map[string]string) {
	logging.Trace("segment.update", map[string]interface{}{"values": values})
}

func (SegmentTracer) Error(source string, err error) {
	logging.Trace("segment.error", map[string]interface{}{"source": source, "error": err.Error()})
}
