package events

import "github.com/atomicstack/eash/internal/logging"

type PhysicsTracer struct{}

type RenderTracer struct{}

var (
	Physics = PhysicsTracer{}
	Render  = RenderTracer{}
)

func (PhysicsTracer) Bump(velocity, total float64) {
	logging.Trace("physics.bump", map[string]interface{}{"velocity": velocity, "total": total})
}

// Stats summarises the render loop since the previous report.
func (RenderTracer) Stats(frames, skipped, promptSkipped int, meanFrameMicros int64) {
	logging.Trace("render.stats", map[string]interface{}{
		"frames":         frames,
		"skipped":        skipped,
		"prompt_skipped": promptSkipped,
		"mean_frame_us":  meanFrameMicros,
	})
}

func (RenderTracer) Failed(err error) {
	logging.Trace("render.failed", map[string]interface{}{"error": err.Error()})
}
