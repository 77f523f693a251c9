package events

import "github.com/atomicstack/eash/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Insert(text string, cursor int) {
	logging.Trace("editor.insert", map[string]interface{}{"text": text, "cursor": cursor})
}

func (EditorTracer) Delete(text string, cursor int, edge bool) {
	logging.Trace("editor.delete", map[string]interface{}{"text": text, "cursor": cursor, "edge": edge})
}

func (EditorTracer) DeleteWord(text string, cursor int) {
	logging.Trace("editor.delete.word", map[string]interface{}{"text": text, "cursor": cursor})
}

func (EditorTracer) DeleteSelection(text string, cursor int, fromStart bool) {
	logging.Trace("editor.delete.selection", map[string]interface{}{"text": text, "cursor": cursor, "from_start": fromStart})
}

func (EditorTracer) Cursor(direction string, cursor int, blocked bool) {
	logging.Trace("editor.cursor", map[string]interface{}{"direction": direction, "cursor": cursor, "blocked": blocked})
}

func (EditorTracer) Selection(anchor, cursor int) {
	logging.Trace("editor.selection", map[string]interface{}{"anchor": anchor, "cursor": cursor})
}

func (EditorTracer) Cleared(previous string) {
	logging.Trace("editor.cleared", map[string]interface{}{"previous": previous})
}

func (EditorTracer) Submit(text string) {
	logging.Trace("editor.submit", map[string]interface{}{"text": text})
}
