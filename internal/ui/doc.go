// Package ui is the input side of the prompt: a Bubble Tea program that reads
// key presses and turns them into prompt edits and physical impulses. It
// never draws; painting belongs to the render loop in internal/app, so the
// program runs without a renderer and View returns an empty view.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are matched against the KeyMap (internal/ui/keys.go) and
//     handled in internal/ui/input.go. Every edit runs under the scene lock
//     through state.Scene.Edit, which takes the prompt lock afterwards and
//     applies the returned impulse to the prompt link before releasing.
//   - Window size messages record the terminal width in the scene so the
//     render loop can clip at the right edge.
//
// Impulses:
//   - An ordinary edit or cursor move kicks the prompt by Impulses.Edit in the
//     direction of the edit.
//   - An edit that runs into the edge of the text, or removes a selection that
//     began at the start of the text, kicks by Impulses.Edge instead.
//   - Word deletes and clearing the line kick left by Impulses.Word.
package ui
