package ui

import (
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/physics"
	"github.com/atomicstack/eash/internal/prompt"
	"github.com/atomicstack/eash/internal/state"
)

func (m *Model) handleKeyPress(msg tea.Msg) tea.Cmd {
	press := msg.(tea.KeyPressMsg)
	switch {
	case key.Matches(press, m.keys.Quit):
		return m.quit("interrupt")
	case key.Matches(press, m.keys.EOF):
		return m.handleEOF()
	case key.Matches(press, m.keys.Submit):
		m.submit()
	case key.Matches(press, m.keys.DeleteWord):
		m.deleteWord()
	case key.Matches(press, m.keys.Backspace):
		m.backspace()
	case key.Matches(press, m.keys.Delete):
		m.deleteForward()
	case key.Matches(press, m.keys.Clear):
		m.clear()
	case key.Matches(press, m.keys.Left):
		m.arrow(prompt.Left, press.Mod)
	case key.Matches(press, m.keys.Right):
		m.arrow(prompt.Right, press.Mod)
	case key.Matches(press, m.keys.Home):
		m.jumpToEdge(prompt.Left)
	case key.Matches(press, m.keys.End):
		m.jumpToEdge(prompt.Right)
	default:
		m.insert(press)
	}
	return nil
}

// edit runs fn under the scene lock and applies the impulse it returns.
func (m *Model) edit(fn func(p *prompt.Prompt, im physics.Impulses) float64) {
	m.scene.Edit(fn)
}

func (m *Model) insert(press tea.KeyPressMsg) {
	if press.Text == "" || press.Mod.Contains(tea.ModCtrl) || press.Mod.Contains(tea.ModAlt) {
		return
	}
	for _, r := range press.Text {
		if unicode.IsControl(r) {
			return
		}
	}
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		p.ClearSelection()
		p.InsertString(press.Text)
		events.Editor.Insert(p.Text, p.Cursor)
		return im.Edit
	})
}

func (m *Model) backspace() {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		if _, selecting := p.Selection(); selecting {
			fromStart := p.DeleteSelection()
			events.Editor.DeleteSelection(p.Text, p.Cursor, fromStart)
			if fromStart {
				return -im.Edge
			}
			return -im.Edit
		}
		edge := p.DeleteCharacter()
		events.Editor.Delete(p.Text, p.Cursor, edge)
		if edge {
			return -im.Edge
		}
		return -im.Edit
	})
}

func (m *Model) deleteWord() {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		p.ClearSelection()
		if p.CtrlBackspace() {
			events.Editor.Delete(p.Text, p.Cursor, true)
			return -im.Edge
		}
		events.Editor.DeleteWord(p.Text, p.Cursor)
		return -im.Word
	})
}

func (m *Model) deleteForward() {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		p.ClearSelection()
		edge := p.DeleteForward()
		events.Editor.Delete(p.Text, p.Cursor, edge)
		if edge {
			return im.Edge
		}
		return im.Edit
	})
}

func (m *Model) clear() {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		previous := p.Clear()
		events.Editor.Cleared(previous)
		if previous == "" {
			return -im.Edge
		}
		return -im.Word
	})
}

func (m *Model) arrow(dir prompt.Direction, mod tea.KeyMod) {
	shift := mod.Contains(tea.ModShift)
	ctrl := mod.Contains(tea.ModCtrl)
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		if !shift {
			p.ClearSelection()
		}
		blocked := p.HorizontalArrow(dir, shift, ctrl)
		if anchor, ok := p.Selection(); ok {
			events.Editor.Selection(anchor, p.Cursor)
		}
		events.Editor.Cursor(dir.String(), p.Cursor, blocked)
		if blocked {
			return dir.Sign() * im.Edge
		}
		return dir.Sign() * im.Edit
	})
}

func (m *Model) jumpToEdge(dir prompt.Direction) {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		p.ClearSelection()
		var blocked bool
		if dir == prompt.Left {
			blocked = p.MoveToStart()
		} else {
			blocked = p.MoveToEnd()
		}
		events.Editor.Cursor(dir.String(), p.Cursor, blocked)
		if blocked {
			return dir.Sign() * im.Edge
		}
		return dir.Sign() * im.Edit
	})
}

func (m *Model) submit() {
	m.edit(func(p *prompt.Prompt, im physics.Impulses) float64 {
		events.Editor.Submit(p.Clear())
		return im.Edge
	})
}

func (m *Model) handleEOF() tea.Cmd {
	empty := false
	m.scene.Do(func(l *state.Locked) {
		if shared := l.Chain.Prompt(); shared != nil {
			shared.Edit(func(p *prompt.Prompt) { empty = p.Text == "" })
		}
	})
	if empty {
		return m.quit("eof")
	}
	m.deleteForward()
	return nil
}
