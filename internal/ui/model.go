package ui

import (
	"reflect"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/state"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the prompt's input side.
type Model struct {
	scene    *state.Scene
	keys     KeyMap
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel returns a model editing the prompt held by scene.
func NewModel(scene *state.Scene) *Model {
	m := &Model{
		scene: scene,
		keys:  DefaultKeyMap(),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// View is empty: the render loop paints the prompt.
func (m *Model) View() tea.View {
	return tea.NewView("")
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyPress,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSize,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) handleWindowSize(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.scene.Do(func(l *state.Locked) {
		l.Columns = size.Width
	})
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	events.App.Quit(reason)
	return tea.Quit
}
