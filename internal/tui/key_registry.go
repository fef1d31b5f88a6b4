package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a binding. handled=false lets lower-priority bindings try.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modals      []ModalType
	Priority    int
}

func (b KeyBinding) AppliesTo(modal ModalType) bool {
	if len(b.Modals) == 0 {
		return modal == ModalNone
	}
	for _, v := range b.Modals {
		if v == modal {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.modal) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(modal ModalType) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(modal) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(modal ModalType) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(modal) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	simple := func(fn func(MainModel) (MainModel, tea.Cmd)) KeyHandler {
		return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			next, cmd := fn(m)
			return next, cmd, true
		}
	}

	r.Register(KeyBinding{Key: "q", Handler: simple(quit), Description: "quit"})
	r.Register(KeyBinding{Key: "m", Handler: simple(MainModel.openMenu), Description: "pick"})
	r.Register(KeyBinding{Key: "tab", Handler: simple(MainModel.openMenu)})
	r.Register(KeyBinding{Key: "space", Handler: simple(MainModel.encourage), Description: "cheer"})
	r.Register(KeyBinding{Key: " ", Handler: simple(MainModel.encourage)})
	r.Register(KeyBinding{Key: "enter", Handler: simple(MainModel.encourage)})
	r.Register(KeyBinding{Key: "p", Handler: simple(MainModel.exportReport), Description: "pdf"})
	r.Register(KeyBinding{Key: "ctrl+o", Handler: simple(MainModel.openSettings), Description: "settings"})

	settings := []ModalType{ModalSettings}
	r.Register(KeyBinding{Key: "up", Handler: simple(MainModel.settingsUp), Modals: settings})
	r.Register(KeyBinding{Key: "k", Handler: simple(MainModel.settingsUp), Modals: settings})
	r.Register(KeyBinding{Key: "down", Handler: simple(MainModel.settingsDown), Modals: settings})
	r.Register(KeyBinding{Key: "j", Handler: simple(MainModel.settingsDown), Modals: settings})
	r.Register(KeyBinding{Key: "a", Handler: simple(MainModel.startAddCountdown), Description: "add countdown", Modals: settings})
	r.Register(KeyBinding{Key: "e", Handler: simple(MainModel.startAddEncouragement), Description: "add cheer", Modals: settings})
	r.Register(KeyBinding{Key: "d", Handler: simple(MainModel.deleteSelectedRow), Description: "delete", Modals: settings})
	r.Register(KeyBinding{Key: "ctrl+s", Handler: simple(MainModel.saveSettings), Description: "save", Modals: settings})
	r.Register(KeyBinding{Key: "esc", Handler: simple(MainModel.closeSettings), Description: "close", Modals: settings})
	return r
}

func quit(m MainModel) (MainModel, tea.Cmd) {
	return m, tea.Quit
}
