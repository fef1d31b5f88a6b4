package tui

import (
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) openMenu() (MainModel, tea.Cmd) {
	m.modal = ModalMenu
	m.menu = MenuState{}
	for i, name := range m.picker.Options() {
		if name == m.picker.Selected() {
			m.menu.Cursor = i
			break
		}
	}
	return m, nil
}

func (m MainModel) handleMenuKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	options := m.picker.Options()
	switch msg.String() {
	case "esc", "q":
		m.modal = ModalNone
	case "up", "k":
		m.menu.Cursor = util.Clamp(m.menu.Cursor-1, 0, len(options)-1)
	case "down", "j":
		m.menu.Cursor = util.Clamp(m.menu.Cursor+1, 0, len(options)-1)
	case "enter":
		m.modal = ModalNone
		return m.choose(options[m.menu.Cursor])
	}
	return m, nil
}

// choose applies a picker option. The settings entry keeps the current
// countdown on screen and opens the password gate instead.
func (m MainModel) choose(name string) (MainModel, tea.Cmd) {
	if m.picker.Select(name) {
		m.refreshLabel()
		return m.openSettings()
	}
	m.refreshLabel()
	m.speak(m.label)
	return m, nil
}
