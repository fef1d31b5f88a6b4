package tui

import (
	"github.com/akyairhashvil/countdown/internal/auth"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// openSettings starts a gate session. Only one session may exist, so a
// request while one is open becomes a notice.
func (m MainModel) openSettings() (MainModel, tea.Cmd) {
	if err := m.gate.Open(); err != nil {
		m.Message = "Settings are already open. Close them first."
		return m, nil
	}
	m.modal = ModalPassword
	m.prompt.Message = ""
	m.prompt.Input.Reset()
	return m, m.prompt.Input.Focus()
}

func (m MainModel) handlePasswordKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyEsc:
		m.gate.Cancel()
		m.prompt.Input.Reset()
		m.prompt.Input.Blur()
		m.modal = ModalNone
		return m, nil
	case tea.KeyEnter:
		return m.submitPassword()
	}
	m.prompt.Input, cmd = m.prompt.Input.Update(msg)
	return m, cmd
}

func (m MainModel) submitPassword() (MainModel, tea.Cmd) {
	entered := m.prompt.Input.Value()
	// The field is cleared whatever the outcome.
	m.prompt.Input.Reset()

	outcome, err := m.gate.Submit(entered, m.cfg.Password)
	if err != nil {
		util.LogError("password gate", err)
		m.modal = ModalNone
		return m, nil
	}
	switch outcome {
	case auth.Matched:
		m.prompt.Message = ""
		m.prompt.Input.Blur()
		m.modal = ModalSettings
		m.settings = SettingsState{}
		return m, nil
	case auth.PasswordUnusable:
		util.Log.Warn("configured password has no divisor sum; settings cannot be unlocked")
	}
	// A failed attempt relocks the gate; the prompt stays up as a fresh attempt.
	if err := m.gate.Open(); err != nil {
		util.LogError("reopen password gate", err)
		m.modal = ModalNone
		return m, nil
	}
	m.prompt.Message = outcome.Message()
	return m, nil
}
