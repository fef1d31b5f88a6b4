package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsRow is one line of the settings editor.
type settingsRow struct {
	countdown     *models.Countdown
	encouragement string
}

func (m MainModel) settingsRows() []settingsRow {
	rows := make([]settingsRow, 0, len(m.cfg.Countdowns)+len(m.cfg.Encouragements))
	for i := range m.cfg.Countdowns {
		cd := m.cfg.Countdowns[i]
		rows = append(rows, settingsRow{countdown: &cd})
	}
	for _, e := range m.cfg.Encouragements {
		rows = append(rows, settingsRow{encouragement: e})
	}
	return rows
}

func (m *MainModel) clampSettingsCursor() {
	rows := len(m.settingsRows())
	if rows == 0 {
		m.settings.Cursor, m.settings.Offset = 0, 0
		return
	}
	m.settings.Cursor = util.Clamp(m.settings.Cursor, 0, rows-1)
	if m.settings.Cursor < m.settings.Offset {
		m.settings.Offset = m.settings.Cursor
	}
	if m.settings.Cursor >= m.settings.Offset+config.MaxVisibleRows {
		m.settings.Offset = m.settings.Cursor - config.MaxVisibleRows + 1
	}
}

func (m MainModel) settingsUp() (MainModel, tea.Cmd) {
	m.settings.Cursor--
	m.clampSettingsCursor()
	return m, nil
}

func (m MainModel) settingsDown() (MainModel, tea.Cmd) {
	m.settings.Cursor++
	m.clampSettingsCursor()
	return m, nil
}

func (m MainModel) startAddCountdown() (MainModel, tea.Cmd) {
	m.settings.Stage = StageAddName
	m.settings.Status = ""
	m.inputs.Reset()
	return m, m.inputs.name.Focus()
}

func (m MainModel) startAddEncouragement() (MainModel, tea.Cmd) {
	m.settings.Stage = StageAddEncouragement
	m.settings.Status = ""
	m.inputs.Reset()
	return m, m.inputs.encouragement.Focus()
}

// deleteSelectedRow removes every entry equal to the highlighted one.
func (m MainModel) deleteSelectedRow() (MainModel, tea.Cmd) {
	rows := m.settingsRows()
	if len(rows) == 0 {
		return m, nil
	}
	row := rows[m.settings.Cursor]
	if row.countdown != nil {
		n := m.cfg.DeleteCountdown(row.countdown.Name)
		m.picker.Refresh(m.cfg)
		m.settings.Status = fmt.Sprintf("Removed %d countdown(s) named %q.", n, row.countdown.Name)
	} else {
		n := m.cfg.DeleteEncouragement(row.encouragement)
		m.settings.Status = fmt.Sprintf("Removed %d encouragement(s).", n)
	}
	m.clampSettingsCursor()
	m.refreshLabel()
	return m, nil
}

func (m MainModel) saveSettings() (MainModel, tea.Cmd) {
	if m.store == nil {
		m.settings.Status = "Save failed: no configuration file"
		return m, nil
	}
	if err := m.store.Save(m.cfg); err != nil {
		util.LogError("save settings", err)
		m.settings.Status = fmt.Sprintf("Save failed: %v", err)
		return m, nil
	}
	util.Log.WithField("path", m.store.Path()).Info("settings saved")
	m, _ = m.closeSettings()
	m.Message = "Settings saved."
	return m, nil
}

// closeSettings ends the session. Unsaved edits stay in memory.
func (m MainModel) closeSettings() (MainModel, tea.Cmd) {
	m.gate.Close()
	m.inputs.Reset()
	m.settings = SettingsState{}
	m.modal = ModalNone
	m.refreshLabel()
	return m, nil
}

func (m MainModel) handleSettingsInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputs.Reset()
		m.settings.Stage = StageBrowse
		m.settings.PendingName = ""
		return m, nil
	case tea.KeyEnter:
		return m.confirmSettingsInput()
	}
	cmd := m.updateSettingsInput(msg)
	return m, cmd
}

func (m *MainModel) updateSettingsInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.settings.Stage {
	case StageAddName:
		m.inputs.name, cmd = m.inputs.name.Update(msg)
	case StageAddDate:
		m.inputs.date, cmd = m.inputs.date.Update(msg)
	case StageAddEncouragement:
		m.inputs.encouragement, cmd = m.inputs.encouragement.Update(msg)
	}
	return cmd
}

func (m MainModel) confirmSettingsInput() (MainModel, tea.Cmd) {
	switch m.settings.Stage {
	case StageAddName:
		name := strings.TrimSpace(m.inputs.name.Value())
		if name == "" {
			m.settings.Status = "Countdown name and date are required."
			return m, nil
		}
		m.settings.PendingName = name
		m.settings.Stage = StageAddDate
		m.inputs.name.Blur()
		return m, m.inputs.date.Focus()
	case StageAddDate:
		if err := m.cfg.AddCountdown(m.settings.PendingName, m.inputs.date.Value()); err != nil {
			m.settings.Status = addCountdownMessage(err)
			m.inputs.date.Reset()
			return m, nil
		}
		added := m.cfg.Countdowns[len(m.cfg.Countdowns)-1].Name
		m.picker.Refresh(m.cfg)
		m.picker.Select(added)
		m.refreshLabel()
		m.settings.Status = fmt.Sprintf("Added %q.", added)
	case StageAddEncouragement:
		if err := m.cfg.AddEncouragement(m.inputs.encouragement.Value()); err != nil {
			m.settings.Status = "Encouragement cannot be empty."
			return m, nil
		}
		m.settings.Status = "Encouragement added."
	}
	m.settings.Stage = StageBrowse
	m.settings.PendingName = ""
	m.inputs.Reset()
	return m, nil
}

func addCountdownMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyName), errors.Is(err, models.ErrEmptyDate):
		return "Countdown name and date are required."
	case errors.Is(err, models.ErrBadDate):
		return "Date must use YYYY/MM/DD."
	default:
		return err.Error()
	}
}
