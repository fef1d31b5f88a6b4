package tui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/akyairhashvil/countdown/internal/auth"
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/speech"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options wires the widget's collaborators.
type Options struct {
	Store     ConfigStore
	Config    models.Config
	Fallback  error // startup diagnostic, shown once
	Speaker   speech.Speaker
	Theme     string
	ReportDir string
	// ReportFont is a TrueType font for the PDF sheet; empty searches the system.
	ReportFont string
	Now        func() time.Time
	Rand       *rand.Rand
}

// MainModel is the root bubbletea model. It owns the configuration, so every
// edit and save flows through it.
type MainModel struct {
	store      ConfigStore
	cfg        models.Config
	picker     countdown.Picker
	gate       auth.Gate
	speaker    speech.Speaker
	encourager *speech.Encourager
	keys       *HandlerRegistry
	theme      Theme
	now        func() time.Time
	reportDir  string
	reportFont string

	modal    ModalType
	menu     MenuState
	prompt   PasswordPrompt
	settings SettingsState
	inputs   InputState

	label         string
	Message       string
	width, height int
}

func NewMainModel(opts Options) MainModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Speaker == nil {
		opts.Speaker = speech.NewSpeakerWithCommand(nil)
	}
	m := MainModel{
		store:      opts.Store,
		cfg:        opts.Config.Clone(),
		picker:     countdown.NewPicker(opts.Config),
		speaker:    opts.Speaker,
		encourager: speech.NewEncourager(opts.Speaker, speech.NewThrottle(config.SpeakCooldown), opts.Rand),
		keys:       newKeyRegistry(),
		theme:      ThemeFor(opts.Theme),
		now:        opts.Now,
		reportDir:  opts.ReportDir,
		reportFont: opts.ReportFont,
		prompt:     NewPasswordPrompt(),
		inputs:     newInputState(),
	}
	if opts.Fallback != nil {
		m.Message = fmt.Sprintf("Config error: %v. Using defaults.", opts.Fallback)
	}
	m.refreshLabel()
	return m
}

// Config returns a copy of the in-memory configuration.
func (m MainModel) Config() models.Config { return m.cfg.Clone() }

func (m MainModel) Selected() string { return m.picker.Selected() }

func (m MainModel) Label() string { return m.label }

func (m MainModel) ActiveModal() ModalType { return m.modal }

func (m *MainModel) refreshLabel() {
	m.label = m.picker.Label(m.cfg, m.now())
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		// Transient messages last until the next key press.
		m.Message = ""
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// ctrl+o is global so a second settings request reaches the gate.
		if msg.String() == "ctrl+o" && m.modal != ModalNone {
			return m.openSettings()
		}
		return m.handleKey(msg)
	}
	return m.forwardToInput(msg)
}

func (m MainModel) handleTick(_ TickMsg) (MainModel, tea.Cmd) {
	m.refreshLabel()
	return m, tickCmd()
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (MainModel, tea.Cmd) {
	if m.modal != ModalNone {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.encourage()
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch m.modal {
	case ModalMenu:
		return m.handleMenuKey(msg)
	case ModalPassword:
		return m.handlePasswordKey(msg)
	case ModalSettings:
		if m.settings.Stage != StageBrowse {
			return m.handleSettingsInput(msg)
		}
	}
	next, cmd, _ := m.keys.Handle(m, msg.String())
	return next, cmd
}

// forwardToInput passes non-key messages such as cursor blinks to the
// focused text input.
func (m MainModel) forwardToInput(msg tea.Msg) (MainModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.modal == ModalPassword:
		m.prompt.Input, cmd = m.prompt.Input.Update(msg)
	case m.modal == ModalSettings && m.settings.Stage != StageBrowse:
		cmd = m.updateSettingsInput(msg)
	}
	return m, cmd
}

func (m MainModel) encourage() (MainModel, tea.Cmd) {
	if m.picker.Selected() == config.SettingsEntry {
		return m, nil
	}
	if phrase, ok := m.encourager.Trigger(m.cfg, m.now()); ok {
		util.Log.WithField("phrase", phrase).Debug("encouragement")
	}
	return m, nil
}

func (m MainModel) speak(text string) {
	if err := m.speaker.Speak(text); err != nil && err != speech.ErrNoEngine {
		util.LogError("speak label", err)
	}
}
