package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
)

// PasswordPrompt is the masked input shown while the gate awaits a password.
type PasswordPrompt struct {
	Input   textinput.Model
	Message string
}

func NewPasswordPrompt() PasswordPrompt {
	input := textinput.New()
	input.Placeholder = "Password"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = config.MaxPasswordLength
	input.Width = 20
	return PasswordPrompt{Input: input}
}

// InputState stores the settings editor text inputs.
type InputState struct {
	name          textinput.Model
	date          textinput.Model
	encouragement textinput.Model
}

func newInputState() InputState {
	name := textinput.New()
	name.Placeholder = "Countdown name"
	name.CharLimit = config.MaxNameLength
	name.Width = 30

	date := textinput.New()
	date.Placeholder = "YYYY/MM/DD"
	date.CharLimit = config.MaxDateLength
	date.Width = 12

	enc := textinput.New()
	enc.Placeholder = "Encouragement"
	enc.CharLimit = config.MaxEncouragementLength
	enc.Width = 40

	return InputState{name: name, date: date, encouragement: enc}
}

func (s *InputState) Reset() {
	s.name.Reset()
	s.name.Blur()
	s.date.Reset()
	s.date.Blur()
	s.encouragement.Reset()
	s.encouragement.Blur()
}
