// Package speech hands text to the operating system's speech synthesizer.
package speech

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/akyairhashvil/countdown/internal/util"
)

var ErrNoEngine = errors.New("no speech engine found")

// Speaker speaks text without blocking the caller.
//
//go:generate mockgen -source=speech.go -destination=mock_speech.go -package=speech
type Speaker interface {
	Speak(text string) error
}

// Command builds the process that speaks one phrase.
type Command func(text string) *exec.Cmd

// SystemSpeaker runs an OS speech command per phrase.
type SystemSpeaker struct {
	command Command
}

// NewSystemSpeaker picks the platform's engine. A nil command means none was
// found and every Speak returns ErrNoEngine.
func NewSystemSpeaker() *SystemSpeaker {
	return &SystemSpeaker{command: detectCommand(runtime.GOOS, exec.LookPath)}
}

func NewSpeakerWithCommand(cmd Command) *SystemSpeaker {
	return &SystemSpeaker{command: cmd}
}

// Speak starts the engine and returns once the process is running. The
// process is reaped in the background.
func (s *SystemSpeaker) Speak(text string) error {
	if s.command == nil {
		return ErrNoEngine
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cmd := s.command(text)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start speech: %w", err)
	}
	go func() {
		util.LogError("speech process", cmd.Wait())
	}()
	return nil
}

func detectCommand(goos string, lookPath func(string) (string, error)) Command {
	switch goos {
	case "windows":
		return func(text string) *exec.Cmd {
			script := "Add-Type -AssemblyName System.Speech; " +
				"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('" + powershellQuote(text) + "')"
			return exec.Command("powershell.exe", "-NoProfile", "-Command", script)
		}
	case "darwin":
		return func(text string) *exec.Cmd { return exec.Command("say", text) }
	}
	for _, name := range []string{"espeak-ng", "espeak", "spd-say"} {
		if path, err := lookPath(name); err == nil {
			return func(text string) *exec.Cmd { return exec.Command(path, text) }
		}
	}
	return nil
}

// powershellQuote escapes text for a single-quoted PowerShell string.
func powershellQuote(text string) string {
	return strings.ReplaceAll(text, "'", "''")
}
