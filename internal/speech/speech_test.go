package speech

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func fakeLookPath(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestDetectCommandPerPlatform(t *testing.T) {
	win := detectCommand("windows", fakeLookPath())
	if win == nil {
		t.Fatalf("expected a windows command")
	}
	cmd := win("it's fine")
	if !strings.Contains(strings.Join(cmd.Args, " "), "Speak('it''s fine')") {
		t.Fatalf("expected quoted PowerShell phrase, got %v", cmd.Args)
	}

	mac := detectCommand("darwin", fakeLookPath())
	if got := mac("hi").Args; len(got) != 2 || got[0] != "say" || got[1] != "hi" {
		t.Fatalf("unexpected darwin args %v", got)
	}

	linux := detectCommand("linux", fakeLookPath("spd-say", "espeak"))
	if got := linux("hi").Path; got != "/usr/bin/espeak" {
		t.Fatalf("expected espeak to win over spd-say, got %s", got)
	}

	if detectCommand("linux", fakeLookPath()) != nil {
		t.Fatalf("expected no command without an engine")
	}
}

func TestSystemSpeakerWithoutEngine(t *testing.T) {
	s := NewSpeakerWithCommand(nil)
	if err := s.Speak("hello"); !errors.Is(err, ErrNoEngine) {
		t.Fatalf("expected ErrNoEngine, got %v", err)
	}
}

func TestSystemSpeakerStartFailure(t *testing.T) {
	s := NewSpeakerWithCommand(func(text string) *exec.Cmd {
		return exec.Command("/nonexistent/speech-engine", text)
	})
	if err := s.Speak("hello"); err == nil {
		t.Fatalf("expected start error")
	}
}

func TestSystemSpeakerSkipsBlankText(t *testing.T) {
	called := false
	s := NewSpeakerWithCommand(func(text string) *exec.Cmd {
		called = true
		return exec.Command("/nonexistent/speech-engine", text)
	})
	if err := s.Speak("   "); err != nil {
		t.Fatalf("Speak blank failed: %v", err)
	}
	if called {
		t.Fatalf("blank text should not start a process")
	}
}
