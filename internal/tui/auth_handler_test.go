package tui

import (
	"testing"

	"github.com/akyairhashvil/countdown/internal/auth"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestPasswordUnlocksSettings(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.send(key(tea.KeyCtrlO))
	if env.model.ActiveModal() != ModalPassword {
		t.Fatalf("expected password modal, got %v", env.model.ActiveModal())
	}
	if env.model.gate.State() != auth.GateAwaitingInput {
		t.Fatalf("gate state = %v", env.model.gate.State())
	}
	env.send(keyRunes("2340"), key(tea.KeyEnter))
	if env.model.ActiveModal() != ModalSettings {
		t.Fatalf("expected settings modal, got %v", env.model.ActiveModal())
	}
	if env.model.gate.State() != auth.GateUnlocked {
		t.Fatalf("gate state = %v", env.model.gate.State())
	}
	if env.model.prompt.Input.Value() != "" {
		t.Fatalf("input not cleared: %q", env.model.prompt.Input.Value())
	}
}

func TestPasswordRejections(t *testing.T) {
	tests := []struct {
		name     string
		password string
		input    string
		want     string
	}{
		{"wrong number", "1000", "1234", "Incorrect password"},
		{"not a number", "1000", "abc", "Enter a valid number"},
		{"empty", "1000", "", "Enter a valid number"},
		{"sentinel never unlocks", "-5", "-1", "Incorrect password"},
		{"unusable password", "abc", "0", "Incorrect password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.NewConfig().WithCountdown("A", "2025/3/1").WithPassword(tt.password).Build()
			env := newTestEnv(t, cfg)
			env.send(key(tea.KeyCtrlO))
			if tt.input != "" {
				env.send(keyRunes(tt.input))
			}
			env.send(key(tea.KeyEnter))

			if env.model.ActiveModal() != ModalPassword {
				t.Fatalf("expected prompt to stay open, got %v", env.model.ActiveModal())
			}
			if env.model.prompt.Message != tt.want {
				t.Fatalf("message = %q, want %q", env.model.prompt.Message, tt.want)
			}
			if env.model.prompt.Input.Value() != "" {
				t.Fatalf("input not cleared: %q", env.model.prompt.Input.Value())
			}
			if env.model.gate.State() != auth.GateAwaitingInput {
				t.Fatalf("prompt should start a fresh attempt, gate %v", env.model.gate.State())
			}
		})
	}
}

func TestPasswordRetryAfterFailure(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.send(key(tea.KeyCtrlO), keyRunes("1"), key(tea.KeyEnter))
	env.send(keyRunes("2340"), key(tea.KeyEnter))
	if env.model.ActiveModal() != ModalSettings {
		t.Fatalf("expected settings after retry, got %v", env.model.ActiveModal())
	}
}

func TestPasswordCancelEndsSession(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.send(key(tea.KeyCtrlO), keyRunes("12"), key(tea.KeyEsc))
	if env.model.ActiveModal() != ModalNone {
		t.Fatalf("expected no modal, got %v", env.model.ActiveModal())
	}
	if env.model.gate.Session() != auth.SessionIdle {
		t.Fatalf("session should be idle after cancel")
	}
	env.send(key(tea.KeyCtrlO))
	if env.model.ActiveModal() != ModalPassword {
		t.Fatalf("gate should reopen after cancel, got %v", env.model.ActiveModal())
	}
	if env.model.prompt.Input.Value() != "" {
		t.Fatalf("stale input %q", env.model.prompt.Input.Value())
	}
}

func TestSecondSessionShowsNotice(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(key(tea.KeyCtrlO))
	if env.model.ActiveModal() != ModalSettings {
		t.Fatalf("open editor should stay active, got %v", env.model.ActiveModal())
	}
	if env.model.Message != "Settings are already open. Close them first." {
		t.Fatalf("message = %q", env.model.Message)
	}

	env.send(key(tea.KeyEsc))
	env.send(key(tea.KeyCtrlO))
	if env.model.ActiveModal() != ModalPassword {
		t.Fatalf("gate should reopen after settings close, got %v", env.model.ActiveModal())
	}
}

func TestSecondRequestWhilePrompting(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.send(key(tea.KeyCtrlO), key(tea.KeyCtrlO))
	if env.model.Message == "" {
		t.Fatalf("expected notice for a second request")
	}
	if env.model.ActiveModal() != ModalPassword {
		t.Fatalf("prompt should stay open, got %v", env.model.ActiveModal())
	}
}
