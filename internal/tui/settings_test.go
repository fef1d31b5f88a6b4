package tui

import (
	"testing"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSettingsAddCountdownAndSave(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)

	env.send(keyRunes("a"), keyRunes("Final"), key(tea.KeyEnter))
	if env.model.settings.Stage != StageAddDate {
		t.Fatalf("stage = %v", env.model.settings.Stage)
	}
	env.send(keyRunes("2025/3/10"), key(tea.KeyEnter))
	if env.model.settings.Stage != StageBrowse {
		t.Fatalf("stage = %v, status %q", env.model.settings.Stage, env.model.settings.Status)
	}
	if env.model.Selected() != "Final" {
		t.Fatalf("new countdown should be selected, got %q", env.model.Selected())
	}
	if env.model.Label() != "10 days until Final" {
		t.Fatalf("label = %q", env.model.Label())
	}
	if len(env.store.saved) != 0 {
		t.Fatalf("edits must not reach disk before save")
	}

	env.send(key(tea.KeyCtrlS))
	if env.model.Message != "Settings saved." {
		t.Fatalf("message = %q", env.model.Message)
	}
	if env.model.ActiveModal() != ModalNone {
		t.Fatalf("settings should close after save, got %v", env.model.ActiveModal())
	}
	if len(env.store.saved) != 1 {
		t.Fatalf("saves = %d", len(env.store.saved))
	}
	if _, ok := env.store.saved[0].FindCountdown("Final"); !ok {
		t.Fatalf("saved config lacks the new countdown")
	}
}

func TestSettingsRejectsBadDate(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(keyRunes("a"), keyRunes("Final"), key(tea.KeyEnter), keyRunes("2025/13/45"), key(tea.KeyEnter))
	if env.model.settings.Status != "Date must use YYYY/MM/DD." {
		t.Fatalf("status = %q", env.model.settings.Status)
	}
	if env.model.settings.Stage != StageAddDate {
		t.Fatalf("should stay on the date prompt, stage %v", env.model.settings.Stage)
	}
	if len(env.model.Config().Countdowns) != 3 {
		t.Fatalf("bad date must not be added")
	}
}

func TestSettingsRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(keyRunes("a"), keyRunes("   "), key(tea.KeyEnter))
	if env.model.settings.Stage != StageAddName {
		t.Fatalf("stage = %v", env.model.settings.Stage)
	}
	if env.model.settings.Status != "Countdown name and date are required." {
		t.Fatalf("status = %q", env.model.settings.Status)
	}
}

func TestSettingsAddEncouragement(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(keyRunes("e"), keyRunes("加油"), key(tea.KeyEnter))
	encs := env.model.Config().Encouragements
	if encs[len(encs)-1] != "加油" {
		t.Fatalf("encouragements = %v", encs)
	}
}

func TestSettingsDeleteRemovesEveryMatch(t *testing.T) {
	cfg := testutil.NewConfig().
		WithCountdown("A", "2025/3/1").
		WithCountdown("A", "2025/4/1").
		WithCountdown("B", "2025/3/5").
		WithEncouragements("go").
		Build()
	env := newTestEnv(t, cfg)
	env.unlock(t)

	env.send(keyRunes("d"))
	got := env.model.Config().CountdownNames()
	if len(got) != 1 || got[0] != "B" {
		t.Fatalf("countdowns = %v", got)
	}
	if env.model.Selected() != "B" {
		t.Fatalf("selection should fall back to B, got %q", env.model.Selected())
	}
	if env.model.Label() != "5 days until B" {
		t.Fatalf("label = %q", env.model.Label())
	}

	env.send(key(tea.KeyDown), keyRunes("d"))
	if len(env.model.Config().Encouragements) != 0 {
		t.Fatalf("encouragement not removed")
	}
}

func TestSettingsSaveFailureKeepsEditor(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.store.err = errDiskFull
	env.unlock(t)
	env.send(keyRunes("d"), key(tea.KeyCtrlS))
	if env.model.ActiveModal() != ModalSettings {
		t.Fatalf("editor should stay open, got %v", env.model.ActiveModal())
	}
	if env.model.settings.Status != "Save failed: disk full" {
		t.Fatalf("status = %q", env.model.settings.Status)
	}
}

func TestSettingsCloseKeepsUnsavedEdits(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(keyRunes("d"), key(tea.KeyEsc))
	if env.model.ActiveModal() != ModalNone {
		t.Fatalf("expected editor closed, got %v", env.model.ActiveModal())
	}
	if len(env.model.Config().Countdowns) != 2 {
		t.Fatalf("in-memory edit lost")
	}
	if len(env.store.saved) != 0 {
		t.Fatalf("close must not save")
	}
}

func TestSettingsCursorClamped(t *testing.T) {
	env := newTestEnv(t, models.DefaultConfig())
	env.unlock(t)
	env.send(key(tea.KeyUp))
	if env.model.settings.Cursor != 0 {
		t.Fatalf("cursor = %d", env.model.settings.Cursor)
	}
	for i := 0; i < 20; i++ {
		env.send(keyRunes("j"))
	}
	if env.model.settings.Cursor != 5 {
		t.Fatalf("cursor = %d, want last row", env.model.settings.Cursor)
	}
}
