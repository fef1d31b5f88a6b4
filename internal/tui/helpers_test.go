package tui

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/speech"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

type fakeStore struct {
	saved []models.Config
	err   error
}

func (s *fakeStore) Save(cfg models.Config) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, cfg.Clone())
	return nil
}

func (s *fakeStore) Path() string { return "/tmp/countdown/config.json" }

var errDiskFull = errors.New("disk full")

// testNow is two days before the default "Exam 2".
var testNow = time.Date(2025, 2, 27, 10, 0, 0, 0, time.Local)

type testEnv struct {
	model   MainModel
	store   *fakeStore
	speaker *speech.MockSpeaker
	clock   *time.Time
}

func newTestEnv(t *testing.T, cfg models.Config) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		store:   &fakeStore{},
		speaker: speech.NewMockSpeaker(ctrl),
	}
	now := testNow
	env.clock = &now
	env.model = NewMainModel(Options{
		Store:     env.store,
		Config:    cfg,
		Speaker:   env.speaker,
		ReportDir: t.TempDir(),
		Now:       func() time.Time { return *env.clock },
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	return env
}

func (e *testEnv) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		next, _ := e.model.Update(msg)
		e.model = next.(MainModel)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// unlock opens settings with ctrl+o and submits the right answer for "1000".
func (e *testEnv) unlock(t *testing.T) {
	t.Helper()
	e.send(key(tea.KeyCtrlO), keyRunes("2340"), key(tea.KeyEnter))
	if e.model.ActiveModal() != ModalSettings {
		t.Fatalf("expected settings modal, got %v (prompt %q)", e.model.ActiveModal(), e.model.prompt.Message)
	}
}
