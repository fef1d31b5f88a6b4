package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) exportReport() (MainModel, tea.Cmd) {
	now := m.now()
	if err := os.MkdirAll(m.reportDir, 0o755); err != nil {
		util.LogError("create report dir", err)
		m.Message = fmt.Sprintf("PDF failed: %v", err)
		return m, nil
	}
	path := filepath.Join(m.reportDir, fmt.Sprintf("countdown_%s.pdf", now.Format("2006-01-02")))
	if err := GenerateCountdownReport(m.cfg, now, path, m.reportFont); err != nil {
		util.LogError("generate report", err)
		m.Message = fmt.Sprintf("PDF failed: %v", err)
		return m, nil
	}
	m.Message = "PDF written: " + path
	return m, nil
}
