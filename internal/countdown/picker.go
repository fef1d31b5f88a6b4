package countdown

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
)

// Picker tracks the selected countdown. Its options end with the reserved
// settings entry, which is never kept as the selection.
type Picker struct {
	options  []string
	selected string
}

func NewPicker(cfg models.Config) Picker {
	p := Picker{options: optionsFor(cfg)}
	if len(cfg.Countdowns) > 0 {
		p.selected = cfg.Countdowns[cfg.StartIndex()].Name
	}
	return p
}

func optionsFor(cfg models.Config) []string {
	return append(cfg.CountdownNames(), config.SettingsEntry)
}

func (p Picker) Options() []string { return append([]string(nil), p.options...) }

func (p Picker) Selected() string { return p.selected }

// Select makes name the active countdown. Choosing the settings entry leaves
// the previous selection active and reports true so the caller can open the
// password gate.
func (p *Picker) Select(name string) (openSettings bool) {
	if name == config.SettingsEntry {
		return true
	}
	p.selected = name
	return false
}

// Refresh rebuilds the options after cfg changed. The selection survives if
// a countdown still carries its name.
func (p *Picker) Refresh(cfg models.Config) {
	p.options = optionsFor(cfg)
	if _, ok := cfg.FindCountdown(p.selected); ok {
		return
	}
	p.selected = ""
	if len(cfg.Countdowns) > 0 {
		p.selected = cfg.Countdowns[0].Name
	}
}

// Label is SelectedLabel for the current selection.
func (p Picker) Label(cfg models.Config, now time.Time) string {
	return SelectedLabel(cfg, p.selected, now)
}
