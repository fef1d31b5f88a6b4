package tui

import "github.com/akyairhashvil/countdown/internal/models"

// ConfigStore is the persistence the widget needs for the save action.
type ConfigStore interface {
	Save(cfg models.Config) error
	Path() string
}
