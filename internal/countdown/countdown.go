// Package countdown turns the configuration into the text the widget shows.
package countdown

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
)

// DaysRemaining returns the whole days from now until midnight of target's
// date, never less than zero. Both times are compared as wall-clock values so
// DST changes do not shift the result.
func DaysRemaining(target, now time.Time) int {
	y, mo, d := target.Date()
	midnight := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	wall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	days := int(math.Floor(midnight.Sub(wall).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// SelectedLabel renders the countdown text for the selected name. The settings
// entry renders as empty; unknown names render as config.InvalidEntry.
func SelectedLabel(cfg models.Config, selected string, now time.Time) string {
	if selected == config.SettingsEntry {
		return ""
	}
	cd, ok := cfg.FindCountdown(selected)
	if !ok {
		return config.InvalidEntry
	}
	target, err := cd.Target()
	if err != nil {
		return config.InvalidEntry
	}
	return FormatLabel(cd.Name, DaysRemaining(target, now))
}

func FormatLabel(name string, days int) string {
	if days == 1 {
		return fmt.Sprintf("1 day until %s", name)
	}
	return fmt.Sprintf("%d days until %s", days, name)
}
