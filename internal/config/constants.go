package config

import "time"

// Timer durations.
const (
	TickInterval  = time.Second
	SpeakCooldown = 2 * time.Second
)

// Countdown document.
const (
	// DateLayout accepts both "2025/3/1" and "2025/03/01".
	DateLayout = "2006/1/2"

	// SettingsEntry is the reserved picker option that opens the password gate.
	SettingsEntry = "Settings"

	// InvalidEntry is shown when the selection has no matching countdown.
	InvalidEntry = "invalid entry"

	DefaultPassword = "1000"
)

// Application settings.
const (
	AppName        = "countdown"
	ConfigFileName = "config.json"
	LogFileName    = "countdown.log"
	FileMode       = 0o644
)
