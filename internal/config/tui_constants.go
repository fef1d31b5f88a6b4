package config

// Layout constants.
const (
	// MinLabelWidth is the narrowest the countdown label is truncated to.
	MinLabelWidth = 10

	// PickerWidth is the fixed width of the selected-countdown badge.
	PickerWidth = 16

	// ModalWidth is the width of the password and settings frames.
	ModalWidth = 60

	// MaxVisibleRows limits settings rows shown before scrolling.
	MaxVisibleRows = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	MaxNameLength          = 40
	MaxDateLength          = 10
	MaxEncouragementLength = 120
	MaxPasswordLength      = 20
)
