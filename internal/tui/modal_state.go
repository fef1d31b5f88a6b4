package tui

type ModalType int

const (
	ModalNone ModalType = iota
	ModalMenu
	ModalPassword
	ModalSettings
)

func (t ModalType) String() string {
	switch t {
	case ModalMenu:
		return "menu"
	case ModalPassword:
		return "password"
	case ModalSettings:
		return "settings"
	default:
		return "none"
	}
}

// MenuState is the open countdown picker.
type MenuState struct {
	Cursor int
}

// SettingsStage is what the settings editor is waiting for.
type SettingsStage int

const (
	StageBrowse SettingsStage = iota
	StageAddName
	StageAddDate
	StageAddEncouragement
)

// SettingsState is the open settings editor.
type SettingsState struct {
	Cursor      int
	Offset      int
	Stage       SettingsStage
	PendingName string
	Status      string
}
