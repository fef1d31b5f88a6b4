package auth

import "errors"

var (
	ErrSessionOpen = errors.New("settings are already open, close them first")
	ErrNotPrompted = errors.New("password prompt is not open")
)

// GateState is the password gate's position in the unlock workflow.
type GateState int

const (
	GateLocked GateState = iota
	GateAwaitingInput
	GateUnlocked
)

func (s GateState) String() string {
	switch s {
	case GateAwaitingInput:
		return "awaiting input"
	case GateUnlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// SessionState reports whether a settings session exists.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionOpen
)

// Gate owns the single settings session. The zero value is locked and idle.
type Gate struct {
	state GateState
}

func (g *Gate) State() GateState { return g.state }

// Session is open from Open until Cancel or Close.
func (g *Gate) Session() SessionState {
	if g.state == GateLocked {
		return SessionIdle
	}
	return SessionOpen
}

// Open starts a session and waits for a password. It fails while another
// session is open.
func (g *Gate) Open() error {
	if g.Session() == SessionOpen {
		return ErrSessionOpen
	}
	g.state = GateAwaitingInput
	return nil
}

// Submit checks input against the configured password. A match unlocks the
// gate; any other outcome locks it again and ends the session.
func (g *Gate) Submit(input, configured string) (Outcome, error) {
	if g.state != GateAwaitingInput {
		return Mismatch, ErrNotPrompted
	}
	outcome := Verify(input, configured)
	if outcome == Matched {
		g.state = GateUnlocked
	} else {
		g.state = GateLocked
	}
	return outcome, nil
}

// Cancel abandons the prompt.
func (g *Gate) Cancel() { g.state = GateLocked }

// Close ends the settings session.
func (g *Gate) Close() { g.state = GateLocked }
