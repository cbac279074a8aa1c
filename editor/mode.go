package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is flagged for mode names other than inspect, edit and move.
var ErrUnknownMode = errors.New("unknown editor mode")

// Mode is the interaction mode of a session.
type Mode string

// Editor modes
const (
	Inspect Mode = "inspect" // clicks select elements
	Edit    Mode = "edit"    // surface is content-editable
	Move    Mode = "move"    // elements may be dragged
)

// ParseMode checks a mode given as string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Inspect, Edit, Move:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeFromControl maps the id of a mode radio control (`mode-inspect`,
// `mode-edit`, `mode-move`) to a mode.
func ModeFromControl(id string) (Mode, bool) {
	if !strings.HasPrefix(id, "mode-") {
		return "", false
	}
	m, err := ParseMode(strings.TrimPrefix(id, "mode-"))
	return m, err == nil
}

// Event is a notification raised by a session.
type Event uint8

// Events
const (
	DocumentChanged  Event = iota // the live surface has changed and is reconciled
	ModeChanged                   // the mode has changed
	SelectionChanged              // an element has been selected or deselected
	ThemeChanged                  // the theme has changed and the page re-rendered
)

func (e Event) String() string {
	switch e {
	case DocumentChanged:
		return "document-changed"
	case ModeChanged:
		return "mode-changed"
	case SelectionChanged:
		return "selection-changed"
	case ThemeChanged:
		return "theme-changed"
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}

// Listener is called for notifications of a session.
type Listener func(s *Session, e Event)
