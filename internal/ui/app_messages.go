package ui

import "lexicam/internal/backend"

// ButtonID names one of the three action buttons.
type ButtonID string

const (
	ButtonDetect ButtonID = "detectBtn"
	ButtonSpeak  ButtonID = "speakBtn"
	ButtonCheck  ButtonID = "checkBtn"
)

// Title is the button caption.
func (b ButtonID) Title() string {
	switch b {
	case ButtonDetect:
		return "Detect Object"
	case ButtonSpeak:
		return "Speak"
	case ButtonCheck:
		return "Check Pronunciation"
	default:
		return string(b)
	}
}

// PressMsg is sent when a button is pressed, by shortcut or by enter on the
// focused button.
type PressMsg struct {
	Button ButtonID
}

// PressFocusedMsg presses whichever button has focus.
type PressFocusedMsg struct{}

// FocusMsg moves button focus by Delta (+1 next, -1 previous).
type FocusMsg struct {
	Delta int
}

// ToggleHelpMsg shows or hides the full help.
type ToggleHelpMsg struct{}

// DetectedMsg carries the result of GET /detect.
type DetectedMsg struct {
	Detection backend.Detection
	Err       error
}

// SpokeMsg carries the result of GET /speak.
type SpokeMsg struct {
	Word string
	Err  error
}

// CheckedMsg carries the result of GET /check_pronunciation.
type CheckedMsg struct {
	Word  string
	Check backend.Check
	Err   error
}
