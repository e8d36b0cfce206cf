package ui

import (
	"context"

	"lexicam/internal/backend"

	tea "github.com/charmbracelet/bubbletea"
)

// Backend is the subset of the backend client the controller uses.
type Backend interface {
	Detect(ctx context.Context) (backend.Detection, error)
	Speak(ctx context.Context, word string) error
	CheckPronunciation(ctx context.Context, word string) (backend.Check, error)
}

// detectCmd returns a command that asks the backend to detect an object.
func detectCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		det, err := b.Detect(ctx)
		return DetectedMsg{Detection: det, Err: err}
	}
}

// speakCmd returns a command that asks the backend to say word.
func speakCmd(ctx context.Context, b Backend, word string) tea.Cmd {
	return func() tea.Msg {
		return SpokeMsg{Word: word, Err: b.Speak(ctx, word)}
	}
}

// checkCmd returns a command that asks the backend to score word.
func checkCmd(ctx context.Context, b Backend, word string) tea.Cmd {
	return func() tea.Msg {
		check, err := b.CheckPronunciation(ctx, word)
		return CheckedMsg{Word: word, Check: check, Err: err}
	}
}
