package ui

import (
	"context"

	"lexicam/internal/backend"
	"lexicam/internal/feedback"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppModel is the root model: three buttons over the word backend, the
// detected-object label and the feedback area.
type AppModel struct {
	Backend Backend
	Logger  *zap.Logger
	Focus   *FocusManager
	Keys    *KeybindRegistry

	// Detected is the last detected object name, "" before any detection.
	// The label is derived from it.
	Detected string

	// Feedback is the rendered result of the last pronunciation check.
	Feedback string

	// FeedbackFailed is true when Feedback holds a backend error message.
	FeedbackFailed bool

	// Analysis is the local comparison for the last successful check.
	Analysis *feedback.Analysis

	// Pending counts requests in flight.
	Pending int

	// Width is the terminal width from the last WindowSizeMsg.
	Width int

	ctx     context.Context
	spinner spinner.Model
	ticking bool // a spinner tick is scheduled
	help    help.Model
	keyMap  *KeyMap
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. Nothing is requested until a button is pressed.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if cmd := a.Keys.Lookup(msg.String()); cmd != nil {
			return a, cmd
		}
		return a, nil
	case PressMsg:
		return a, a.Press(msg.Button)
	case PressFocusedMsg:
		return a, a.Press(a.Focus.Current)
	case FocusMsg:
		if msg.Delta < 0 {
			a.Focus.Prev()
		} else {
			a.Focus.Next()
		}
		return a, nil
	case ToggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case DetectedMsg:
		a.handleDetected(msg)
		return a, nil
	case SpokeMsg:
		a.handleSpoke(msg)
		return a, nil
	case CheckedMsg:
		a.handleChecked(msg)
		return a, nil
	case spinner.TickMsg:
		// Stop ticking once nothing is in flight.
		if a.Pending == 0 {
			a.ticking = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

// Press runs the action behind button b.
func (a *AppModel) Press(b ButtonID) tea.Cmd {
	a.Focus.SetFocus(b)
	switch b {
	case ButtonDetect:
		return a.DetectObject()
	case ButtonSpeak:
		return a.SpeakObject()
	case ButtonCheck:
		return a.CheckPronunciation()
	}
	return nil
}

// DetectObject requests a detection. The label changes only on success.
func (a *AppModel) DetectObject() tea.Cmd {
	a.Logger.Debug("detect requested")
	return a.start(detectCmd(a.ctx, a.Backend))
}

// SpeakObject asks the backend to say the detected name.
// Returns nil, and sends nothing, when no object has been detected.
func (a *AppModel) SpeakObject() tea.Cmd {
	word := a.Detected
	if !feedback.HasName(word) {
		a.Logger.Debug("speak skipped: nothing detected")
		return nil
	}
	a.Logger.Debug("speak requested", zap.String("word", word))
	return a.start(speakCmd(a.ctx, a.Backend, word))
}

// CheckPronunciation asks the backend to score the user saying the detected
// name. Returns nil, and sends nothing, when no object has been detected.
func (a *AppModel) CheckPronunciation() tea.Cmd {
	word := a.Detected
	if !feedback.HasName(word) {
		a.Logger.Debug("check skipped: nothing detected")
		return nil
	}
	a.Logger.Debug("check requested", zap.String("word", word))
	return a.start(checkCmd(a.ctx, a.Backend, word))
}

// Label is the detected-object label as shown.
func (a *AppModel) Label() string {
	return feedback.Label(a.Detected)
}

// start counts a request in flight and kicks the spinner unless a tick is
// already scheduled. A tick survives until it arrives to find nothing
// pending, so a new request right after the last one finished must not start
// a second tick loop.
func (a *AppModel) start(cmd tea.Cmd) tea.Cmd {
	a.Pending++
	if a.ticking {
		return cmd
	}
	a.ticking = true
	return tea.Batch(cmd, a.spinner.Tick)
}

func (a *AppModel) finish() {
	if a.Pending > 0 {
		a.Pending--
	}
}

func (a *AppModel) handleDetected(msg DetectedMsg) {
	a.finish()
	if msg.Err != nil {
		a.Logger.Warn("detect failed", zap.String("op", backend.OpDetect), zap.Error(msg.Err))
		return
	}
	a.Detected = msg.Detection.Object
	a.Logger.Info("object detected", zap.String("object", a.Detected))
}

func (a *AppModel) handleSpoke(msg SpokeMsg) {
	a.finish()
	if msg.Err != nil {
		a.Logger.Warn("speak failed", zap.String("op", backend.OpSpeak), zap.String("word", msg.Word), zap.Error(msg.Err))
		return
	}
	a.Logger.Info("word spoken", zap.String("word", msg.Word))
}

func (a *AppModel) handleChecked(msg CheckedMsg) {
	a.finish()
	if msg.Err != nil {
		a.Logger.Warn("check failed", zap.String("op", backend.OpCheck), zap.String("word", msg.Word), zap.Error(msg.Err))
		return
	}
	a.Feedback = feedback.Render(msg.Check)
	a.FeedbackFailed = msg.Check.Failed()
	a.Analysis = nil
	if an, ok := feedback.Analyze(msg.Word, msg.Check); ok {
		a.Analysis = &an
	}
	a.Logger.Info("pronunciation checked",
		zap.String("word", msg.Word),
		zap.String("spoken", msg.Check.SpokenText),
		zap.Bool("backend_error", msg.Check.Failed()),
	)
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *AppModel) { a.Logger = l }
}

// WithContext sets the context passed to backend requests.
func WithContext(ctx context.Context) Option {
	return func(a *AppModel) { a.ctx = ctx }
}

// NewAppModel creates the root application model over b.
func NewAppModel(b Backend, opts ...Option) *AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint

	a := &AppModel{
		Backend: b,
		Logger:  zap.NewNop(),
		Focus:   NewFocusManager(ButtonDetect, ButtonSpeak, ButtonCheck),
		ctx:     context.Background(),
		spinner: s,
		help:    h,
	}
	a.Keys = defaultKeybinds()
	a.keyMap = NewKeyMap(a.Keys)
	for _, o := range opts {
		o(a)
	}
	return a
}

// defaultKeybinds binds the button shortcuts, focus movement and quit.
func defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	press := func(b ButtonID) tea.Cmd {
		return func() tea.Msg { return PressMsg{Button: b} }
	}
	next := func() tea.Msg { return FocusMsg{Delta: 1} }
	prev := func() tea.Msg { return FocusMsg{Delta: -1} }
	pressFocused := func() tea.Msg { return PressFocusedMsg{} }

	reg.BindWithDesc("d", press(ButtonDetect), "detect")
	reg.BindWithDesc("s", press(ButtonSpeak), "speak")
	reg.BindWithDesc("c", press(ButtonCheck), "check")
	reg.BindWithDesc("tab", next, "next button")
	reg.Bind("right", next)
	reg.Bind("l", next)
	reg.Bind("shift+tab", prev)
	reg.Bind("left", prev)
	reg.Bind("h", prev)
	reg.BindWithDesc("enter", pressFocused, "press")
	reg.Bind("space", pressFocused)
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
