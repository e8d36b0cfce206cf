package ui

import (
	"fmt"
	"strings"

	"lexicam/internal/feedback"

	"github.com/charmbracelet/lipgloss"
)

// render draws the whole screen.
func (a *AppModel) render() string {
	title := Styles.Title.Render("lexicam")
	if a.Pending > 0 {
		title += " " + a.spinner.View()
	}

	sections := []string{
		title,
		a.renderButtons(),
		Styles.Label.Render(a.Label()),
	}
	if feedback.HasName(a.Detected) {
		sections = append(sections, Styles.Spelling.Render(feedback.Spell(a.Detected)))
	}
	sections = append(sections, a.renderFeedback())
	if an := a.currentAnalysis(); an != nil {
		sections = append(sections, renderAnalysis(an))
	}
	sections = append(sections, a.help.View(a.keyMap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *AppModel) renderButtons() string {
	buttons := make([]string, 0, len(a.Focus.Order))
	for _, id := range a.Focus.Order {
		style := Styles.Button
		switch {
		case id != ButtonDetect && !feedback.HasName(a.Detected):
			style = Styles.ButtonDisabled
		case id == a.Focus.Current:
			style = Styles.ButtonFocused
		}
		buttons = append(buttons, style.Render(id.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (a *AppModel) renderFeedback() string {
	box := Styles.Box
	if a.Width > 4 {
		box = box.Width(a.Width - 2)
	}
	switch {
	case a.Feedback == "":
		return box.Render(Styles.Empty.Render("No feedback yet."))
	case a.FeedbackFailed:
		return box.Render(Styles.Warning.Render(a.Feedback))
	default:
		return box.Render(a.Feedback)
	}
}

// currentAnalysis returns the analysis only while it still describes the
// detected word.
func (a *AppModel) currentAnalysis() *feedback.Analysis {
	if a.Analysis == nil || a.Analysis.Word != a.Detected {
		return nil
	}
	return a.Analysis
}

func renderAnalysis(an *feedback.Analysis) string {
	letters := make([]string, 0, len(an.Letters))
	for _, l := range an.Letters {
		if l.Correct {
			letters = append(letters, Styles.Correct.Render(string(l.Letter)))
		} else {
			letters = append(letters, Styles.Incorrect.Render(string(l.Letter)))
		}
	}

	sound := "sounds different"
	if an.Sound.Match {
		sound = "sounds right"
	}
	summary := fmt.Sprintf("Accuracy: %.0f%%  Similarity: %.2f (%s)", an.Accuracy, an.Sound.Score, sound)

	return strings.Join(letters, " ") + "\n" + Styles.Hint.Render(summary)
}
