// Package feedback turns backend results into the text lexicam shows: the
// detected-object label, the pronunciation feedback line, and a local
// letter-by-letter and phonetic comparison of what was heard.
package feedback

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"lexicam/internal/backend"
)

// Placeholder is shown in the label before anything is detected.
const Placeholder = "—"

const (
	labelPrefix   = "Detected Object: "
	errorPrefix   = "⚠️ "
	saidPrefix    = "🗣 You said: "
	feedbackInfix = "\nFeedback: "
)

// HasName reports whether name is a real detection rather than empty or the
// placeholder. Speak and check are only allowed when it returns true.
func HasName(name string) bool {
	return name != "" && name != Placeholder
}

// Label renders the detected-object label for name.
func Label(name string) string {
	if !HasName(name) {
		return labelPrefix + Placeholder
	}
	return labelPrefix + name
}

// Render formats a pronunciation check. An error message wins over
// everything else; otherwise the spoken text and the serialized feedback
// are shown.
func Render(c backend.Check) string {
	if c.Failed() {
		return errorPrefix + c.Error
	}
	return saidPrefix + c.SpokenText + feedbackInfix + serialize(c.Feedback)
}

// serialize renders raw JSON compactly. Absent feedback renders as null.
func serialize(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

// Spell breaks word into upper-case letters separated by dots, skipping
// whitespace: "Bottle" becomes "B · O · T · T · L · E".
func Spell(word string) string {
	var letters []string
	for _, r := range strings.ToUpper(word) {
		if unicode.IsSpace(r) {
			continue
		}
		letters = append(letters, string(r))
	}
	return strings.Join(letters, " · ")
}
