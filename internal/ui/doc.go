// Package ui is the lexicam terminal front-end, built on Bubble Tea.
//
// The screen has three buttons (detect, speak, check), the detected-object
// label and a feedback area. Each button press is one request to the word
// backend, run as an independent tea.Cmd; results come back as messages and
// are applied last-write-wins.
package ui
