// Package ui renders a Board to the terminal: a plain ASCII grid by
// default, colorized with lipgloss when the terminal supports it
// (detected via termenv), and an optional Bubble Tea front end (Model)
// over the same position/host loop the plain CLI drives.
package ui
