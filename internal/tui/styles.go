package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#2F71F2", Dark: "#4A90FF"}
	colorFound   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#FFA500", Dark: "#FFA500"}
	colorMissing = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#FF4672"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
)

// Bucket status styles, shared with the CLI's human output.
var (
	StyleFound    = lipgloss.NewStyle().Foreground(colorFound)
	StyleWarning  = lipgloss.NewStyle().Foreground(colorWarning)
	StyleMissing  = lipgloss.NewStyle().Foreground(colorMissing).Bold(true)
	StyleOptional = lipgloss.NewStyle().Foreground(colorMuted)
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginBottom(1)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleDetail = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(6)
)
