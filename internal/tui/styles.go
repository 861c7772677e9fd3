package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the watch screen
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - readable sensors
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

var (
	// TitleStyle is for the screen title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// SensorNameStyle is for sensor display names
	SensorNameStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// LuxValueStyle is for successfully read lux values
	LuxValueStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// UnreadableStyle is for sensors whose read failed
	UnreadableStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// ErrorStyle is for enumeration-level failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// FooterStyle is for the status line under the sensor rows
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
