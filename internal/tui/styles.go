package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Field styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingRight(2)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)
)

// Field is one labelled row of a field box
type Field struct {
	Label string
	Value string
}

// RenderTitle renders a title line
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error message
func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}

// RenderFields renders a title and aligned label/value rows inside a box
func RenderFields(title, subtitle string, fields []Field) string {
	labelWidth := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > labelWidth {
			labelWidth = w
		}
	}

	label := LabelStyle.Width(labelWidth + LabelStyle.GetPaddingRight())
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(f.Label),
			ValueStyle.Render(f.Value),
		))
	}

	header := RenderTitle(title)
	if subtitle != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, SubtitleStyle.Render(subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, BoxStyle.Render(strings.Join(rows, "\n")))
}
