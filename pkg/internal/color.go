package internal

import (
	"github.com/charmbracelet/lipgloss"
)

// Color is a named presentation tag attached to catalog entries.
type Color string

const (
	ColorReset      Color = "reset"
	ColorRed        Color = "red"
	ColorGreen      Color = "green"
	ColorYellow     Color = "yellow"
	ColorBlue       Color = "blue"
	ColorMagenta    Color = "magenta"
	ColorCyan       Color = "cyan"
	ColorLightRed   Color = "lightRed"
	ColorLightGreen Color = "lightGreen"
)

var palette = map[Color]lipgloss.Style{
	ColorReset:      lipgloss.NewStyle(),
	ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorLightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorLightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// Known reports whether c is part of the palette.
func (c Color) Known() bool {
	_, ok := palette[c]
	return ok
}

// Render styles s. Unknown colors render unstyled.
func (c Color) Render(s string) string {
	style, ok := palette[c]
	if !ok {
		return s
	}
	return style.Render(s)
}
