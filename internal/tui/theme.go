package tui

import "github.com/charmbracelet/lipgloss"

// Theme/palette helpers.
//
// The board must remain readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor pair.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorAccent     = ac("25", "39")
	colorError      = ac("124", "203")
	colorSuccess    = ac("28", "78")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleFieldError = lipgloss.NewStyle().
			Foreground(colorError)

	styleFieldLabel = lipgloss.NewStyle().
			Bold(true)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)
