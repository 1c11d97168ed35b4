package main

import (
	"github.com/charmbracelet/lipgloss"

	"pairdiff/diff"
)

// Color constants for consistent theming
var (
	colorBlue   = lipgloss.Color("blue")
	colorYellow = lipgloss.Color("yellow")
	colorWhite  = lipgloss.Color("white")

	colorGray243 = lipgloss.Color("243")
	colorGray244 = lipgloss.Color("244")
	colorGray245 = lipgloss.Color("245")
	colorGray235 = lipgloss.Color("235") // dark background
	colorGray237 = lipgloss.Color("237") // border gray

	colorGreen142   = lipgloss.Color("142") // soft green (added)
	colorRed203     = lipgloss.Color("203") // soft red (removed)
	colorSoftYellow = lipgloss.Color("229") // soft warm yellow (modified)
	colorSoftBlue75 = lipgloss.Color("75")  // soft blue (selection)
)

// Predefined styles for reuse
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	separatorStyle = lipgloss.NewStyle().
			Foreground(colorGray237)

	unsavedStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	addedStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	removedStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	modifiedStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	contextStyle = lipgloss.NewStyle().
			Foreground(colorGray245)

	lineNumStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	cursorMarkStyle = lipgloss.NewStyle().
			Foreground(colorSoftBlue75).
			Bold(true)

	currentChunkLineStyle = lipgloss.NewStyle().
				Background(colorGray235)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorGray237)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	footerBaseStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	activeSideStyle = lipgloss.NewStyle().
			Foreground(colorSoftBlue75).
			Bold(true)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true).
			Width(8)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true).
				MarginTop(1)
)

// lineTypeStyle returns the text style for a diff line type.
func lineTypeStyle(t diff.LineType) lipgloss.Style {
	switch t {
	case diff.LineAdded:
		return addedStyle
	case diff.LineRemoved:
		return removedStyle
	case diff.LineModified:
		return modifiedStyle
	default:
		return contextStyle
	}
}

// lineTypeMarker returns the gutter symbol for a diff line type.
func lineTypeMarker(t diff.LineType) string {
	switch t {
	case diff.LineAdded:
		return "+"
	case diff.LineRemoved:
		return "-"
	case diff.LineModified:
		return "~"
	default:
		return " "
	}
}
