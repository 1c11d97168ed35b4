package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut with its description
type KeyBinding struct {
	Key     string
	Action  string
	Section string
}

// All key bindings for the application
var keyBindings = []KeyBinding{
	{"n/p", "Next/previous change", "Navigation"},
	{"g/G", "First/last change", "Navigation"},
	{"j/k", "Move cursor down/up", "Navigation"},
	{"J/K", "Page down/up", "Navigation"},

	{"tab", "Switch active side", "Editing"},
	{"h", "Copy current line right → left", "Editing"},
	{"l", "Copy current line left → right", "Editing"},
	{"c", "Copy current chunk to the other side", "Editing"},
	{"x", "Delete current line on active side", "Editing"},
	{"u", "Undo last edit", "Editing"},
	{"r", "Redo", "Editing"},

	{"s", "Save all unsaved changes", "Files"},
	{"d", "Discard all unsaved changes", "Files"},
	{"e", "Export unified diff to pairdiff.patch", "Files"},

	{"?", "Show/hide this help screen", "System"},
	{"q/ctrl+c", "Quit", "System"},
}

// renderHelp renders the help modal
func (m Model) renderHelp() string {
	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2)

	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	currentSection := ""
	for _, kb := range keyBindings {
		if kb.Section != currentSection {
			currentSection = kb.Section
			content.WriteString("\n")
			content.WriteString(helpSectionStyle.Render(currentSection))
			content.WriteString("\n")
		}
		key := helpKeyStyle.Render(fmt.Sprintf(" %-8s", kb.Key))
		desc := helpDescStyle.Render(kb.Action)
		content.WriteString(fmt.Sprintf("%s %s\n", key, desc))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press any key to close"))

	modal := modalStyle.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// GetKeyBindings returns all key bindings (for documentation/testing)
func GetKeyBindings() []KeyBinding {
	return keyBindings
}
