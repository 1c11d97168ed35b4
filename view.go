package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pairdiff/diff"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	leftPath, rightPath := m.session.Paths()

	var parts []string
	parts = append(parts, headerStyle.Render("pairdiff"))
	parts = append(parts, m.renderPathLabel(leftPath, SideLeft))
	parts = append(parts, subtleStyle.Render("⇔"))
	parts = append(parts, m.renderPathLabel(rightPath, SideRight))

	if added, removed, modified := m.changeStats(); added+removed+modified > 0 {
		parts = append(parts, subtleStyle.Render(fmt.Sprintf("(+%d/-%d/~%d)", added, removed, modified)))
	}
	parts = append(parts, subtleStyle.Render("Press ? for help"))

	header := strings.Join(parts, " ")
	separator := separatorStyle.Render(strings.Repeat("─", max(0, m.width)))
	return lipgloss.JoinVertical(lipgloss.Left, header, separator)
}

func (m Model) renderPathLabel(path string, side Side) string {
	label := path
	if m.session.store.HasPending(path) {
		label += " *"
	}
	if side == m.activeSide {
		return activeSideStyle.Render(label)
	}
	if m.session.store.HasPending(path) {
		return unsavedStyle.Render(label)
	}
	return subtleStyle.Render(label)
}

func (m Model) changeStats() (added, removed, modified int) {
	for _, chunk := range m.chunks {
		switch chunk.Type {
		case diff.LineAdded:
			added += chunk.Lines
		case diff.LineRemoved:
			removed += chunk.Lines
		case diff.LineModified:
			modified += chunk.Lines
		}
	}
	return added, removed, modified
}

func (m Model) renderBody() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	if len(m.rows) == 0 {
		return subtleStyle.Render("both files are empty")
	}

	leftPath, rightPath := m.session.Paths()
	pane := paneWidth(m.width)

	start, end := visibleRange(m.scroll, m.bodyHeight(), len(m.rows))
	current, hasCurrent := m.currentChunk()

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := m.rows[i]

		marker := " "
		if i == m.cursorRow {
			marker = cursorMarkStyle.Render("▶")
		}

		left := m.renderCell(row, SideLeft, leftPath, pane)
		right := m.renderCell(row, SideRight, rightPath, pane)
		divider := dividerStyle.Render(" │ ")

		line := marker + left + divider + right
		if hasCurrent && i >= current.Start && i <= current.End {
			line = currentChunkLineStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderCell renders one side of a row: change marker, line number, text.
func (m Model) renderCell(row diff.Line, side Side, path string, width int) string {
	number, present := sideNumber(row, side)

	numText := strings.Repeat(" ", lineNumWidth)
	if present {
		numText = fmt.Sprintf("%*d", lineNumWidth, number)
	}

	marker := " "
	text := ""
	style := contextStyle
	if present {
		switch {
		case row.Type == diff.LineSame:
			// context line, default style
		default:
			marker = lineTypeMarker(row.Type)
			style = lineTypeStyle(row.Type)
		}
		if side == SideLeft {
			text = row.LeftText
		} else {
			text = row.RightText
		}
	}

	text = truncate(text, width)
	rendered := style.Render(text)
	if row.Type == diff.LineSame && present {
		rendered = m.highlighter.Highlight(text, path)
	}

	padding := strings.Repeat(" ", max(0, width-len([]rune(text))))
	return style.Render(marker) + " " + lineNumStyle.Render(numText) + " " + rendered + padding
}

func (m Model) renderFooter() string {
	keys := []string{
		footerKeyStyle.Render("n/p") + footerBaseStyle.Render(" change"),
		footerKeyStyle.Render("g/G") + footerBaseStyle.Render(" first/last"),
		footerKeyStyle.Render("h/l") + footerBaseStyle.Render(" copy"),
		footerKeyStyle.Render("x") + footerBaseStyle.Render(" delete"),
		footerKeyStyle.Render("u") + footerBaseStyle.Render(" undo"),
		footerKeyStyle.Render("s") + footerBaseStyle.Render(" save"),
		footerKeyStyle.Render("q") + footerBaseStyle.Render(" quit"),
	}
	footer := strings.Join(keys, footerBaseStyle.Render(" · "))

	position := ""
	if nav := m.session.Navigator(); nav != nil && len(m.chunks) > 0 {
		if nav.Current() >= 0 {
			position = fmt.Sprintf(" change %d/%d", nav.Current()+1, len(m.chunks))
		} else {
			position = fmt.Sprintf(" %d changes", len(m.chunks))
		}
		footer += subtleStyle.Render(" ·" + position)
	}

	if m.status != "" {
		footer += statusStyle.Render("  " + m.status)
	}
	return footer
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
