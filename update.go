package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pairdiff/diff"
)

const statusDisplayTime = 3 * time.Second

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case fileChangedMsg:
		return m.handleFileChanged(msg)

	case statusMsg:
		m.status = msg.text
		return m, clearStatusAfter(statusDisplayTime)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
			m.clampScroll()
		}
		return m, nil

	case "down", "j":
		if m.cursorRow < len(m.rows)-1 {
			m.cursorRow++
			m.clampScroll()
		}
		return m, nil

	case "pgup", "K":
		m.cursorRow = clamp(m.cursorRow-m.bodyHeight(), 0, max(0, len(m.rows)-1))
		m.clampScroll()
		return m, nil

	case "pgdown", "J":
		m.cursorRow = clamp(m.cursorRow+m.bodyHeight(), 0, max(0, len(m.rows)-1))
		m.clampScroll()
		return m, nil

	case "tab":
		m.activeSide = otherSide(m.activeSide)
		return m, setStatus(fmt.Sprintf("editing %s side", m.activeSide))

	case "n":
		return m.navigate(m.session.Navigator().Next, "already at last change")

	case "p":
		return m.navigate(m.session.Navigator().Prev, "already at first change")

	case "g":
		return m.navigate(m.session.Navigator().First, "already at first change")

	case "G":
		return m.navigate(m.session.Navigator().Last, "already at last change")

	case "h":
		return m.copyRow(SideRight)

	case "l":
		return m.copyRow(SideLeft)

	case "c":
		return m.copyChunk()

	case "x":
		return m.removeRow()

	case "u":
		return m.undo()

	case "r":
		return m.redo()

	case "s":
		return m.saveAll()

	case "d":
		return m.discardAll()

	case "e":
		return m.exportPatch()
	}

	return m, nil
}

// navigate runs one navigator operation; an invalid move becomes a status
// cue, never an error.
func (m Model) navigate(op func() (diff.Move, bool), boundaryCue string) (tea.Model, tea.Cmd) {
	move, ok := op()
	if !ok {
		if len(m.chunks) == 0 {
			return m, setStatus("no changes")
		}
		return m, setStatus(boundaryCue)
	}
	m.applyMove(move)
	return m, setStatus(fmt.Sprintf("change %d/%d", move.Chunk+1, len(m.chunks)))
}

func (m Model) copyRow(from Side) (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, setStatus("nothing to copy")
	}
	if err := m.session.CopyRow(from, m.cursorRow); err != nil {
		return m.editFailed("copy line", err)
	}
	m.refresh()
	return m, setStatus(fmt.Sprintf("copied line to %s", otherSide(from)))
}

func (m Model) copyChunk() (tea.Model, tea.Cmd) {
	chunk, ok := m.currentChunk()
	if !ok {
		return m, setStatus("cursor is not on a change")
	}
	from := SideLeft
	if chunk.Type == diff.LineAdded {
		from = SideRight
	}
	if err := m.session.CopyChunk(from, chunk); err != nil {
		return m.editFailed("copy chunk", err)
	}
	m.refresh()
	return m, setStatus(fmt.Sprintf("copied %d line(s) to %s", chunk.Lines, otherSide(from)))
}

func (m Model) removeRow() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, setStatus("nothing to remove")
	}
	if err := m.session.RemoveRow(m.activeSide, m.cursorRow); err != nil {
		return m.editFailed("remove line", err)
	}
	m.refresh()
	return m, setStatus(fmt.Sprintf("removed line from %s", m.activeSide))
}

func (m Model) undo() (tea.Model, tea.Cmd) {
	description, err := m.session.Undo()
	if err != nil {
		return m, setStatus(err.Error())
	}
	m.refresh()
	return m, setStatus("undid: " + description)
}

func (m Model) redo() (tea.Model, tea.Cmd) {
	description, err := m.session.Redo()
	if err != nil {
		return m, setStatus(err.Error())
	}
	m.refresh()
	return m, setStatus("redid: " + description)
}

func (m Model) saveAll() (tea.Model, tea.Cmd) {
	store := m.session.store
	paths := store.PendingPaths()
	if len(paths) == 0 {
		return m, setStatus("no unsaved changes")
	}
	for _, path := range paths {
		if err := store.Save(path); err != nil {
			m.logger.Error("save file", err, map[string]any{"path": path})
			return m, setStatus("save failed: " + err.Error())
		}
	}
	return m, setStatus(fmt.Sprintf("saved %d file(s)", len(paths)))
}

func (m Model) discardAll() (tea.Model, tea.Cmd) {
	m.session.store.DiscardAll()
	m.session.History().Clear()
	if err := m.session.Recompute(); err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	m.refresh()
	return m, setStatus("discarded all changes")
}

func (m Model) exportPatch() (tea.Model, tea.Cmd) {
	const patchPath = "pairdiff.patch"
	file, err := os.Create(patchPath)
	if err != nil {
		return m, setStatus("export failed: " + err.Error())
	}
	defer file.Close()

	if err := m.session.WriteUnified(file, m.contextLines); err != nil {
		return m, setStatus("export failed: " + err.Error())
	}
	return m, setStatus("wrote " + patchPath)
}

func (m Model) editFailed(what string, err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, ErrEditNotApplicable) {
		return m, setStatus(err.Error())
	}
	m.logger.Error(what, err, nil)
	return m, setStatus(what + " failed: " + err.Error())
}

func (m Model) handleFileChanged(msg fileChangedMsg) (tea.Model, tea.Cmd) {
	m.logger.Info("file changed externally", map[string]any{"path": msg.path})

	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.WaitForChange())
	}

	if err := m.session.Recompute(); err != nil {
		m.err = err
		return m, tea.Batch(cmds...)
	}
	m.refresh()
	cmds = append(cmds, setStatus("reloaded: "+msg.path))
	return m, tea.Batch(cmds...)
}
