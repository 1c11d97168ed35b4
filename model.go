package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pairdiff/diff"
)

// Model holds the application state
type Model struct {
	session     *Session
	watcher     *Watcher
	logger      *Logger
	highlighter *SyntaxHighlighter

	contextLines int

	rows       []diff.Line
	chunks     []diff.Chunk
	cursorRow  int
	scroll     int
	activeSide Side

	width  int
	height int

	status    string
	showHelp  bool
	quitting  bool
	err       error
}

// NewModel creates the initial model over an already-compared session.
func NewModel(session *Session, watcher *Watcher, logger *Logger, theme string, contextLines int) Model {
	m := Model{
		session:      session,
		watcher:      watcher,
		logger:       logger,
		highlighter:  NewSyntaxHighlighter(theme),
		contextLines: contextLines,
		activeSide:   SideRight,
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.WaitForChange()
}

// refresh pulls the current result and chunk list out of the session.
func (m *Model) refresh() {
	if result := m.session.Result(); result != nil {
		m.rows = result.Lines
	} else {
		m.rows = nil
	}
	m.chunks = m.session.Chunks()
	m.cursorRow = clamp(m.cursorRow, 0, max(0, len(m.rows)-1))
	m.clampScroll()
}

func (m *Model) clampScroll() {
	m.scroll = clamp(m.scroll, 0, max(0, len(m.rows)-m.bodyHeight()))
	if m.cursorRow < m.scroll {
		m.scroll = m.cursorRow
	}
	if body := m.bodyHeight(); body > 0 && m.cursorRow >= m.scroll+body {
		m.scroll = m.cursorRow - body + 1
	}
}

func (m *Model) bodyHeight() int {
	return contentHeight(m.height)
}

// applyMove scrolls so a navigation target is visible and puts the cursor on
// it.
func (m *Model) applyMove(move diff.Move) {
	m.cursorRow = clamp(move.Line, 0, max(0, len(m.rows)-1))
	m.clampScroll()
}

// currentChunk returns the chunk containing the cursor row, if any.
func (m *Model) currentChunk() (diff.Chunk, bool) {
	for _, chunk := range m.chunks {
		if m.cursorRow >= chunk.Start && m.cursorRow <= chunk.End {
			return chunk, true
		}
	}
	return diff.Chunk{}, false
}

// Messages

type errMsg struct {
	err error
}

type statusMsg struct {
	text string
}

type clearStatusMsg struct{}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
