// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     resultviewer
// Description: Bubbletea pager for large operation results
// Author:      Mike Stoffels
// Created:     2025-02-10
// License:     MIT
// ============================================================================

package resultviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// header: title line; footer: status and help lines; panel border adds two
const (
	headerHeight = 1
	footerHeight = 2
	borderSize   = 2
)

// Model is the Bubbletea model of the result pager
type Model struct {
	title   string
	content string
	lines   int

	width  int
	height int
	ready  bool

	viewport viewport.Model
}

// New creates a pager showing content under title
func New(title, content string) Model {
	content = strings.TrimRight(content, "\n")
	return Model{
		title:   title,
		content: content,
		lines:   strings.Count(content, "\n") + 1,
	}
}

// Run shows the pager on the alternate screen until the user quits
func Run(title, content string) error {
	_, err := tea.NewProgram(New(title, content), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		width := max(msg.Width-borderSize, 1)
		height := max(msg.Height-headerHeight-footerHeight-borderSize, 1)

		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.viewport.YPosition = headerHeight + 1
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = width
			m.viewport.Height = height
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(PanelStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ scroll • pgup/pgdn page • g/G top/bottom • q quit"))
	return b.String()
}

func (m Model) renderStatus() string {
	return StatusStyle.Render(fmt.Sprintf("%s lines  %3.0f%%",
		humanize.Comma(int64(m.lines)), m.viewport.ScrollPercent()*100))
}
