// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     resultviewer
// Description: Styles for the result pager
// Author:      Mike Stoffels
// Created:     2025-02-10
// License:     MIT
// ============================================================================

package resultviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/seqkit/internal/render"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorTextDim)

	StatusStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextDim).
			Italic(true)
)
