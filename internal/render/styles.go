// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     render
// Description: Styles for text output
// Author:      Mike Stoffels
// Created:     2025-02-09
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the result viewer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Styles groups the styles used by the text renderer
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Yes     lipgloss.Style
	No      lipgloss.Style
	Muted   lipgloss.Style
	Element lipgloss.Style
}

// ColorStyles returns the styles for color terminals
func ColorStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(ColorTextDim),
		Value: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true),
		Yes: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		No: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true),
		Element: lipgloss.NewStyle().
			Foreground(ColorSecondary),
	}
}

// PlainStyles returns styles that leave text untouched
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:  plain,
		Label:   plain,
		Value:   plain,
		Yes:     plain,
		No:      plain,
		Muted:   plain,
		Element: plain,
	}
}
