// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the renderer of one output, so colors are only
// emitted when the output is a capable terminal.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	body    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading: r.NewStyle().Bold(true),
		body:    r.NewStyle(),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
