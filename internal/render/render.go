// SPDX-License-Identifier: MIT

// Package render decorates Array2 output for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/brandgrid/grid"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Box frames a's rendering under a title line with its shape.
func Box[R, C any](title string, a *grid.Array2[R, C]) string {
	head := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(title),
		dimStyle.Render(fmt.Sprintf(" %d×%d", a.Rows(), a.Cols())),
	)

	return lipgloss.JoinVertical(lipgloss.Left, head, boxStyle.Render(strings.TrimRight(a.String(), "\n")))
}

// FirstRow plots the first row of a. It returns "" when a has no cells.
func FirstRow[R, C any](caption string, a *grid.Array2[R, C]) string {
	first, ok := a.RowRange.Iter().Next()
	if !ok || a.Cols() == 0 {
		return ""
	}
	data := make([]float64, 0, a.Cols())
	for j := range a.ColRange.All() {
		data = append(data, float64(a.At(first, j)))
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
