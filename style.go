package main

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor     = "#e0e0e0"
	titleDimFGColor  = "#a0a0a0"
	postureFGColor   = "#ff9f1c"
	tooltipBGColor   = "#1e1e1e"
	tooltipFGColor   = "#f5f5f5"
	emptyGridFGColor = "#6a6a6a"
)

var (
	// Styles
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(titleFGColor)).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(titleDimFGColor))
	postStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(postureFGColor)).Bold(true)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(emptyGridFGColor))

	// Cell glyphs, drawn over the cell colour.
	hoverGlyphs   = [2]string{"[", "]"} // border around the hovered cell
	narrowHover   = "▣"
	selectedGlyph = "•"
	cursorGlyph   = "+"
)
