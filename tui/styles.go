package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Background colors for panes, in order.
var paneColors = []lipgloss.Color{"24", "58", "89", "29", "94", "60"}

var Styles = struct {
	Title    lipgloss.Style
	Body     lipgloss.Style
	Dragging lipgloss.Style // Sash being dragged or focused with tab.
}{
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Underline(true),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")),
	Dragging: lipgloss.NewStyle().
		Background(lipgloss.Color("205")).
		Foreground(lipgloss.Color("16")),
}

// sashStyle turns an RGBA sash color into a lipgloss style.
func sashStyle(rgba uint32) lipgloss.Style {
	c := lipgloss.Color(fmt.Sprintf("#%06x", rgba>>8))
	return lipgloss.NewStyle().Foreground(c)
}
