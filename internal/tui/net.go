package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_sim"
)

var faceletStyles = map[gocube.Color]lipgloss.Style{
	gocube.White:  faceletStyle("#FFFFFF"),
	gocube.Yellow: faceletStyle("#FFD500"),
	gocube.Orange: faceletStyle("#FF5800"),
	gocube.Red:    faceletStyle("#C41E3A"),
	gocube.Green:  faceletStyle("#009E60"),
	gocube.Blue:   faceletStyle("#0051BA"),
}

func faceletStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(bg))
}

// cellWidth is the printed width of one facelet.
const cellWidth = 3

func renderFacelet(c gocube.Color) string {
	text := " " + c.String() + " "
	if style, ok := faceletStyles[c]; ok {
		return style.Render(text)
	}
	return text
}

func renderRow(b *strings.Builder, grid gocube.FaceGrid, row int) {
	for col := 0; col < gocube.Size; col++ {
		b.WriteString(renderFacelet(grid[row][col]))
	}
}

// RenderNet draws the cube as an unfolded net: Top above Front,
// Left Front Right Back across the middle, Bottom below Front.
func RenderNet(c *gocube.Cube) string {
	indent := strings.Repeat(" ", gocube.Size*cellWidth)
	middle := []gocube.Face{gocube.Left, gocube.Front, gocube.Right, gocube.Back}

	var b strings.Builder

	top := c.FaceColors(gocube.Top)
	for row := 0; row < gocube.Size; row++ {
		b.WriteString(indent)
		renderRow(&b, top, row)
		b.WriteString("\n")
	}

	grids := make([]gocube.FaceGrid, len(middle))
	for i, f := range middle {
		grids[i] = c.FaceColors(f)
	}
	for row := 0; row < gocube.Size; row++ {
		for _, g := range grids {
			renderRow(&b, g, row)
		}
		b.WriteString("\n")
	}

	bottom := c.FaceColors(gocube.Bottom)
	for row := 0; row < gocube.Size; row++ {
		b.WriteString(indent)
		renderRow(&b, bottom, row)
		b.WriteString("\n")
	}

	return b.String()
}
