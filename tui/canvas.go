package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a grid of runes, each with a style. String renders runs of
// equally styled cells with lipgloss.
type canvas struct {
	bounds image.Rectangle
	runes  [][]rune
	style  [][]int
	styles []lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		bounds: image.Rect(0, 0, width, height),
		runes:  make([][]rune, height),
		style:  make([][]int, height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.style[y] = make([]int, width)
	}
	return c
}

// addStyle registers st and returns its index for fill and text.
func (c *canvas) addStyle(st lipgloss.Style) int {
	c.styles = append(c.styles, st)
	return len(c.styles) - 1
}

func (c *canvas) fill(r image.Rectangle, ch rune, st int) {
	r = r.Intersect(c.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.runes[y][x] = ch
			c.style[y][x] = st
		}
	}
}

// text writes s starting at p, clipped to clip.
func (c *canvas) text(p image.Point, clip image.Rectangle, s string, st int) {
	clip = clip.Intersect(c.bounds)
	if p.Y < clip.Min.Y || p.Y >= clip.Max.Y {
		return
	}
	x := p.X
	for _, ch := range s {
		if x >= clip.Max.X {
			break
		}
		if x >= clip.Min.X {
			c.runes[p.Y][x] = ch
			c.style[p.Y][x] = st
		}
		x++
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.runes {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.style[y][x] == c.style[y][start] {
				continue
			}
			b.WriteString(c.styles[c.style[y][start]].Render(string(row[start:x])))
			start = x
		}
	}
	return b.String()
}
