package tui

import (
	"image"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/splitter"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plainLines(m *Model) []string {
	return strings.Split(ansiRE.ReplaceAllString(m.View(), ""), "\n")
}

func testModel(axis splitter.Axis, minSize float64, panes ...*Pane) *Model {
	cfg := splitter.DefaultConfig()
	cfg.Axis = axis
	cfg.MinSize = minSize
	cfg.SashThickness = splitter.Vec{1, 1}
	return New(cfg, panes, zerolog.Nop())
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func horizontalModel(t *testing.T) *Model {
	t.Helper()
	m := testModel(splitter.Horizontal, 3, NewPane("left", 10, "a"), NewPane("right", 10))
	m.Update(tea.WindowSizeMsg{Width: 21, Height: 4})
	require.NotNil(t, m.Splitter())
	return m
}

func TestViewBeforeSize(t *testing.T) {
	m := testModel(splitter.Horizontal, 3, NewPane("left", 10))
	assert.Nil(t, m.Splitter())
	assert.Equal(t, "", m.View())
	assert.Equal(t, -1, m.SashAt(image.Pt(0, 0)))
}

func TestViewHorizontal(t *testing.T) {
	m := horizontalModel(t)

	lines := plainLines(m)
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 21, len([]rune(l)))
		assert.Equal(t, '│', []rune(l)[10])
	}
	assert.True(t, strings.HasPrefix(lines[0], "left"))
	assert.Equal(t, "right", string([]rune(lines[0])[11:16]))
	assert.True(t, strings.HasPrefix(lines[1], "a"))
	assert.Equal(t, 0, m.SashAt(image.Pt(10, 3)))
	assert.Equal(t, -1, m.SashAt(image.Pt(9, 3)))
}

func TestMouseDrag(t *testing.T) {
	m := horizontalModel(t)

	m.Update(press(10, 1))
	m.Update(motion(7, 1))
	m.Update(release(7, 1))
	m.Update(motion(2, 1))

	assert.Equal(t, 7.0, m.panes[0].Sz[0])
	assert.Equal(t, 13.0, m.panes[1].Sz[0])
	assert.Equal(t, '│', []rune(plainLines(m)[0])[7])

	// Cached sizes follow the drag, so a resize keeps the ratio of the excess.
	sz, _ := m.Splitter().CachedSize(0)
	assert.Equal(t, 7.0, sz)
}

func TestMouseDragClamped(t *testing.T) {
	m := horizontalModel(t)

	m.Update(press(10, 0))
	m.Update(motion(0, 0))
	assert.Equal(t, 3.0, m.panes[0].Sz[0])
	assert.Equal(t, 17.0, m.panes[1].Sz[0])

	// Pressing outside a sash does not start a drag.
	m.Update(release(0, 0))
	m.Update(press(15, 0))
	m.Update(motion(18, 0))
	assert.Equal(t, 3.0, m.panes[0].Sz[0])
}

func TestVerticalDrag(t *testing.T) {
	m := testModel(splitter.Vertical, 1, NewPane("top", 2), NewPane("bottom", 2))
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	lines := plainLines(m)
	require.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat("─", 10), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "bottom"))

	m.Update(press(3, 2))
	m.Update(motion(3, 3))

	lines = plainLines(m)
	assert.Equal(t, strings.Repeat("─", 10), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "bottom"))
	assert.Equal(t, splitter.Vec{10, 3}, m.panes[0].Sz)
	assert.Equal(t, splitter.Vec{10, 1}, m.panes[1].Sz)
}

func TestKeys(t *testing.T) {
	m := horizontalModel(t)

	// No sash focused yet.
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 10.0, m.panes[0].Sz[0])

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 12.0, m.panes[0].Sz[0])

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 12.0, m.panes[0].Sz[0])

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestResize(t *testing.T) {
	m := horizontalModel(t)
	sp := m.Splitter()

	m.Update(tea.WindowSizeMsg{Width: 42, Height: 2})
	assert.Same(t, sp, m.Splitter())
	assert.Equal(t, 20.5, m.panes[0].Sz[0])
	assert.Equal(t, 20.5, m.panes[1].Sz[0])

	lines := plainLines(m)
	require.Len(t, lines, 2)
	assert.Equal(t, 42, len([]rune(lines[0])))
}

func TestSashVisual(t *testing.T) {
	cfg := splitter.DefaultConfig()
	cfg.MinSize = 1
	cfg.SashThickness = splitter.Vec{1, 1}
	cfg.Sash.Horizontal = "┃"
	m := New(cfg, []*Pane{NewPane("a", 1), NewPane("b", 1)}, zerolog.Nop())
	m.Update(tea.WindowSizeMsg{Width: 5, Height: 1})

	assert.Equal(t, "a ┃b ", plainLines(m)[0])
}
