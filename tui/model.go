// Package tui shows a splitter in a terminal with bubbletea. Sashes can
// be dragged with the mouse, or focused with tab and moved with the
// arrow keys.
package tui

import (
	"image"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mjl-/splitter"
)

type drag struct {
	sash int
	last image.Point
}

// Model is a bubbletea model showing panes in a splitter.
type Model struct {
	cfg   splitter.Config
	host  *host
	panes []*Pane
	split *splitter.Splitter // Created on the first WindowSizeMsg.
	log   zerolog.Logger

	width, height int
	drag          *drag
	focus         int // Sash moved by arrow keys, -1 for none.
}

var _ tea.Model = &Model{}

// New returns a model for panes. Sizes of cfg are in terminal cells.
func New(cfg splitter.Config, panes []*Pane, log zerolog.Logger) *Model {
	return &Model{
		cfg:   cfg,
		host:  &host{},
		panes: panes,
		log:   log.With().Str("component", "tui").Logger(),
		focus: -1,
	}
}

// Splitter returns the splitter, nil until the terminal size is known.
func (m *Model) Splitter() *splitter.Splitter {
	return m.split
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.host.size = splitter.Vec{float64(width), float64(height)}
	if m.split != nil {
		m.split.Resize()
		return
	}
	rects := make([]splitter.Rect, len(m.panes))
	for i, p := range m.panes {
		rects[i] = p
	}
	m.split = splitter.New(m.host, rects, m.cfg, splitter.WithLogger(m.log))
}

func (m *Model) mouse(msg tea.MouseMsg) {
	p := image.Pt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if i := m.SashAt(p); i >= 0 {
			m.log.Debug().Int("sash", i).Msg("drag start")
			m.drag = &drag{sash: i, last: p}
		}
	case tea.MouseActionMotion:
		if m.drag == nil {
			return
		}
		m.dragBy(m.drag.sash, p.Sub(m.drag.last))
		m.drag.last = p
	case tea.MouseActionRelease:
		if m.drag != nil {
			m.log.Debug().Int("sash", m.drag.sash).Msg("drag end")
		}
		m.drag = nil
	}
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab":
		if m.split != nil && len(m.split.Sashes()) > 0 {
			m.focus = (m.focus + 1) % len(m.split.Sashes())
		}
	case "esc":
		m.focus = -1
	case "left":
		m.dragBy(m.focus, image.Pt(-1, 0))
	case "right":
		m.dragBy(m.focus, image.Pt(1, 0))
	case "up":
		m.dragBy(m.focus, image.Pt(0, -1))
	case "down":
		m.dragBy(m.focus, image.Pt(0, 1))
	}
	return nil
}

// dragBy moves sash i by d terminal cells. Only the component along
// the splitter's axis is used.
func (m *Model) dragBy(i int, d image.Point) bool {
	if m.split == nil || i < 0 || i >= len(m.split.Sashes()) {
		return false
	}
	delta := m.cfg.Axis.ScreenDelta(d)
	if delta == 0 {
		return false
	}
	return m.split.Sashes()[i].Drag(delta)
}

// SashAt returns the index of the sash at cell p, or -1.
func (m *Model) SashAt(p image.Point) int {
	if m.split == nil {
		return -1
	}
	for i, s := range m.split.Sashes() {
		if p.In(splitter.ImageRect(s.View())) {
			return i
		}
	}
	return -1
}

func (m *Model) View() string {
	if m.split == nil || m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := newCanvas(m.width, m.height)
	for i, p := range m.panes {
		r := splitter.ImageRect(p)
		bg := paneColors[i%len(paneColors)]
		body := c.addStyle(Styles.Body.Background(bg))
		c.fill(r, ' ', body)
		c.text(r.Min, r, p.Title, c.addStyle(Styles.Title.Background(bg)))
		for j, line := range p.Body {
			c.text(r.Min.Add(image.Pt(0, j+1)), r, line, body)
		}
	}
	for i, s := range m.split.Sashes() {
		v := s.View().(*sashView)
		st := sashStyle(v.color)
		if i == m.focus || (m.drag != nil && m.drag.sash == i) {
			st = Styles.Dragging
		}
		c.fill(splitter.ImageRect(v), m.sashRune(v), c.addStyle(st))
	}
	return c.String()
}

func (m *Model) sashRune(v *sashView) rune {
	if r, _ := utf8.DecodeRuneInString(v.visual); r != utf8.RuneError {
		return r
	}
	if m.cfg.Axis == splitter.Vertical {
		return '─'
	}
	return '│'
}
