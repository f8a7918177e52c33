package tui

import (
	"github.com/mjl-/splitter"
)

// Pane is a region of the terminal managed by the splitter.
// Its initial size along the axis is used as a weight when the window
// size is first known.
type Pane struct {
	splitter.Box
	Title string
	Body  []string
}

// NewPane returns a pane with the given title and weight along either axis.
func NewPane(title string, weight float64, body ...string) *Pane {
	return &Pane{
		Box:   splitter.Box{Sz: splitter.Vec{weight, weight}},
		Title: title,
		Body:  body,
	}
}

type sashView struct {
	splitter.Box
	visual string
	color  uint32
}

// host keeps the terminal size and the sash rectangles.
type host struct {
	size   splitter.Vec
	sashes []*sashView
}

var _ splitter.Host = &host{}

func (h *host) Size() splitter.Vec { return h.size }

// Panes are always children of the terminal, nothing to do.
func (h *host) Adopt(p splitter.Rect) {}

func (h *host) AddSash(a splitter.Appearance, axis splitter.Axis) splitter.Rect {
	s := &sashView{visual: a.Visual(axis), color: a.Color}
	h.sashes = append(h.sashes, s)
	return s
}

func (h *host) RemoveSash(r splitter.Rect) {
	for i, s := range h.sashes {
		if splitter.Rect(s) == r {
			h.sashes = append(h.sashes[:i], h.sashes[i+1:]...)
			return
		}
	}
}
