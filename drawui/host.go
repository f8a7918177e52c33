package drawui

import (
	"image"

	"github.com/mjl-/splitter"
)

// Pane is a region of the window managed by the splitter.
type Pane struct {
	splitter.Box
	Title string
}

type sashView struct {
	splitter.Box
	color uint32
}

// host tracks the window size in pixels and the sash rectangles. It
// needs no display, drawing happens in UI.Draw.
type host struct {
	size   splitter.Vec
	sashes []*sashView
}

var _ splitter.Host = &host{}

func (h *host) Size() splitter.Vec { return h.size }

func (h *host) Adopt(p splitter.Rect) {
	p.SetPosition(splitter.Vec{})
}

func (h *host) AddSash(a splitter.Appearance, axis splitter.Axis) splitter.Rect {
	s := &sashView{color: a.Color}
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

func (h *host) resize(p image.Point) {
	h.size = splitter.Vec{float64(p.X), float64(p.Y)}
}

// sashAt returns the index of the sash at p, allowing slack pixels on
// either side, or -1.
func sashAt(sashes []*splitter.Sash, p image.Point, slack int) int {
	for i, s := range sashes {
		if p.In(splitter.ImageRect(s.View()).Inset(-slack)) {
			return i
		}
	}
	return -1
}
