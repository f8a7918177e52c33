package splitter

// testHost is a Host that records what the splitter asks of it.
type testHost struct {
	size    Vec
	adopted []Rect
	sashes  []*Box
	removed []Rect

	onSetSize func() // Called whenever a pane is resized, to simulate hosts echoing resizes.
}

func (h *testHost) Size() Vec { return h.size }

func (h *testHost) Adopt(p Rect) {
	h.adopted = append(h.adopted, p)
}

func (h *testHost) AddSash(a Appearance, axis Axis) Rect {
	b := &Box{}
	h.sashes = append(h.sashes, b)
	return b
}

func (h *testHost) RemoveSash(r Rect) {
	h.removed = append(h.removed, r)
}

type testPane struct {
	Box
	h *testHost
}

func (p *testPane) SetSize(v Vec) {
	p.Box.SetSize(v)
	if p.h != nil && p.h.onSetSize != nil {
		p.h.onSetSize()
	}
}

// newPanes returns panes with the given sizes along axis, and cross size 1.
func newPanes(axis Axis, sizes ...float64) []Rect {
	f := axis.frame()
	l := make([]Rect, len(sizes))
	for i, sz := range sizes {
		l[i] = &testPane{Box: Box{Sz: f.vec(sz, 1)}}
	}
	return l
}

func testConfig(axis Axis, minSize, thickness float64) Config {
	cfg := DefaultConfig()
	cfg.Axis = axis
	cfg.MinSize = minSize
	cfg.SashThickness = Vec{thickness, thickness}
	return cfg
}
