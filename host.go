package splitter

import (
	"image"
	"math"
)

// Rect is a rectangle owned by the host, positioned relative to the
// top-left corner of its container. Panes and sash visuals are Rects.
type Rect interface {
	Size() Vec
	SetSize(Vec)
	Position() Vec
	SetPosition(Vec)
}

// Box is a plain Rect. Hosts embed it in their pane and sash types.
type Box struct {
	Pos, Sz Vec
}

var _ Rect = &Box{}

func (b *Box) Size() Vec { return b.Sz }
func (b *Box) SetSize(v Vec) { b.Sz = v }
func (b *Box) Position() Vec { return b.Pos }
func (b *Box) SetPosition(v Vec) { b.Pos = v }

// Appearance describes how a host should render sashes.
// The splitter passes it through without looking at it.
type Appearance struct {
	Horizontal string `toml:"horizontal"` // Visual for sashes between side-by-side panes.
	Vertical   string `toml:"vertical"`   // Visual for sashes between stacked panes.
	Color      uint32 `toml:"color"`      // RGBA, 0xffffffff is opaque white.
}

// Visual returns the visual token for sashes on axis a.
func (a Appearance) Visual(axis Axis) string {
	if axis == Vertical {
		return a.Vertical
	}
	return a.Horizontal
}

// Host is the rendering backend a Splitter lays out into.
type Host interface {
	// Size of the container rectangle.
	Size() Vec

	// Adopt makes p a child of the container, anchored at the top-left.
	Adopt(p Rect)

	// AddSash creates a sash visual and returns its rectangle.
	AddSash(a Appearance, axis Axis) Rect

	// RemoveSash destroys a sash visual created by AddSash.
	RemoveSash(r Rect)
}

// ImageRect returns the integer rectangle covered by r in screen
// coordinates, with Y down.
func ImageRect(r Rect) image.Rectangle {
	pos, sz := r.Position(), r.Size()
	x, y := pos[0], -pos[1]
	return image.Rect(round(x), round(y), round(x+sz[0]), round(y+sz[1]))
}

func round(v float64) int {
	return int(math.Round(v))
}
