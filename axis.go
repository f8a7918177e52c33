package splitter

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/math/f64"
)

// Vec is a 2D vector, X at index 0 and Y at index 1.
type Vec = f64.Vec2

// Axis is the direction along which panes are laid out.
type Axis int

const (
	Horizontal = Axis(iota) // Panes left to right, primary component is X.
	Vertical                // Panes top to bottom, primary component is Y.
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func (a Axis) MarshalText() ([]byte, error) {
	if a != Horizontal && a != Vertical {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "horizontal", "h":
		*a = Horizontal
	case "vertical", "v":
		*a = Vertical
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAxis, string(b))
	}
	return nil
}

// ScreenDelta converts a pointer movement in screen coordinates, with Y
// down, to a drag delta along a.
func (a Axis) ScreenDelta(d image.Point) float64 {
	if a == Vertical {
		return -float64(d.Y)
	}
	return float64(d.X)
}

// frame selects vector components for an axis. All horizontal/vertical
// decisions in layout and dragging go through it.
type frame struct {
	main, other int
	sgn         float64
}

// Positions along the vertical axis go negative: anchors are top-left
// with Y pointing up.
func (a Axis) frame() frame {
	if a == Vertical {
		return frame{1, 0, -1}
	}
	return frame{0, 1, 1}
}

func (f frame) primary(v Vec) float64 { return v[f.main] }
func (f frame) cross(v Vec) float64 { return v[f.other] }
func (f frame) sign() float64 { return f.sgn }

func (f frame) vec(primary, cross float64) Vec {
	var v Vec
	v[f.main] = primary
	v[f.other] = cross
	return v
}

// withPrimary returns v with its primary component replaced.
func (f frame) withPrimary(v Vec, primary float64) Vec {
	v[f.main] = primary
	return v
}
