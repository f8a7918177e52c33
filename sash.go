package splitter

import (
	"math"
)

// Link names the two adjacent panes a sash separates. A is left of or
// above B.
type Link struct {
	A, B PaneID
}

// Sash is the draggable divider between two adjacent panes.
type Sash struct {
	split *Splitter // Nil once the splitter invalidated its sashes.
	link  Link
	view  Rect
}

func (s *Sash) Link() Link { return s.link }

// View returns the rectangle the host created for this sash.
func (s *Sash) View() Rect { return s.view }

// Delta is the result of dragging a sash: Growth is added to pane A and
// taken from pane B along the axis. The other fields are the geometry
// after the drag.
type Delta struct {
	Link    Link
	Growth  float64
	SizeA   Vec
	PosB    Vec
	SizeB   Vec
	PosSash Vec
}

// Plan computes the effect of moving the sash by delta along the
// splitter's axis, in container coordinates (Y up). The move is
// shortened so that neither pane ends below the minimum size. Plan
// returns false if nothing would change.
func (s *Sash) Plan(delta float64) (Delta, bool) {
	sp := s.split
	if delta == 0 || sp == nil {
		return Delta{}, false
	}
	a, aok := sp.Pane(s.link.A)
	b, bok := sp.Pane(s.link.B)
	if !aok || !bok {
		return Delta{}, false
	}

	f := sp.cfg.Axis.frame()
	minSize := sp.cfg.MinSize
	szA := f.primary(a.Size())
	szB := f.primary(b.Size())

	// Moving up shrinks the pane above, so vertical deltas flip.
	want := f.sign() * delta
	var grow float64
	if want < 0 {
		grow = math.Max(minSize, szA+want) - szA
	} else {
		grow = szB - math.Max(minSize, szB-want)
	}
	// A pane already below the minimum would push the sash back.
	if grow*want < 0 {
		grow = 0
	}
	if grow == 0 {
		sp.log.Debug().Float64("delta", delta).Interface("link", s.link).Msg("sash at minimum, not moving")
		return Delta{}, false
	}

	shift := f.sign() * grow
	d := Delta{
		Link:    s.link,
		Growth:  grow,
		SizeA:   f.withPrimary(a.Size(), szA+grow),
		PosB:    f.withPrimary(b.Position(), f.primary(b.Position())+shift),
		SizeB:   f.withPrimary(b.Size(), szB-grow),
		PosSash: f.withPrimary(s.view.Position(), f.primary(s.view.Position())+shift),
	}
	return d, true
}

// Drag moves the sash by delta, see Plan, and applies the result to the
// splitter. It returns whether anything moved.
func (s *Sash) Drag(delta float64) bool {
	d, ok := s.Plan(delta)
	if !ok {
		return false
	}
	s.split.Apply(d)
	return true
}
