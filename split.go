package splitter

import (
	"math"

	"github.com/rs/zerolog"
)

// PaneID identifies a pane by its index in the list given to New.
type PaneID int

// Splitter lays out panes along one axis with a draggable sash between
// each adjacent pair.
//
// All methods must be called from the goroutine that handles the host's
// events. Nothing is locked.
type Splitter struct {
	host   Host
	cfg    Config
	panes  []Rect
	sizes  []float64 // Logical size along the axis, by PaneID.
	sashes sashSet
	busy   bool // In Layout, guards against hosts echoing our own changes as resizes.
	log    zerolog.Logger
}

// Option configures a Splitter in New.
type Option func(*Splitter)

// WithLogger makes the splitter log layout passes and drags at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(sp *Splitter) {
		sp.log = l.With().Str("component", "splitter").Logger()
	}
}

// New adopts panes into host, records their current size along cfg.Axis
// and lays them out. Without panes the splitter does nothing.
func New(host Host, panes []Rect, cfg Config, opts ...Option) *Splitter {
	sp := &Splitter{
		host: host,
		cfg:  cfg,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(sp)
	}
	if host == nil || len(panes) == 0 {
		sp.log.Debug().Msg("no panes, nothing to lay out")
		return sp
	}

	f := cfg.Axis.frame()
	sp.panes = make([]Rect, len(panes))
	sp.sizes = make([]float64, len(panes))
	for i, p := range panes {
		sp.panes[i] = p
		sp.sizes[i] = f.primary(p.Size())
		host.Adopt(p)
	}
	sp.Layout()
	return sp
}

func (sp *Splitter) Config() Config { return sp.cfg }
func (sp *Splitter) Len() int { return len(sp.panes) }

// Pane returns the pane with the given id.
func (sp *Splitter) Pane(id PaneID) (Rect, bool) {
	if !sp.known(id) {
		return nil, false
	}
	return sp.panes[id], true
}

// CachedSize returns the logical size the next Layout starts from.
func (sp *Splitter) CachedSize(id PaneID) (float64, bool) {
	if !sp.known(id) {
		return 0, false
	}
	return sp.sizes[id], true
}

func (sp *Splitter) known(id PaneID) bool {
	return id >= 0 && int(id) < len(sp.sizes)
}

// Resize must be called by the host when the container rectangle changed.
func (sp *Splitter) Resize() {
	sp.log.Debug().Interface("size", sp.hostSize()).Msg("container resized")
	sp.Layout()
}

func (sp *Splitter) hostSize() Vec {
	if sp.host == nil {
		return Vec{}
	}
	return sp.host.Size()
}

// Layout recomputes the size and position of every pane and sash.
//
// When there is room for every pane's minimum, the space beyond the
// minimums is divided in proportion to how far each pane was above the
// minimum. Otherwise every pane gets an equal share, even when that is
// below the minimum.
func (sp *Splitter) Layout() {
	if sp.busy {
		sp.log.Debug().Msg("layout already running, ignoring")
		return
	}
	if len(sp.sizes) == 0 {
		return
	}
	sp.busy = true
	defer func() {
		sp.busy = false
	}()

	sp.ensureSashes()

	dim := sp.host.Size()
	if len(sp.panes) == 1 {
		p := sp.panes[0]
		p.SetPosition(Vec{})
		p.SetSize(dim)
		return
	}

	f := sp.cfg.Axis.frame()
	n := float64(len(sp.panes))
	thickness := sp.cfg.Thickness()
	minSize := sp.cfg.MinSize
	avail := f.primary(dim) - (n-1)*thickness
	totalMin := n * minSize

	var total float64
	if avail > totalMin {
		distrib := avail - totalMin
		var excess float64
		for i, sz := range sp.sizes {
			if sz < minSize {
				sz = minSize
				sp.sizes[i] = sz
			}
			excess += sz - minSize
			total += sz
		}
		if excess > 0 {
			for i, sz := range sp.sizes {
				if sz > minSize {
					sp.sizes[i] = minSize + (sz-minSize)/excess*distrib
				}
			}
		} else {
			// All panes at the minimum, hand out the rest evenly.
			for i := range sp.sizes {
				sp.sizes[i] = minSize + distrib/n
			}
		}
	}
	if total == 0 {
		share := math.Max(0, avail/n)
		sp.log.Debug().Float64("available", avail).Float64("needed", totalMin).Float64("share", share).Msg("not enough space for minimum sizes, splitting evenly")
		for i := range sp.sizes {
			sp.sizes[i] = share
		}
	}

	cross := f.cross(dim)
	sashSize := f.vec(thickness, cross)
	var offset float64
	for i, p := range sp.panes {
		if i > 0 {
			s := sp.sashes.byLink[Link{PaneID(i - 1), PaneID(i)}]
			s.view.SetPosition(f.vec(f.sign()*offset, 0))
			s.view.SetSize(sashSize)
			offset += thickness
		}
		p.SetPosition(f.vec(f.sign()*offset, 0))
		p.SetSize(f.vec(sp.sizes[i], cross))
		offset += sp.sizes[i]
	}
	sp.log.Debug().Int("panes", len(sp.panes)).Float64("extent", f.primary(dim)).Float64("used", offset).Msg("layout")
}

// RefreshSize reads the pane's current size along the axis into the
// cache used by the next Layout. Unknown panes are ignored.
func (sp *Splitter) RefreshSize(id PaneID) {
	if !sp.known(id) {
		return
	}
	sp.sizes[id] = sp.cfg.Axis.frame().primary(sp.panes[id].Size())
}

// Apply moves space between the two panes of a drag Delta, moves the
// sash and refreshes the cached sizes of both panes.
// Deltas for sashes that no longer exist are ignored.
func (sp *Splitter) Apply(d Delta) {
	s, ok := sp.sashes.byLink[d.Link]
	if !ok || !sp.known(d.Link.A) || !sp.known(d.Link.B) {
		return
	}
	a, b := sp.panes[d.Link.A], sp.panes[d.Link.B]
	a.SetSize(d.SizeA)
	b.SetPosition(d.PosB)
	b.SetSize(d.SizeB)
	s.view.SetPosition(d.PosSash)
	sp.RefreshSize(d.Link.A)
	sp.RefreshSize(d.Link.B)
}

// Sash returns the sash between the panes of link.
func (sp *Splitter) Sash(link Link) (*Sash, bool) {
	s, ok := sp.sashes.byLink[link]
	return s, ok
}

// Sashes returns the sashes in pane order. Nil before the first Layout
// after InvalidateSashes.
func (sp *Splitter) Sashes() []*Sash {
	return sp.sashes.list
}

func (sp *Splitter) SashState() SashState {
	return sp.sashes.state()
}

// InvalidateSashes removes all sash visuals from the host. The next
// Layout creates new ones.
func (sp *Splitter) InvalidateSashes() {
	for _, s := range sp.sashes.list {
		sp.host.RemoveSash(s.view)
		s.split = nil
	}
	sp.sashes = sashSet{}
}

func (sp *Splitter) ensureSashes() {
	if sp.sashes.built {
		return
	}
	sp.sashes = newSashSet(len(sp.panes) - 1)
	for i := 0; i+1 < len(sp.panes); i++ {
		s := &Sash{
			split: sp,
			link:  Link{PaneID(i), PaneID(i + 1)},
			view:  sp.host.AddSash(sp.cfg.Sash, sp.cfg.Axis),
		}
		sp.sashes.add(s)
	}
	sp.log.Debug().Int("sashes", len(sp.sashes.list)).Msg("created sashes")
}
