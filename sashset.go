package splitter

// SashState tells whether a Splitter's sashes need to be created.
type SashState int

const (
	NotBuilt       = SashState(iota) // Created on the next Layout.
	BuiltEmpty                       // Up to date, a single pane has no sashes.
	BuiltPopulated                   // Up to date.
)

func (s SashState) String() string {
	switch s {
	case NotBuilt:
		return "not built"
	case BuiltEmpty:
		return "built, empty"
	case BuiltPopulated:
		return "built"
	}
	return "unknown"
}

// sashSet holds the sashes of a splitter. The zero value is NotBuilt.
type sashSet struct {
	built  bool
	list   []*Sash // In pane order.
	byLink map[Link]*Sash
}

func newSashSet(n int) sashSet {
	if n < 0 {
		n = 0
	}
	return sashSet{
		built:  true,
		list:   make([]*Sash, 0, n),
		byLink: make(map[Link]*Sash, n),
	}
}

func (ss *sashSet) add(s *Sash) {
	ss.list = append(ss.list, s)
	ss.byLink[s.link] = s
}

func (ss *sashSet) state() SashState {
	switch {
	case !ss.built:
		return NotBuilt
	case len(ss.list) == 0:
		return BuiltEmpty
	}
	return BuiltPopulated
}
