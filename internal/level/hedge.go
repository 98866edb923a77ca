package level

import (
	"strings"

	"github.com/julialudwig/froggit/internal/core"
)

// SafeMarker records where a rescued frog sits in a claimed exit.
type SafeMarker struct {
	X, Y float64
}

// hedgeState tracks which exits of a hedge lane are still open. Exits are
// identified by obstacle type names starting with "exit"; every other
// obstacle in a hedge lane is a fixed blocker.
type hedgeState struct {
	open   map[int]bool // obstacle index -> still open
	exits  int
	closed int
	safe   []SafeMarker
}

func newHedgeState(objs []Obstacle) *hedgeState {
	h := &hedgeState{open: make(map[int]bool)}
	for i, o := range objs {
		if strings.HasPrefix(o.Type, "exit") {
			h.open[i] = true
			h.exits++
		}
	}
	return h
}

func (l *Lane) mustHedge() *hedgeState {
	if l.hedge == nil {
		panic("level: hedge query on a " + l.kind.String() + " lane")
	}
	return l.hedge
}

// ReachedExit reports whether the frog's center sits in an open exit. When
// it does and key is not down, the exit is claimed: it closes permanently
// and a safe-frog marker is recorded at its center. When key is down the
// exit stays open and nudge is true; the caller must push the frog one
// grid square up.
func (l *Lane) ReachedExit(frog core.Box, key Direction) (reached, nudge bool) {
	h := l.mustHedge()
	for i := range l.objs {
		if !h.open[i] || !l.objs[i].Box.Contains(frog.X, frog.Y) {
			continue
		}
		if key == DirDown {
			return false, true
		}
		delete(h.open, i)
		h.closed++
		h.safe = append(h.safe, SafeMarker{X: l.objs[i].Box.X, Y: l.objs[i].Box.Y})
		return true, false
	}
	return false, false
}

// WillReachExit reports whether one hop in the given direction would land
// the frog's center in an open exit. It never claims the exit. A down key
// never reaches an exit.
func (l *Lane) WillReachExit(x, y float64, key Direction) bool {
	h := l.mustHedge()
	if key == DirDown {
		return false
	}
	dx, dy := key.delta()
	for i := range l.objs {
		if h.open[i] && l.objs[i].Box.Contains(x+dx, y+dy) {
			return true
		}
	}
	return false
}

// GoingToObstacle reports whether one hop in the given direction would land
// the frog's center inside a fixed obstacle (any hedge object that is not
// an open exit).
func (l *Lane) GoingToObstacle(key Direction, x, y float64) bool {
	h := l.mustHedge()
	dx, dy := key.delta()
	for i := range l.objs {
		if h.open[i] {
			continue
		}
		if l.objs[i].Box.Contains(x+dx, y+dy) {
			return true
		}
	}
	return false
}

// openExitAt reports whether the point sits inside a still-open exit.
func (l *Lane) openExitAt(x, y float64) bool {
	h := l.mustHedge()
	for i := range l.objs {
		if h.open[i] && l.objs[i].Box.Contains(x, y) {
			return true
		}
	}
	return false
}

// FrogAtObstacle reports whether the point sits inside any hedge obstacle,
// open or closed.
func (l *Lane) FrogAtObstacle(x, y float64) bool {
	l.mustHedge()
	for i := range l.objs {
		if l.objs[i].Box.Contains(x, y) {
			return true
		}
	}
	return false
}

// IsFull reports whether every exit of this hedge has been claimed.
func (l *Lane) IsFull() bool {
	return len(l.mustHedge().open) == 0
}

// Exits returns how many exits the hedge started with.
func (l *Lane) Exits() int { return l.mustHedge().exits }

// SafeMarkers returns the positions of rescued frogs in claimed exits.
func (l *Lane) SafeMarkers() []SafeMarker { return l.mustHedge().safe }

// ExitOpen reports whether the obstacle at index i is a still-open exit.
func (l *Lane) ExitOpen(i int) bool { return l.mustHedge().open[i] }
