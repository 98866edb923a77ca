package level

import (
	"fmt"

	"github.com/julialudwig/froggit/internal/core"
)

// Obstacle is one object riding a lane: a car, a log, a bush or an exit.
type Obstacle struct {
	Type    string
	Box     core.Box
	Flipped bool
}

// Lane is one horizontal strip of the level, a single grid square tall.
type Lane struct {
	kind   Kind
	tile   core.Box
	objs   []Obstacle
	speed  float64 // scroll speed in pixels per second
	buffer float64 // offscreen allowance in grid squares
	width  float64 // lane width in pixels
	hedge  *hedgeState
}

// newLane builds the lane whose bottom edge sits at the given pixel height.
func newLane(desc Descriptor, spec LaneSpec, bottom float64, table ObjectTable) (*Lane, error) {
	w := float64(desc.Width) * GridSize
	l := &Lane{
		kind:   spec.Kind,
		tile:   core.Box{X: w / 2, Y: bottom + GridSize/2, W: w, H: GridSize},
		speed:  spec.Speed,
		buffer: desc.Offscreen,
		width:  w,
	}
	for _, o := range spec.Objects {
		info, ok := table.Images[o.Type]
		if !ok {
			return nil, fmt.Errorf("obstacle type %q has no image entry", o.Type)
		}
		l.objs = append(l.objs, Obstacle{
			Type: o.Type,
			Box: core.Box{
				X:     (float64(o.Position) + 0.5) * GridSize,
				Y:     l.tile.Y,
				W:     float64(core.Max(info.W, 1)) * GridSize,
				H:     float64(core.Max(info.H, 1)) * GridSize,
				Inset: info.Inset,
			},
			Flipped: spec.Speed < 0,
		})
	}
	if spec.Kind == Hedge {
		l.hedge = newHedgeState(l.objs)
	}
	return l, nil
}

// Kind returns the lane's behavior class.
func (l *Lane) Kind() Kind { return l.kind }

// Tile returns the lane's background strip.
func (l *Lane) Tile() core.Box { return l.tile }

// Speed returns the lane's scroll speed in pixels per second.
func (l *Lane) Speed() float64 { return l.speed }

// Obstacles returns the lane's obstacles in their current positions.
func (l *Lane) Obstacles() []Obstacle { return l.objs }

// Update scrolls the lane's obstacles by dt seconds and wraps any that
// left the offscreen buffer.
func (l *Lane) Update(dt float64) {
	if l.speed == 0 {
		return
	}
	change := l.speed * dt
	for i := range l.objs {
		l.objs[i].Box.X += change
	}
	l.wrapAround()
}

// wrapAround teleports obstacles that crossed the offscreen boundary to
// the opposite side, preserving any overshoot so motion stays continuous.
func (l *Lane) wrapAround() {
	leftEdge := -l.buffer * GridSize
	rightEdge := l.width + l.buffer*GridSize
	for i := range l.objs {
		x := l.objs[i].Box.X
		if l.speed < 0 && x <= leftEdge {
			l.objs[i].Box.X = rightEdge + (x - leftEdge)
		} else if l.speed > 0 && x >= rightEdge {
			l.objs[i].Box.X = leftEdge + (x - rightEdge)
		}
	}
}

// CarCollided reports whether any obstacle's hitbox overlaps the frog's.
// Only meaningful on road lanes.
func (l *Lane) CarCollided(frog core.Box) bool {
	for i := range l.objs {
		if l.objs[i].Box.Collides(frog) {
			return true
		}
	}
	return false
}

// FrogOnLog reports whether the point (x, y) is inside any obstacle's
// hitbox. Only meaningful on water lanes.
func (l *Lane) FrogOnLog(x, y float64) bool {
	for i := range l.objs {
		if l.objs[i].Box.Contains(x, y) {
			return true
		}
	}
	return false
}

// FrogDrowned reports whether the frog overlaps the water strip without
// standing on a log.
func (l *Lane) FrogDrowned(frog core.Box) bool {
	return l.tile.Collides(frog) && !l.FrogOnLog(frog.X, frog.Y)
}
