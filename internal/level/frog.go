package level

import (
	"math"

	"github.com/julialudwig/froggit/internal/core"
)

// Direction is a movement key for the frog.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// delta returns the pixel displacement of one hop in this direction.
// The y axis points up.
func (d Direction) delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -GridSize, 0
	case DirRight:
		return GridSize, 0
	case DirUp:
		return 0, GridSize
	case DirDown:
		return 0, -GridSize
	}
	return 0, 0
}

// slide tracks one in-flight hop animation.
type slide struct {
	dir              Direction
	initialX, finalX float64
	initialY, finalY float64
	duration         float64
}

// Frog is the player avatar. Position is the sprite center in pixels
// with y increasing upward.
type Frog struct {
	X, Y    float64
	Facing  Direction
	Frame   int
	Visible bool

	hitboxes []core.Inset
	anim     *slide
}

func newFrog(col, row int, sprite FrogSprite) *Frog {
	return &Frog{
		X:        (float64(col) + 0.5) * GridSize,
		Y:        (float64(row) + 0.5) * GridSize,
		Facing:   DirUp,
		Frame:    FrameRest,
		Visible:  true,
		hitboxes: sprite.Hitboxes,
	}
}

// Box returns the frog's hitbox for the current animation frame.
func (f *Frog) Box() core.Box {
	var inset core.Inset
	if len(f.hitboxes) > 0 {
		i := core.Clamp(f.Frame, 0, len(f.hitboxes)-1)
		inset = f.hitboxes[i]
	}
	return core.Box{X: f.X, Y: f.Y, W: GridSize, H: GridSize, Inset: inset}
}

// Sliding reports whether a hop animation is in progress.
func (f *Frog) Sliding() bool {
	return f.anim != nil
}

// startSlide begins a hop of one grid square in the given direction.
// Starting applies no displacement; the first stepSlide call does.
func (f *Frog) startSlide(dir Direction, duration float64) {
	dx, dy := dir.delta()
	f.Facing = dir
	f.anim = &slide{
		dir:      dir,
		initialX: f.X,
		finalX:   f.X + dx,
		initialY: f.Y,
		finalY:   f.Y + dy,
		duration: duration,
	}
}

// stepSlide advances the hop by dt seconds and reports whether it
// completed this step. On completion the frog is placed exactly at the
// destination and the animation frame returns to rest.
func (f *Frog) stepSlide(dt float64) bool {
	s := f.anim
	if s == nil {
		return false
	}
	done := false
	if s.dir == DirLeft || s.dir == DirRight {
		f.X += (s.finalX - s.initialX) / s.duration * dt
		if core.AbsF(f.X-s.initialX) >= GridSize {
			f.X = s.finalX
			done = true
		}
		f.Frame = slideFrame((f.X - s.initialX) / (s.finalX - s.initialX))
	} else {
		f.Y += (s.finalY - s.initialY) / s.duration * dt
		if core.AbsF(f.Y-s.initialY) >= GridSize {
			f.Y = s.finalY
			done = true
		}
		f.Frame = slideFrame((f.Y - s.initialY) / (s.finalY - s.initialY))
	}
	if done {
		f.anim = nil
	}
	return done
}

// cancelSlide drops any in-flight hop without moving the frog.
func (f *Frog) cancelSlide() {
	f.anim = nil
	f.Frame = FrameRest
}

// slideFrame maps hop progress in [0,1] to a filmstrip frame. The frog
// stretches over the first half of the hop and contracts over the second.
func slideFrame(progress float64) int {
	frac := 2 * progress
	var frame float64
	if frac < 1 {
		frame = FrameRest + frac*(FrameStretched-FrameRest)
	} else {
		frame = FrameStretched + (frac-1)*(FrameRest-FrameStretched)
	}
	return int(math.Round(core.ClampF(frame, FrameRest, FrameStretched)))
}
