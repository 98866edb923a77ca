// Package level implements the Froggit playfield simulation: lanes of
// traffic, water and hedges, the frog with its hop animation, and the
// per-tick rules that tie them together. The package is pure; it performs
// no I/O and knows nothing about terminals.
package level

import (
	"fmt"

	"github.com/julialudwig/froggit/internal/core"
)

// Options tunes a level at construction. Zero values select defaults.
type Options struct {
	Lives        int
	SlideSeconds float64
}

// Level owns one playfield: its lanes, the frog, and the remaining lives.
// All coordinates are pixels with y increasing upward; the lane at index 0
// is the bottom of the screen.
type Level struct {
	desc   Descriptor
	lanes  []*Lane
	frog   *Frog
	sprite FrogSprite

	lives        int
	slideSeconds float64
	startCol     int
	startRow     int

	frogKilled bool
	gameOver   bool
	cues       []core.Cue
}

// New builds a level from its descriptor and object table. Configuration
// problems (empty grid, lane count mismatch, obstacle types missing from
// the table) are returned as errors; no partially built level escapes.
func New(desc Descriptor, table ObjectTable, opts Options) (*Level, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("level %q: invalid size %dx%d", desc.ID, desc.Width, desc.Height)
	}
	if len(desc.Lanes) != desc.Height {
		return nil, fmt.Errorf("level %q: %d lanes for height %d", desc.ID, len(desc.Lanes), desc.Height)
	}
	l := &Level{
		desc:         desc,
		sprite:       table.Frog,
		lives:        opts.Lives,
		slideSeconds: opts.SlideSeconds,
		startCol:     desc.Width / 2,
		startRow:     0,
	}
	if l.lives <= 0 {
		l.lives = DefaultLives
	}
	if l.slideSeconds <= 0 {
		l.slideSeconds = DefaultSlideSeconds
	}
	for i, spec := range desc.Lanes {
		lane, err := newLane(desc, spec, float64(i)*GridSize, table)
		if err != nil {
			return nil, fmt.Errorf("level %q: lane %d: %w", desc.ID, i, err)
		}
		l.lanes = append(l.lanes, lane)
	}
	l.SetInitialFrog()
	return l, nil
}

// Width returns the playfield width in grid squares.
func (l *Level) Width() int { return l.desc.Width }

// Height returns the playfield height in grid squares, excluding any
// status band the caller draws above it.
func (l *Level) Height() int { return l.desc.Height }

// Lives returns the remaining lives.
func (l *Level) Lives() int { return l.lives }

// Frog exposes the frog for renderers.
func (l *Level) Frog() *Frog { return l.frog }

// Lanes exposes the lanes bottom to top for renderers.
func (l *Level) Lanes() []*Lane { return l.lanes }

// SetInitialFrog places a fresh, visible frog at the start square and
// clears the killed flag. Called at construction and when a new life
// begins.
func (l *Level) SetInitialFrog() {
	l.frog = newFrog(l.startCol, l.startRow, l.sprite)
	l.frogKilled = false
}

// Update advances the simulation by dt seconds. Exactly one of three
// things happens to the frog: an in-flight hop advances, a key is handled,
// or the frog is checked for death. Lanes then scroll, and a frog standing
// on a log is carried with it. Negative dt is a caller bug.
func (l *Level) Update(dt float64, key Direction) {
	if dt < 0 {
		panic("level: negative dt")
	}
	switch {
	case l.frog.Sliding():
		if l.frog.stepSlide(dt) && l.checkDeath() {
			l.frogDies()
		}
	case key != DirNone:
		l.handleKey(key)
	default:
		if l.checkDeath() {
			l.frogDies()
		}
	}
	for _, lane := range l.lanes {
		lane.Update(dt)
	}
	l.rideLogs(dt)
}

// TakeCues drains and returns the sound cues emitted since the last call.
func (l *Level) TakeCues() []core.Cue {
	c := l.cues
	l.cues = nil
	return c
}

// handleKey turns the frog to face the key and starts a hop unless the
// destination is blocked by a hedge obstacle or lies outside the grid.
func (l *Level) handleKey(key Direction) {
	l.frog.Facing = key
	if !l.goingToHedge(key) {
		dx, dy := key.delta()
		if l.inBounds(l.frog.X+dx, l.frog.Y+dy) {
			l.frog.startSlide(key, l.slideSeconds)
			l.cues = append(l.cues, CueJump)
		}
	}
	if l.checkDeath() {
		l.frogDies()
	}
}

// inBounds reports whether a frog center may come to rest at (x, y).
func (l *Level) inBounds(x, y float64) bool {
	w := float64(l.desc.Width) * GridSize
	h := float64(l.desc.Height) * GridSize
	return x > 0 && x < w && y > 0 && y < h
}

// goingToHedge reports whether a hop in the given direction is blocked by
// hedge rules at the destination: inside a fixed or claimed obstacle, or
// inside an open exit approached with the down key. Destinations in a
// hedge strip with no obstacle are free to enter.
func (l *Level) goingToHedge(key Direction) bool {
	dx, dy := key.delta()
	destX, destY := l.frog.X+dx, l.frog.Y+dy
	for _, lane := range l.lanes {
		if lane.kind != Hedge || !lane.tile.Contains(destX, destY) {
			continue
		}
		if lane.GoingToObstacle(key, l.frog.X, l.frog.Y) {
			return true
		}
		if lane.openExitAt(destX, destY) && !lane.WillReachExit(l.frog.X, l.frog.Y, key) {
			return true
		}
		return false
	}
	return false
}

// checkDeath reports whether the frog is currently in a lethal position:
// in water without a log under it, or carried past the grid's edge.
func (l *Level) checkDeath() bool {
	for _, lane := range l.lanes {
		if lane.kind == Water && lane.FrogDrowned(l.frog.Box()) {
			return true
		}
	}
	w := float64(l.desc.Width) * GridSize
	return l.frog.X < 0 || l.frog.X > w
}

// frogDies hides the frog, burns a life and emits the splat cue. The
// killed flag stays set until SetInitialFrog.
func (l *Level) frogDies() {
	if l.frogKilled {
		return
	}
	l.frog.Visible = false
	l.frog.cancelSlide()
	l.frogKilled = true
	l.lives--
	if l.lives <= 0 {
		l.gameOver = true
	}
	l.cues = append(l.cues, CueSplat)
}

// rideLogs carries a frog standing on a log along with its lane.
func (l *Level) rideLogs(dt float64) {
	if !l.frog.Visible {
		return
	}
	for _, lane := range l.lanes {
		if lane.kind == Water && lane.FrogOnLog(l.frog.X, l.frog.Y) {
			l.frog.X += lane.speed * dt
		}
	}
}

// IsFrogKilled checks the frog against road traffic and reports whether
// the current life has ended. A visible frog overlapping a car dies here
// as a side effect of the query.
func (l *Level) IsFrogKilled() bool {
	if l.frog.Visible {
		for _, lane := range l.lanes {
			if lane.kind == Road && lane.CarCollided(l.frog.Box()) {
				l.frogDies()
				break
			}
		}
	}
	return l.frogKilled
}

// IsInExit reports whether the frog just claimed an open exit. Claiming
// closes the exit, hides the frog and emits the trill cue. When the frog
// sits in an open exit and key is down, the frog is instead nudged one
// grid square up and no exit is claimed.
func (l *Level) IsInExit(key Direction) bool {
	if !l.frog.Visible {
		return false
	}
	for _, lane := range l.lanes {
		if lane.kind != Hedge {
			continue
		}
		reached, nudge := lane.ReachedExit(l.frog.Box(), key)
		if nudge {
			l.frog.Y += GridSize
		}
		if reached {
			l.frog.Visible = false
			l.frog.cancelSlide()
			l.cues = append(l.cues, CueTrill)
			return true
		}
	}
	return false
}

// IsGameOver reports whether all lives are spent.
func (l *Level) IsGameOver() bool { return l.gameOver }

// IsGameWon reports whether every exit of every hedge has been claimed.
func (l *Level) IsGameWon() bool {
	for _, lane := range l.lanes {
		if lane.kind == Hedge && !lane.IsFull() {
			return false
		}
	}
	return true
}
