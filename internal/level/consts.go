package level

import "github.com/julialudwig/froggit/internal/core"

// Gameplay constants shared across the level simulation.
const (
	// GridSize is the size in pixels of a single grid square.
	GridSize = 64.0

	// DefaultSlideSeconds is how long one frog hop takes.
	DefaultSlideSeconds = 0.25

	// DefaultLives is the number of lives before losing.
	DefaultLives = 3

	// FrameRest is the frog sprite frame at rest.
	FrameRest = 0
	// FrameStretched is the frog sprite frame when fully stretched mid-hop.
	FrameStretched = 4
)

// Sound cues emitted by the simulation. Playback is the caller's concern.
const (
	CueJump  core.Cue = "jump"  // Fires exactly once when a hop begins
	CueSplat core.Cue = "splat" // Fires when the frog loses a life
	CueTrill core.Cue = "trill" // Fires when the frog claims an exit
)
