package level

import (
	"fmt"

	"github.com/julialudwig/froggit/internal/core"
)

// Kind identifies a lane behavior class.
type Kind int

const (
	Grass Kind = iota
	Road
	Water
	Hedge
)

// KindFromString maps a lane type name from a level file to a Kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "grass":
		return Grass, nil
	case "road":
		return Road, nil
	case "water":
		return Water, nil
	case "hedge":
		return Hedge, nil
	default:
		return 0, fmt.Errorf("unknown lane type %q", s)
	}
}

// String returns the lane type name.
func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Road:
		return "road"
	case Water:
		return "water"
	case Hedge:
		return "hedge"
	default:
		return "unknown"
	}
}

// ObjectSpec places one obstacle in a lane. Position is the grid column
// the obstacle is centered on.
type ObjectSpec struct {
	Type     string
	Position int
}

// LaneSpec describes one lane of a level, bottom to top.
type LaneSpec struct {
	Kind    Kind
	Speed   float64 // pixels per second; 0 for static lanes
	Objects []ObjectSpec
}

// Descriptor is a fully parsed level definition, independent of the file
// format it was loaded from.
type Descriptor struct {
	ID        string
	Name      string
	Width     int // grid squares
	Height    int // grid squares, excluding the status band
	Offscreen float64
	Lanes     []LaneSpec
}

// ObjectInfo gives the footprint and hitbox of one obstacle type.
type ObjectInfo struct {
	W, H  int // size in grid squares
	Inset core.Inset
}

// FrogSprite describes the frog's animation filmstrip and the per-frame
// hitbox insets that accompany it.
type FrogSprite struct {
	Frames   int
	Hitboxes []core.Inset
}

// ObjectTable maps obstacle type names to their geometry. Every obstacle
// type referenced by a level must have an entry here.
type ObjectTable struct {
	Images map[string]ObjectInfo
	Frog   FrogSprite
}
