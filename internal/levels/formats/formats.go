// Package formats provides pluggable level and object-table file parsers.
package formats

import "fmt"

// Level is a parsed level definition ready for validation downstream.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Offscreen float64
	Lanes     []Lane
}

// Lane is one lane entry of a level file, bottom to top.
type Lane struct {
	Type    string
	Speed   float64
	Objects []Object
}

// Object is one obstacle placement in a lane.
type Object struct {
	Type     string
	Position int
}

// rawLevel mirrors the on-disk structure shared by the YAML and JSON
// formats.
type rawLevel struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Size      []int     `yaml:"size" json:"size"`
	Offscreen float64   `yaml:"offscreen" json:"offscreen"`
	Lanes     []rawLane `yaml:"lanes" json:"lanes"`
}

type rawLane struct {
	Type    string      `yaml:"type" json:"type"`
	Speed   float64     `yaml:"speed" json:"speed"`
	Objects []rawObject `yaml:"objects" json:"objects"`
}

type rawObject struct {
	Type     string `yaml:"type" json:"type"`
	Position int    `yaml:"position" json:"position"`
}

// build validates a raw level and assembles the parsed form. A level that
// fails any check is rejected whole.
func (r rawLevel) build() (Level, error) {
	if len(r.Size) != 2 {
		return Level{}, fmt.Errorf("size must be [width, height], got %v", r.Size)
	}
	w, h := r.Size[0], r.Size[1]
	if w <= 0 || h <= 0 {
		return Level{}, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	if len(r.Lanes) == 0 {
		return Level{}, fmt.Errorf("level has no lanes")
	}
	if len(r.Lanes) != h {
		return Level{}, fmt.Errorf("%d lanes for height %d", len(r.Lanes), h)
	}

	lvl := Level{
		ID:        r.ID,
		Name:      r.Name,
		Width:     w,
		Height:    h,
		Offscreen: r.Offscreen,
	}
	if lvl.Offscreen <= 0 {
		lvl.Offscreen = 1
	}
	for i, rl := range r.Lanes {
		if rl.Type == "" {
			return Level{}, fmt.Errorf("lane %d: missing type", i)
		}
		lane := Lane{Type: rl.Type, Speed: rl.Speed}
		for j, ro := range rl.Objects {
			if ro.Type == "" {
				return Level{}, fmt.Errorf("lane %d: object %d: missing type", i, j)
			}
			if ro.Position < 0 || ro.Position >= w {
				return Level{}, fmt.Errorf("lane %d: object %d: position %d outside 0..%d",
					i, j, ro.Position, w-1)
			}
			lane.Objects = append(lane.Objects, Object{Type: ro.Type, Position: ro.Position})
		}
		lvl.Lanes = append(lvl.Lanes, lane)
	}
	return lvl, nil
}

// FormatExtensions returns supported level file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
