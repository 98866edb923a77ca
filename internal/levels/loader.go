// Package levels provides level and object-table loading for Froggit.
// This package depends on level but level does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julialudwig/froggit/internal/core"
	"github.com/julialudwig/froggit/internal/level"
	"github.com/julialudwig/froggit/internal/levels/formats"
)

// Level is a loaded level definition plus its origin.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Offscreen float64
	Lanes     []formats.Lane
	FilePath  string // empty for embedded levels
}

// Descriptor converts the loaded level into the simulation's descriptor,
// validating lane types and the presence of at least one exit.
func (l Level) Descriptor() (level.Descriptor, error) {
	desc := level.Descriptor{
		ID:        l.ID,
		Name:      l.Name,
		Width:     l.Width,
		Height:    l.Height,
		Offscreen: l.Offscreen,
	}
	exits := 0
	for i, lane := range l.Lanes {
		kind, err := level.KindFromString(lane.Type)
		if err != nil {
			return level.Descriptor{}, fmt.Errorf("level %q: lane %d: %w", l.ID, i, err)
		}
		spec := level.LaneSpec{Kind: kind, Speed: lane.Speed}
		for _, o := range lane.Objects {
			if kind == level.Hedge && strings.HasPrefix(o.Type, "exit") {
				exits++
			}
			spec.Objects = append(spec.Objects, level.ObjectSpec{Type: o.Type, Position: o.Position})
		}
		desc.Lanes = append(desc.Lanes, spec)
	}
	if exits == 0 {
		return level.Descriptor{}, fmt.Errorf("level %q: no exits to win by", l.ID)
	}
	return desc, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadFile loads a single level file. A level whose file omits an id gets
// the file's base name.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}

	return Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Width:     parsed.Width,
		Height:    parsed.Height,
		Offscreen: parsed.Offscreen,
		Lanes:     parsed.Lanes,
		FilePath:  path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadObjects loads an object table from a file.
func LoadObjects(path string) (level.ObjectTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return level.ObjectTable{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	var parsed formats.Objects
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parsed, err = formats.ParseObjectsYAML(data)
	case ".json":
		parsed, err = formats.ParseObjectsJSON(data)
	default:
		err = fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return level.ObjectTable{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return toObjectTable(parsed), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// toObjectTable converts parsed object geometry to simulation types.
func toObjectTable(o formats.Objects) level.ObjectTable {
	t := level.ObjectTable{Images: make(map[string]level.ObjectInfo)}
	for name, img := range o.Images {
		t.Images[name] = level.ObjectInfo{
			W: img.W,
			H: img.H,
			Inset: core.Inset{
				Left:   img.Hitbox[0],
				Top:    img.Hitbox[1],
				Right:  img.Hitbox[2],
				Bottom: img.Hitbox[3],
			},
		}
	}
	t.Frog = level.FrogSprite{Frames: o.Frog.Frames}
	for _, hb := range o.Frog.Hitboxes {
		t.Frog.Hitboxes = append(t.Frog.Hitboxes, core.Inset{
			Left: hb[0], Top: hb[1], Right: hb[2], Bottom: hb[3],
		})
	}
	return t
}
