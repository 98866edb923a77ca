package levels

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/julialudwig/froggit/internal/level"
	"github.com/julialudwig/froggit/internal/levels/formats"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

const objectsFile = "objects.yaml"

// Builtin returns the embedded levels sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("reading embedded levels: %w", err)
	}

	var out []Level
	for _, e := range entries {
		if e.IsDir() || e.Name() == objectsFile {
			continue
		}
		data, err := defaultsFS.ReadFile(path.Join("defaults", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading embedded level %s: %w", e.Name(), err)
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing embedded level %s: %w", e.Name(), err)
		}
		if parsed.ID == "" {
			parsed.ID = strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		}
		out = append(out, Level{
			ID:        parsed.ID,
			Name:      parsed.Name,
			Width:     parsed.Width,
			Height:    parsed.Height,
			Offscreen: parsed.Offscreen,
			Lanes:     parsed.Lanes,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// BuiltinObjects returns the embedded object table.
func BuiltinObjects() (level.ObjectTable, error) {
	data, err := defaultsFS.ReadFile(path.Join("defaults", objectsFile))
	if err != nil {
		return level.ObjectTable{}, fmt.Errorf("reading embedded object table: %w", err)
	}
	parsed, err := formats.ParseObjectsYAML(data)
	if err != nil {
		return level.ObjectTable{}, fmt.Errorf("parsing embedded object table: %w", err)
	}
	return toObjectTable(parsed), nil
}

// ByID finds a level by ID among the embedded levels and, when root is
// non-empty, the level files under root. On-disk levels shadow embedded
// ones with the same ID.
func ByID(id, root string) (Level, error) {
	if root != "" {
		loader := NewLoader(root)
		if lvl, err := loader.LoadByID(id); err == nil {
			return lvl, nil
		}
	}
	builtin, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range builtin {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}
