package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julialudwig/froggit/internal/level"
	"github.com/julialudwig/froggit/internal/levels/formats"
)

const sampleYAML = `
id: sample
name: Sample
size: [5, 3]
offscreen: 1
lanes:
  - type: grass
  - type: road
    speed: -96
    objects:
      - {type: car1, position: 4}
  - type: hedge
    objects:
      - {type: exit, position: 2}
`

const sampleJSON = `{
  "id": "jsample",
  "size": [5, 2],
  "offscreen": 1,
  "lanes": [
    {"type": "grass"},
    {"type": "hedge", "objects": [{"type": "exit", "position": 2}]}
  ]
}`

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeLevel(t, t.TempDir(), "sample.yaml", sampleYAML)
	lvl, err := NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.ID != "sample" || lvl.Width != 5 || lvl.Height != 3 {
		t.Errorf("loaded level = %+v", lvl)
	}
	if len(lvl.Lanes) != 3 || lvl.Lanes[1].Speed != -96 {
		t.Errorf("lanes = %+v", lvl.Lanes)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeLevel(t, t.TempDir(), "sample.json", sampleJSON)
	lvl, err := NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.ID != "jsample" || lvl.Height != 2 {
		t.Errorf("loaded level = %+v", lvl)
	}
}

func TestLoadFileDefaultsIDToBaseName(t *testing.T) {
	content := `
size: [5, 1]
lanes:
  - type: hedge
    objects:
      - {type: exit, position: 2}
`
	path := writeLevel(t, t.TempDir(), "noid.yaml", content)
	lvl, err := NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if lvl.ID != "noid" {
		t.Errorf("ID = %q, want noid", lvl.ID)
	}
}

func TestLoadFileRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name, content string
	}{
		{"badsize.yaml", "size: [5]\nlanes:\n  - type: grass\n"},
		{"mismatch.yaml", "size: [5, 3]\nlanes:\n  - type: grass\n"},
		{"position.yaml", "size: [5, 1]\nlanes:\n  - type: road\n    objects: [{type: car1, position: 9}]\n"},
		{"notyaml.yaml", "{{{"},
	}
	loader := NewLoader(dir)
	for _, tc := range cases {
		path := writeLevel(t, dir, tc.name, tc.content)
		if _, err := loader.LoadFile(path); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestLoadAllSkipsInvalidAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", sampleYAML)
	writeLevel(t, dir, "broken.yaml", "{{{")
	writeLevel(t, dir, "a.json", sampleJSON)
	writeLevel(t, dir, "notes.txt", "not a level")

	all, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("loaded %d levels, want 2", len(all))
	}
	if all[0].ID != "jsample" || all[1].ID != "sample" {
		t.Errorf("order = [%s, %s]", all[0].ID, all[1].ID)
	}
}

func TestDescriptorRejectsUnknownLaneType(t *testing.T) {
	lvl := Level{ID: "x", Width: 5, Height: 1,
		Lanes: []formats.Lane{{Type: "lava"}}}
	if _, err := lvl.Descriptor(); err == nil {
		t.Error("expected an error for an unknown lane type")
	}
}

func TestDescriptorRequiresAnExit(t *testing.T) {
	lvl := Level{ID: "x", Width: 5, Height: 1,
		Lanes: []formats.Lane{{Type: "grass"}}}
	if _, err := lvl.Descriptor(); err == nil {
		t.Error("expected an error for a level with no exits")
	}
}

func TestBuiltinLevelsAreComplete(t *testing.T) {
	builtin, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(builtin) == 0 {
		t.Fatal("no builtin levels")
	}

	table, err := BuiltinObjects()
	if err != nil {
		t.Fatalf("BuiltinObjects: %v", err)
	}
	if len(table.Frog.Hitboxes) != table.Frog.Frames {
		t.Fatalf("frog sprite: %d hitboxes for %d frames",
			len(table.Frog.Hitboxes), table.Frog.Frames)
	}

	// Every builtin level must convert and build against the builtin table.
	for _, lvl := range builtin {
		desc, err := lvl.Descriptor()
		if err != nil {
			t.Errorf("%s: %v", lvl.ID, err)
			continue
		}
		if _, err := level.New(desc, table, level.Options{}); err != nil {
			t.Errorf("%s: %v", lvl.ID, err)
		}
	}
}

func TestByIDPrefersOnDisk(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "easy.yaml", `
id: easy
name: Custom Easy
size: [5, 1]
lanes:
  - type: hedge
    objects:
      - {type: exit, position: 2}
`)
	lvl, err := ByID("easy", dir)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if lvl.Name != "Custom Easy" {
		t.Errorf("on-disk level should shadow the embedded one, got %q", lvl.Name)
	}

	if _, err := ByID("easy", ""); err != nil {
		t.Errorf("embedded easy should load: %v", err)
	}
	if _, err := ByID("nope", ""); err == nil {
		t.Error("expected an error for an unknown ID")
	}
}
