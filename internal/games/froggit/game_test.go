package froggit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julialudwig/froggit/internal/core"
	"github.com/julialudwig/froggit/internal/level"
)

const exitOnlyLevel = `
id: test
name: Test
size: [5, 2]
lanes:
  - type: grass
  - type: hedge
    objects:
      - {type: exit, position: 2}
`

const roadLevel = `
id: roadtest
size: [5, 3]
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

func withLevelFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	SetLevelFile(path)
	t.Cleanup(func() { SetLevelFile("") })
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(t *testing.T, levelYAML string) *Game {
	t.Helper()
	withLevelFile(t, levelYAML)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.loadErr != nil {
		t.Fatalf("Reset: %v", g.loadErr)
	}
	return g
}

// tickFor steps the game for roughly the given span, pressing the first
// frame's actions once.
func tickFor(g *Game, seconds float64, first core.InputFrame) {
	steps := int(seconds*60 + 0.5)
	in := first
	for i := 0; i < steps; i++ {
		g.Step(in)
		in = core.NewInputFrame()
	}
}

func TestTitleWaitsForConfirm(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	if g.state != stateTitle {
		t.Fatalf("state = %v, want title", g.state)
	}
	g.Step(frame(core.ActionUp))
	if g.state != stateTitle {
		t.Error("non-confirm input left the title screen")
	}
	g.Step(frame(core.ActionConfirm))
	if g.state != stateActive {
		t.Errorf("state = %v, want active after confirm", g.state)
	}
}

func TestWinFlowScoresExitAndLifeBonus(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	g.Step(frame(core.ActionConfirm))
	tickFor(g, 1, frame(core.ActionUp))

	if g.state != stateComplete {
		t.Fatalf("state = %v, want complete after claiming the only exit", g.state)
	}
	if !g.Won() {
		t.Error("session not marked won")
	}
	// One exit plus three remaining lives at the default scoring values.
	want := 100 + 3*50
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if !g.State().GameOver {
		t.Error("GameOver not reported on completion")
	}
}

func TestLifeLossPausesBetweenLives(t *testing.T) {
	g := newTestGame(t, roadLevel)
	g.Step(frame(core.ActionConfirm))
	tickFor(g, 1.0/60, frame(core.ActionUp)) // hop onto the road
	tickFor(g, 2, core.NewInputFrame())      // wait for traffic

	if g.state != stateInterlude {
		t.Fatalf("state = %v, want interlude after losing a life", g.state)
	}
	if !g.State().Paused {
		t.Error("interlude not reported as paused")
	}
	if g.level.Lives() != 2 {
		t.Errorf("lives = %d, want 2", g.level.Lives())
	}

	g.Step(frame(core.ActionConfirm))
	if g.state != stateActive {
		t.Errorf("state = %v, want active after continue", g.state)
	}
	if !g.level.Frog().Visible {
		t.Error("frog not restored for the next life")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not register")
	}
	snap := g.level.Snapshot()
	g.Step(frame(core.ActionUp))
	if g.level.Snapshot().FrogY != snap.FrogY {
		t.Error("level advanced while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("pause did not toggle off")
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	g.Step(frame(core.ActionConfirm))
	tickFor(g, 1, frame(core.ActionUp))
	if g.state != stateComplete {
		t.Fatalf("state = %v, want complete", g.state)
	}

	g.Step(frame(core.ActionRestart))
	if g.state != stateTitle {
		t.Errorf("state = %v, want title after restart", g.state)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0 after restart", g.score)
	}
}

func TestJumpCueSurfacesInStepResult(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	g.Step(frame(core.ActionConfirm))
	res := g.Step(frame(core.ActionUp))
	found := false
	for _, c := range res.Cues {
		if c == level.CueJump {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, want a jump cue", res.Cues)
	}
}

func TestLoadErrorKeepsTitleScreen(t *testing.T) {
	SetLevelFile(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetLevelFile("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.loadErr == nil {
		t.Fatal("expected a load error")
	}
	g.Step(frame(core.ActionConfirm))
	if g.state != stateTitle {
		t.Error("confirm left the title screen despite a load error")
	}

	// Render must not touch the missing level.
	s := core.NewScreen(80, 24)
	g.Render(s)
}

func TestDirectionPriority(t *testing.T) {
	cases := []struct {
		name string
		in   core.InputFrame
		want level.Direction
	}{
		{"none", frame(), level.DirNone},
		{"left beats right", frame(core.ActionRight, core.ActionLeft), level.DirLeft},
		{"right beats up", frame(core.ActionUp, core.ActionRight), level.DirRight},
		{"up beats down", frame(core.ActionDown, core.ActionUp), level.DirUp},
		{"down alone", frame(core.ActionDown), level.DirDown},
	}
	for _, tc := range cases {
		if got := directionFrom(tc.in); got != tc.want {
			t.Errorf("%s: directionFrom = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRenderProducesFrame(t *testing.T) {
	g := newTestGame(t, exitOnlyLevel)
	g.Step(frame(core.ActionConfirm))

	s := core.NewScreen(80, 24)
	g.Render(s)

	// HUD on the top row, separator below it.
	if s.Row(0)[:8] != " Froggit" {
		t.Errorf("HUD row = %q", s.Row(0)[:8])
	}
	if s.Get(0, 1) != '─' {
		t.Error("missing HUD separator")
	}

	// The frog should appear somewhere on the map.
	found := false
	for y := hudHeight; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == '(' {
				found = true
			}
		}
	}
	if !found {
		t.Error("frog not rendered")
	}
}
