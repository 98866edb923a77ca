package level

import (
	"math"
	"testing"
)

const tick = 1.0 / 60

func mustLevel(t *testing.T, width int, lanes []LaneSpec) *Level {
	t.Helper()
	desc := Descriptor{
		ID: "t", Name: "Test",
		Width: width, Height: len(lanes),
		Offscreen: 1, Lanes: lanes,
	}
	l, err := New(desc, testTable(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

// run ticks the level for the given span, pressing key on the first tick
// only and running the kill check each frame the way the game shell does.
func run(l *Level, seconds float64, key Direction) {
	steps := int(seconds/tick + 0.5)
	for i := 0; i < steps; i++ {
		if !l.IsGameOver() {
			l.IsFrogKilled()
			l.Update(tick, key)
		}
		key = DirNone
	}
}

func TestNewRejectsBadConfigs(t *testing.T) {
	table := testTable()
	cases := []struct {
		name string
		desc Descriptor
	}{
		{"zero size", Descriptor{ID: "x", Width: 0, Height: 1, Lanes: []LaneSpec{{Kind: Grass}}}},
		{"lane count mismatch", Descriptor{ID: "x", Width: 5, Height: 3, Lanes: []LaneSpec{{Kind: Grass}}}},
		{"unknown obstacle", Descriptor{ID: "x", Width: 5, Height: 1, Lanes: []LaneSpec{
			{Kind: Road, Objects: []ObjectSpec{{Type: "tank", Position: 0}}},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.desc, table, Options{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestUpdatePanicsOnNegativeDt(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{{Kind: Grass}})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	l.Update(-0.01, DirNone)
}

func TestHopEmitsJumpCueOnce(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{{Kind: Grass}, {Kind: Grass}})
	l.Update(tick, DirUp)
	if cues := l.TakeCues(); len(cues) != 1 || cues[0] != CueJump {
		t.Fatalf("cues after hop start = %v, want [jump]", cues)
	}
	run(l, 0.5, DirNone)
	for _, c := range l.TakeCues() {
		if c == CueJump {
			t.Error("jump cue fired again mid-hop")
		}
	}
}

func TestHopBlockedAtGridEdge(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{{Kind: Grass}, {Kind: Grass}})
	l.Update(tick, DirDown)
	if l.Frog().Sliding() {
		t.Error("hop below the bottom row should be refused")
	}
	if len(l.TakeCues()) != 0 {
		t.Error("refused hop emitted a cue")
	}
}

func TestHopBlockedByBush(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Hedge, Objects: []ObjectSpec{
			{Type: "bush", Position: 0}, {Type: "bush", Position: 1},
			{Type: "bush", Position: 2}, {Type: "bush", Position: 3},
			{Type: "exit", Position: 4},
		}},
	})
	l.Update(tick, DirUp)
	if l.Frog().Sliding() {
		t.Error("hop into a bush should be refused")
	}
}

func TestHopIntoOpenHedgeCellAllowed(t *testing.T) {
	// No obstacle above the start square: the hedge strip itself is open.
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Hedge, Objects: []ObjectSpec{{Type: "exit", Position: 4}}},
	})
	l.Update(tick, DirUp)
	if !l.Frog().Sliding() {
		t.Error("hop into an unobstructed hedge square should be allowed")
	}
}

func TestCarKillCostsOneLife(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Road, Speed: -96, Objects: []ObjectSpec{{Type: "car1", Position: 4}}},
		{Kind: Hedge, Objects: []ObjectSpec{{Type: "exit", Position: 2}}},
	})
	if l.Lives() != DefaultLives {
		t.Fatalf("lives = %d, want %d", l.Lives(), DefaultLives)
	}

	run(l, tick, DirUp) // hop onto the road
	run(l, 2, DirNone)  // wait for traffic

	if !l.IsFrogKilled() {
		t.Fatal("frog should have been run over")
	}
	if l.Frog().Visible {
		t.Error("dead frog still visible")
	}
	if l.Lives() != DefaultLives-1 {
		t.Errorf("lives = %d, want %d", l.Lives(), DefaultLives-1)
	}
	if l.IsGameOver() {
		t.Error("game over with lives remaining")
	}

	found := false
	for _, c := range l.TakeCues() {
		if c == CueSplat {
			found = true
		}
	}
	if !found {
		t.Error("no splat cue on death")
	}

	// A new life resets the kill flag and restores the frog.
	l.SetInitialFrog()
	if l.IsFrogKilled() {
		t.Error("kill flag survived SetInitialFrog")
	}
	if !l.Frog().Visible {
		t.Error("fresh frog not visible")
	}
}

func TestThirdDeathEndsTheGame(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Water, Speed: 0},
		{Kind: Hedge, Objects: []ObjectSpec{{Type: "exit", Position: 2}}},
	})
	for i := 0; i < DefaultLives; i++ {
		run(l, tick, DirUp) // hop into empty water
		run(l, 1, DirNone)
		if !l.IsFrogKilled() {
			t.Fatalf("life %d: frog should have drowned", i)
		}
		if i < DefaultLives-1 {
			l.SetInitialFrog()
		}
	}
	if !l.IsGameOver() {
		t.Error("game should be over after the last life")
	}
	if l.Lives() != 0 {
		t.Errorf("lives = %d, want 0", l.Lives())
	}
}

func TestExitClaimFlow(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Hedge, Objects: []ObjectSpec{
			{Type: "bush", Position: 0}, {Type: "bush", Position: 1},
			{Type: "exit", Position: 2}, {Type: "bush", Position: 3},
			{Type: "bush", Position: 4},
		}},
	})
	run(l, tick, DirUp)
	run(l, 0.5, DirNone)
	if l.Frog().Sliding() {
		t.Fatal("hop should have finished")
	}

	if !l.IsInExit(DirNone) {
		t.Fatal("frog centered in the open exit should claim it")
	}
	if l.Frog().Visible {
		t.Error("frog still visible after claiming an exit")
	}
	if !l.IsGameWon() {
		t.Error("claiming the only exit should win the level")
	}
	if l.IsInExit(DirNone) {
		t.Error("claim fired twice")
	}

	found := false
	for _, c := range l.TakeCues() {
		if c == CueTrill {
			found = true
		}
	}
	if !found {
		t.Error("no trill cue on exit claim")
	}
}

func TestDownKeyInOpenExitNudgesFrogUp(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Hedge, Objects: []ObjectSpec{{Type: "exit", Position: 2}}},
		{Kind: Grass},
	})
	l.Frog().X = 160
	l.Frog().Y = 96 // exit center

	if l.IsInExit(DirDown) {
		t.Error("down key must not claim the exit")
	}
	if l.Frog().Y != 96+GridSize {
		t.Errorf("frog Y = %v, want nudged to %v", l.Frog().Y, 96+GridSize)
	}
	if l.IsGameWon() {
		t.Error("exit closed by a down key")
	}
}

func TestLogCarriesTheFrog(t *testing.T) {
	l := mustLevel(t, 9, []LaneSpec{
		{Kind: Grass},
		{Kind: Water, Speed: 96, Objects: []ObjectSpec{{Type: "log3", Position: 3}}},
	})
	l.Frog().X = 224 // log center
	l.Frog().Y = 96

	l.Update(0.1, DirNone)
	if got := l.Frog().X; math.Abs(got-233.6) > 1e-9 {
		t.Errorf("frog X = %v, want 233.6 after riding the log", got)
	}
}

func TestFrogCarriedOffEdgeDies(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Water, Speed: 96, Objects: []ObjectSpec{{Type: "log3", Position: 2}}},
	})
	run(l, tick, DirUp) // hop onto the log
	run(l, 3, DirNone)  // ride it past the right edge

	if !l.IsFrogKilled() {
		t.Error("frog carried past the edge should die")
	}
	if l.Lives() != DefaultLives-1 {
		t.Errorf("lives = %d, want %d", l.Lives(), DefaultLives-1)
	}
}

func TestDrownOnHopCompletion(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Water, Speed: 96},
	})
	run(l, tick, DirUp)
	run(l, 0.3, DirNone)
	if !l.IsFrogKilled() {
		t.Error("frog landing in open water should drown")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	l := mustLevel(t, 5, []LaneSpec{
		{Kind: Grass},
		{Kind: Road, Speed: -96, Objects: []ObjectSpec{{Type: "car1", Position: 4}}},
		{Kind: Hedge, Objects: []ObjectSpec{{Type: "exit", Position: 2}}},
	})
	s := l.Snapshot()
	if s.Width != 5 || s.Height != 3 {
		t.Errorf("snapshot size = %dx%d", s.Width, s.Height)
	}
	if len(s.Lanes) != 3 {
		t.Fatalf("snapshot lanes = %d", len(s.Lanes))
	}
	if s.Lanes[1].Kind != Road || len(s.Lanes[1].Obstacles) != 1 {
		t.Error("road lane not captured")
	}
	if !s.Lanes[2].Obstacles[0].Open {
		t.Error("open exit not marked open in snapshot")
	}
	if !s.FrogVisible || s.FrogFrame != FrameRest {
		t.Error("fresh frog state not captured")
	}
}
