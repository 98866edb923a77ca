package level

import (
	"math"
	"testing"

	"github.com/julialudwig/froggit/internal/core"
)

func testSprite() FrogSprite {
	return FrogSprite{
		Frames: 5,
		Hitboxes: []core.Inset{
			{Left: 10, Top: 10, Right: 10, Bottom: 14},
			{Left: 10, Top: 8, Right: 10, Bottom: 12},
			{Left: 10, Top: 6, Right: 10, Bottom: 10},
			{Left: 10, Top: 4, Right: 10, Bottom: 8},
			{Left: 10, Top: 2, Right: 10, Bottom: 6},
		},
	}
}

func TestFrogSlideSettlesAtDestination(t *testing.T) {
	f := newFrog(2, 0, testSprite())
	startY := f.Y

	f.startSlide(DirUp, 0.25)
	if !f.Sliding() {
		t.Fatal("expected slide in progress")
	}

	done := false
	for i := 0; i < 100 && !done; i++ {
		done = f.stepSlide(1.0 / 60)
	}
	if !done {
		t.Fatal("slide never completed")
	}
	if f.Sliding() {
		t.Error("slide still active after completion")
	}
	if f.Y != startY+GridSize {
		t.Errorf("frog Y = %v, want %v", f.Y, startY+GridSize)
	}
	if f.Frame != FrameRest {
		t.Errorf("frame after slide = %d, want %d", f.Frame, FrameRest)
	}
}

func TestFrogSlideClampsOvershoot(t *testing.T) {
	f := newFrog(1, 1, testSprite())
	startX := f.X

	f.startSlide(DirRight, 0.25)
	f.stepSlide(0.2)
	if done := f.stepSlide(0.2); !done {
		t.Fatal("expected slide to complete on overshoot")
	}
	if f.X != startX+GridSize {
		t.Errorf("frog X = %v, want exactly %v", f.X, startX+GridSize)
	}
}

func TestFrogSlideStretchesMidway(t *testing.T) {
	f := newFrog(2, 2, testSprite())
	f.startSlide(DirLeft, 0.25)
	f.stepSlide(0.0625)
	f.stepSlide(0.0625)
	if f.Frame != FrameStretched {
		t.Errorf("frame at half hop = %d, want %d", f.Frame, FrameStretched)
	}
}

func TestFrogStartSlideAppliesNoDisplacement(t *testing.T) {
	f := newFrog(3, 3, testSprite())
	x, y := f.X, f.Y
	f.startSlide(DirDown, 0.25)
	if f.X != x || f.Y != y {
		t.Errorf("starting a slide moved the frog to (%v, %v)", f.X, f.Y)
	}
}

func TestFrogCancelSlide(t *testing.T) {
	f := newFrog(2, 0, testSprite())
	f.startSlide(DirUp, 0.25)
	f.stepSlide(0.05)
	f.cancelSlide()
	if f.Sliding() {
		t.Error("slide still active after cancel")
	}
	if f.Frame != FrameRest {
		t.Errorf("frame after cancel = %d, want %d", f.Frame, FrameRest)
	}
}

func TestFrogBoxUsesFrameHitbox(t *testing.T) {
	f := newFrog(0, 0, testSprite())
	rest := f.Box()
	f.Frame = FrameStretched
	stretched := f.Box()
	if rest.Top() == stretched.Top() {
		t.Error("expected different hitboxes for rest and stretched frames")
	}
}

func TestSlideFrameSymmetry(t *testing.T) {
	cases := []struct {
		progress float64
		want     int
	}{
		{0, FrameRest},
		{0.25, 2},
		{0.5, FrameStretched},
		{0.75, 2},
		{1, FrameRest},
	}
	for _, tc := range cases {
		if got := slideFrame(tc.progress); got != tc.want {
			t.Errorf("slideFrame(%v) = %d, want %d", tc.progress, got, tc.want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	dx, dy := DirLeft.delta()
	if dx != -GridSize || dy != 0 {
		t.Errorf("left delta = (%v, %v)", dx, dy)
	}
	dx, dy = DirUp.delta()
	if dx != 0 || math.Abs(dy-GridSize) > 1e-9 {
		t.Errorf("up delta = (%v, %v)", dx, dy)
	}
}
