package level

// ObstacleView is a renderer-facing copy of one obstacle.
type ObstacleView struct {
	Type    string
	X, Y    float64 // center, pixels, y-up
	W, H    float64
	Flipped bool
	Open    bool // meaningful for hedge exits only
}

// LaneView is a renderer-facing copy of one lane.
type LaneView struct {
	Kind      Kind
	Bottom    float64 // bottom edge, pixels
	Obstacles []ObstacleView
	SafeFrogs []SafeMarker
}

// Snapshot is an immutable copy of everything a renderer needs to draw
// one frame.
type Snapshot struct {
	ID            string
	Name          string
	Width, Height int
	Lives         int

	FrogX, FrogY float64
	FrogFacing   Direction
	FrogFrame    int
	FrogVisible  bool

	FrogKilled bool
	GameOver   bool
	GameWon    bool

	Lanes []LaneView
}

// Snapshot captures the current simulation state for rendering.
func (l *Level) Snapshot() Snapshot {
	s := Snapshot{
		ID:          l.desc.ID,
		Name:        l.desc.Name,
		Width:       l.desc.Width,
		Height:      l.desc.Height,
		Lives:       l.lives,
		FrogX:       l.frog.X,
		FrogY:       l.frog.Y,
		FrogFacing:  l.frog.Facing,
		FrogFrame:   l.frog.Frame,
		FrogVisible: l.frog.Visible,
		FrogKilled:  l.frogKilled,
		GameOver:    l.gameOver,
		GameWon:     l.IsGameWon(),
	}
	for _, lane := range l.lanes {
		lv := LaneView{
			Kind:   lane.kind,
			Bottom: lane.tile.Y - lane.tile.H/2,
		}
		for i, o := range lane.objs {
			ov := ObstacleView{
				Type:    o.Type,
				X:       o.Box.X,
				Y:       o.Box.Y,
				W:       o.Box.W,
				H:       o.Box.H,
				Flipped: o.Flipped,
			}
			if lane.hedge != nil {
				ov.Open = lane.hedge.open[i]
			}
			lv.Obstacles = append(lv.Obstacles, ov)
		}
		if lane.hedge != nil {
			lv.SafeFrogs = append(lv.SafeFrogs, lane.hedge.safe...)
		}
		s.Lanes = append(s.Lanes, lv)
	}
	return s
}
