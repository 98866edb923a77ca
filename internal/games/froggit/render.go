package froggit

import (
	"fmt"
	"math"
	"strings"

	"github.com/julialudwig/froggit/internal/core"
	"github.com/julialudwig/froggit/internal/level"
)

// Each grid square is two screen columns wide and one row tall.
const (
	cellCols  = 2
	hudHeight = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.loadErr != nil {
		g.renderOverlay(dst, "Failed to load level", g.loadErr.Error())
		return
	}
	if g.state == stateTitle {
		g.renderTitle(dst)
		return
	}

	s := g.level.Snapshot()
	mapW := s.Width * cellCols
	mapH := s.Height
	if dst.Width() < mapW+2 || dst.Height() < mapH+hudHeight+1 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	offX := (dst.Width() - mapW) / 2
	offY := hudHeight

	g.renderLanes(dst, s, offX, offY)
	g.renderFrog(dst, s, offX, offY)

	switch {
	case g.state == stateComplete && g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.state == stateComplete:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.state == stateInterlude:
		g.renderOverlay(dst, g.interludeMsg, "Press Enter to continue")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Froggit"
	if g.level != nil {
		hud = fmt.Sprintf(" Froggit — Score: %d  Lives: %s  Level: %s",
			g.score, strings.Repeat("♥", g.level.Lives()), g.levelID)
	}
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderTitle draws the start screen.
func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "F R O G G I T")
	if g.levelName != "" {
		dst.DrawTextCentered(mid, g.levelName)
	}
	dst.DrawTextCentered(mid+2, "Press Enter to start")
}

// renderLanes draws lane backgrounds bottom to top, then their obstacles
// and any rescued frogs.
func (g *Game) renderLanes(dst *core.Screen, s level.Snapshot, offX, offY int) {
	for i, lane := range s.Lanes {
		y := offY + s.Height - 1 - i
		bg, bgColor := laneBackground(lane.Kind)
		for x := 0; x < s.Width*cellCols; x++ {
			dst.SetColored(offX+x, y, bg, bgColor)
		}
		for _, o := range lane.Obstacles {
			g.renderObstacle(dst, s, o, offX, y)
		}
		for _, m := range lane.SafeFrogs {
			col := pxToCol(m.X - level.GridSize/2)
			drawPair(dst, offX+col, y, '(', ')', core.ColorBrightGreen, offX, s.Width*cellCols)
		}
	}
}

// renderObstacle draws one obstacle across the columns its box covers.
func (g *Game) renderObstacle(dst *core.Screen, s level.Snapshot, o level.ObstacleView, offX, y int) {
	glyph, color := obstacleGlyph(o)
	startCol := pxToCol(o.X - o.W/2)
	nCols := int(math.Round(o.W / level.GridSize * cellCols))
	for c := startCol; c < startCol+nCols; c++ {
		if c < 0 || c >= s.Width*cellCols {
			continue
		}
		dst.SetColored(offX+c, y, glyph, color)
	}
}

// renderFrog draws the frog at its pixel position, stretched glyphs when
// mid-hop.
func (g *Game) renderFrog(dst *core.Screen, s level.Snapshot, offX, offY int) {
	if !s.FrogVisible {
		return
	}
	row := int(s.FrogY / level.GridSize)
	if row < 0 || row >= s.Height {
		return
	}
	y := offY + s.Height - 1 - row
	col := pxToCol(s.FrogX - level.GridSize/2)
	l, r := '(', ')'
	if s.FrogFrame >= level.FrameStretched/2 {
		l, r = '{', '}'
	}
	drawPair(dst, offX+col, y, l, r, core.ColorBrightGreen, offX, s.Width*cellCols)
}

// pxToCol maps a pixel x coordinate to a screen column within the map.
func pxToCol(x float64) int {
	return int(math.Round(x / level.GridSize * cellCols))
}

// drawPair draws a two-cell glyph clipped to the map's columns.
func drawPair(dst *core.Screen, x, y int, l, r rune, c core.Color, mapX, mapW int) {
	if x >= mapX && x < mapX+mapW {
		dst.SetColored(x, y, l, c)
	}
	if x+1 >= mapX && x+1 < mapX+mapW {
		dst.SetColored(x+1, y, r, c)
	}
}

// laneBackground returns the fill glyph for a lane kind.
func laneBackground(k level.Kind) (rune, core.Color) {
	switch k {
	case level.Grass:
		return '░', core.ColorGreen
	case level.Road:
		return ' ', core.ColorDefault
	case level.Water:
		return '~', core.ColorBlue
	case level.Hedge:
		return '▒', core.ColorGreen
	default:
		return ' ', core.ColorDefault
	}
}

// obstacleGlyph returns the fill glyph for an obstacle.
func obstacleGlyph(o level.ObstacleView) (rune, core.Color) {
	switch {
	case strings.HasPrefix(o.Type, "exit"):
		if o.Open {
			return '·', core.ColorGray // open gap in the hedge
		}
		return '▒', core.ColorGreen // claimed exits close up
	case strings.HasPrefix(o.Type, "log"):
		return '═', core.ColorOrange
	case strings.HasPrefix(o.Type, "car"), o.Type == "truck":
		return '█', carColor(o.Type)
	case o.Type == "bush":
		return '▓', core.ColorGreen
	default:
		return '■', core.ColorWhite
	}
}

// carColor varies traffic colors by type name.
func carColor(typ string) core.Color {
	switch typ {
	case "car1":
		return core.ColorRed
	case "car2":
		return core.ColorBrightYellow
	case "car3":
		return core.ColorMagenta
	case "car4":
		return core.ColorCyan
	case "car5":
		return core.ColorBrightRed
	case "truck":
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
