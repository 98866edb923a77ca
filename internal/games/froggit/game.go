// Package froggit implements the Froggit game: guide a frog across
// traffic and a river into the exits of the far hedge. The package wraps
// the pure level simulation in the platform's game interface and carries
// the outer state machine (title, active, between-lives pause, complete).
package froggit

import (
	"path/filepath"

	"github.com/julialudwig/froggit/internal/config"
	"github.com/julialudwig/froggit/internal/core"
	"github.com/julialudwig/froggit/internal/level"
	"github.com/julialudwig/froggit/internal/levels"
	"github.com/julialudwig/froggit/internal/registry"
)

// gameState is the outer application state.
type gameState int

const (
	stateTitle     gameState = iota // Waiting for the first key
	stateActive                     // Level running
	stateInterlude                  // Between lives or after an exit claim
	stateComplete                   // Won or lost
)

// Game implements the Froggit game.
type Game struct {
	cfg     core.RuntimeConfig
	gameCfg config.FroggitConfig
	dt      float64

	state        gameState
	level        *level.Level
	levelID      string
	levelName    string
	loadErr      error
	score        int
	won          bool
	paused       bool
	interludeMsg string

	cues []core.Cue
}

// Package-level variables set by the CLI before the game is created.
var (
	levelID          string
	levelDir         string
	levelFile        string
	configPath       string
	objectsPath      string
	difficultyPreset string
)

// SetLevelID selects which level to play by ID.
func SetLevelID(id string) {
	levelID = id
}

// SetLevelDir adds a directory of level files that shadows the embedded
// levels.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetLevelFile selects a single level file to play, bypassing ID lookup.
func SetLevelFile(path string) {
	levelFile = path
}

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetObjectsPath sets a custom object table file path.
func SetObjectsPath(path string) {
	objectsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Froggit game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("froggit", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "froggit"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Froggit"
}

// LevelID returns the ID of the level being played.
func (g *Game) LevelID() string {
	return g.levelID
}

// Won reports whether the finished session ended in a win.
func (g *Game) Won() bool {
	return g.won
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.state = stateTitle
	g.level = nil
	g.loadErr = nil
	g.score = 0
	g.won = false
	g.paused = false
	g.interludeMsg = ""
	g.cues = nil

	gameCfg, err := config.LoadFroggit(configPath)
	if err != nil {
		g.loadErr = err
		return
	}
	if difficultyPreset != "" {
		config.ApplyFroggitPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.gameCfg = gameCfg

	g.level, err = g.buildLevel()
	if err != nil {
		g.loadErr = err
	}
}

// buildLevel resolves the level selection and object table and constructs
// the simulation.
func (g *Game) buildLevel() (*level.Level, error) {
	var (
		lvl levels.Level
		err error
	)
	if levelFile != "" {
		lvl, err = levels.NewLoader(filepath.Dir(levelFile)).LoadFile(levelFile)
	} else {
		id := levelID
		if id == "" {
			id = "easy"
		}
		lvl, err = levels.ByID(id, levelDir)
	}
	if err != nil {
		return nil, err
	}

	desc, err := lvl.Descriptor()
	if err != nil {
		return nil, err
	}

	var table level.ObjectTable
	if objectsPath != "" {
		table, err = levels.LoadObjects(objectsPath)
	} else {
		table, err = levels.BuiltinObjects()
	}
	if err != nil {
		return nil, err
	}

	g.levelID = lvl.ID
	g.levelName = lvl.Name
	return level.New(desc, table, level.Options{
		Lives:        g.gameCfg.Frog.Lives,
		SlideSeconds: g.gameCfg.Frog.SlideSeconds,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.cues = nil

	switch g.state {
	case stateTitle:
		if input.Has(core.ActionConfirm) && g.loadErr == nil {
			g.state = stateActive
		}
	case stateActive:
		g.stepActive(input)
	case stateInterlude:
		if input.Has(core.ActionConfirm) {
			g.level.SetInitialFrog()
			g.state = stateActive
		}
	case stateComplete:
		if input.Has(core.ActionRestart) {
			g.Reset(g.cfg)
		}
	}

	if g.level != nil {
		g.cues = append(g.cues, g.level.TakeCues()...)
	}
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// stepActive runs one tick of the level and watches for life and game
// boundaries. The kill and exit queries run before the update, so a frog
// that died or escaped last tick pauses the level before anything moves.
func (g *Game) stepActive(input core.InputFrame) {
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	key := directionFrom(input)

	killed := g.level.IsFrogKilled()
	inExit := false
	if !killed {
		inExit = g.level.IsInExit(key)
		if inExit {
			g.score += g.gameCfg.Scoring.ExitPoints
		}
	}
	won := g.level.IsGameWon()
	over := g.level.IsGameOver()

	switch {
	case killed && !over:
		g.interludeMsg = "Splat!"
		g.state = stateInterlude
	case inExit && !won:
		g.interludeMsg = "Safe!"
		g.state = stateInterlude
	case over || won:
		if won {
			g.won = true
			g.score += g.level.Lives() * g.gameCfg.Scoring.LifeBonus
		}
		g.state = stateComplete
	default:
		g.level.Update(g.dt, key)
	}
}

// directionFrom maps input actions to a single movement key. At most one
// key registers per tick; left wins over right, and horizontal over
// vertical.
func directionFrom(input core.InputFrame) level.Direction {
	switch {
	case input.Has(core.ActionLeft):
		return level.DirLeft
	case input.Has(core.ActionRight):
		return level.DirRight
	case input.Has(core.ActionUp):
		return level.DirUp
	case input.Has(core.ActionDown):
		return level.DirDown
	}
	return level.DirNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == stateComplete,
		Paused:   g.paused || g.state == stateInterlude,
	}
}
