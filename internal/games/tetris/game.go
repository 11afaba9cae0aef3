package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// configPath is the rules file chosen on the command line.
var configPath string

// SetConfigPath sets the rules file used by subsequent Resets.
// An empty path uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session and its Loop to the registry.Game interface.
// Each Step advances a virtual clock by one simulation tick so gravity
// stays deterministic for a given seed and input sequence.
type Game struct {
	session    *Session
	loop       *Loop
	clock      time.Duration
	tickDur    time.Duration
	onGameOver GameOverFunc
}

// New creates an unstarted Tetris game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// OnGameOver registers fn to be called with the final score whenever the
// game tops out. It survives Reset.
func (g *Game) OnGameOver(fn func(finalScore int)) {
	g.onGameOver = fn
}

// Reset loads the rules and starts a fresh session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tetrisCfg, err := config.LoadTetris(configPath)
	if err != nil {
		tetrisCfg = config.DefaultTetrisConfig()
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	if g.loop != nil {
		g.loop.Cancel()
	}

	g.tickDur = time.Second / time.Duration(tickRate)
	g.clock = 0
	g.session = NewSession(
		RulesFromConfig(tetrisCfg),
		NewRandSource(cfg.Seed),
		WithGameOverFunc(g.gameOver),
	)
	g.loop = NewLoop(g.session)
}

func (g *Game) gameOver(finalScore int) {
	if g.onGameOver != nil {
		g.onGameOver(finalScore)
	}
}

// Step applies the frame's actions in order and advances gravity by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, action := range in.Sequence() {
		g.apply(action)
	}

	g.clock += g.tickDur
	g.loop.Frame(g.clock)

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		g.session.Move(-1)
	case core.ActionRight:
		g.session.Move(1)
	case core.ActionSoftDrop:
		g.session.SoftDrop()
	case core.ActionHardDrop:
		g.session.HardDrop()
	case core.ActionRotateCW:
		g.session.Rotate(1)
	case core.ActionRotateCCW:
		g.session.Rotate(-1)
	case core.ActionHold:
		g.session.Hold()
	case core.ActionPause:
		g.session.TogglePause()
	case core.ActionRestart:
		g.session.Reset()
		g.loop.Rearm()
	}
}

// State returns the current score and status flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
