// Package breakout implements the fixed-timestep Breakout simulation: AABB
// collision with primary-axis tie-breaking, velocity reflection, brick
// destruction and scoring.
package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game runs the simulation one fixed tick at a time.
type Game struct {
	cfg       config.BreakoutConfig
	world     *World
	dt        float64 // Fixed step in seconds
	tickCount uint64
	paused    bool
}

// New creates a game from a validated config and builds the arena.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Title returns the display name used as the terminal window title.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset rebuilds the arena and clears the score.
func (g *Game) Reset() {
	g.world = NewWorld(g.cfg)
	g.dt = 1 / float64(g.cfg.Timing.TickRate)
	g.tickCount = 0
	g.paused = false
}

// Step advances the game by one fixed tick from the given input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	events := g.Tick(in.Direction(), g.dt, nil)
	return core.StepResult{State: g.State(), Events: events}
}

// Tick runs the systems in order with an explicit dt: paddle, motion,
// collision, then the despawn flush.
func (g *Game) Tick(dir, dt float64, events []core.Event) []core.Event {
	MovePaddle(g.world, dir, dt)
	ApplyVelocity(g.world, dt)
	events = CheckBallCollisions(g.world, events)
	g.world.Flush()
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score.Score,
		Bricks: g.world.BricksRemaining(),
		Paused: g.paused,
	}
}

// World exposes the simulation state to renderers and tests.
func (g *Game) World() *World {
	return g.world
}

// Config returns the config the arena was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// TickDuration is the fixed step as wall-clock time.
func (g *Game) TickDuration() time.Duration {
	return time.Second / time.Duration(g.cfg.Timing.TickRate)
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}
