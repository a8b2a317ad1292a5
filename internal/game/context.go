// Package game wires the engine subsystems into the per-frame context and
// implements the screens of the game as states on the state stack.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/nybblesio/ckong/internal/actor"
	"github.com/nybblesio/ckong/internal/config"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/machine"
	"github.com/nybblesio/ckong/internal/state"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/timer"
	"github.com/nybblesio/ckong/internal/video"
)

// ScoreSink records finished games. storage.Store implements it.
type ScoreSink interface {
	SaveScore(initials string, score, level, stage int) (int64, error)
}

// Player is the progress of the game in play.
type Player struct {
	Initials string
	Score    uint32
	Lives    int
	Level    int // increments each time the stage sequence wraps
	Stage    int // one-based
	Bonus    uint32
}

// Reset starts a new game.
func (p *Player) Reset(cfg config.Config) {
	p.Initials = cfg.Player.Initials
	p.Score = 0
	p.Lives = cfg.Player.Lives
	p.Level = 1
	p.Stage = 1
	p.Bonus = 0
}

// Progress returns the number of stages reached across all levels.
func (p *Player) Progress() int {
	return (p.Level-1)*tilemap.Stages + p.Stage
}

// Context is everything a state can touch during a frame. It is owned by
// the Engine and only used from the frame goroutine.
type Context struct {
	Ticks      uint32
	Config     config.Config
	Paths      config.PathsConfig
	Controller *core.Controller
	Video      *video.Compositor
	Actors     *actor.Registry
	Timers     *timer.Registry
	States     *state.Machine[*Context]
	Machine    *machine.Machine
	Maps       *tilemap.Table
	Difficulty *config.DifficultyManager
	Scores     ScoreSink
	Log        *log.Logger
	Player     Player

	editor editorSession
	quit   bool
}

// Quit asks the engine to stop after the current frame.
func (c *Context) Quit() { c.quit = true }

// Transition pops the active state and pushes id in its place.
func (c *Context) Transition(id state.ID) {
	if err := c.States.Replace(c, id); err != nil {
		c.Log.Error("transition failed", "state", c.States.Name(id), "err", err)
	}
}

// Push stacks id above the active state.
func (c *Context) Push(id state.ID) {
	if err := c.States.Push(c, id); err != nil {
		c.Log.Error("push failed", "state", c.States.Name(id), "err", err)
	}
}

// Pop returns to the parent state.
func (c *Context) Pop() {
	if err := c.States.Pop(c); err != nil {
		c.Log.Error("pop failed", "err", err)
	}
}

// resetScreen clears everything a previous state could have left on screen.
func (c *Context) resetScreen() {
	c.Video.ClearBlinkers()
	c.Video.ResetBackground()
	c.Video.ClipRectClear()
	c.Actors.Reset()
}

// after starts a one-shot timer that sets *done when it fires.
func (c *Context) after(duration uint32, done *bool) *timer.Timer {
	*done = false
	return c.Timers.Start(c.Ticks, duration, func(*timer.Timer, uint32) bool {
		*done = true
		return false
	}, nil)
}
