package game

import (
	"errors"
	"fmt"
	"io"

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

// ErrHalted is returned by Frame once the state stack has emptied.
var ErrHalted = errors.New("game: state stack empty")

// Options configures a new Engine. Nil collaborators get defaults: the
// built-in tile maps, a fresh machine, no score history and a discarding
// logger.
type Options struct {
	Config  config.Config
	Paths   config.PathsConfig
	Bank    *video.Bank
	Maps    *tilemap.Table
	Machine *machine.Machine
	Scores  ScoreSink
	Logger  *log.Logger
}

// Engine owns the subsystems and runs one frame at a time.
type Engine struct {
	ctx *Context
	log *log.Logger

	frames   int
	fpsStart uint32
	fps      int
}

// NewEngine creates an engine with every state registered and the stack
// empty.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Maps == nil {
		opts.Maps = tilemap.DefaultTable()
	}
	if opts.Machine == nil {
		opts.Machine = machine.New()
	}

	ctx := &Context{
		Config:     opts.Config,
		Paths:      opts.Paths,
		Controller: core.NewController(),
		Video:      video.New(opts.Bank, logger.WithPrefix("video")),
		Actors:     actor.NewRegistry(),
		Timers:     timer.NewRegistry(),
		States:     state.New[*Context](logger.WithPrefix("state")),
		Machine:    opts.Machine,
		Maps:       opts.Maps,
		Difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		Scores:     opts.Scores,
		Log:        logger.WithPrefix("app"),
	}
	registerStates(ctx.States)

	return &Engine{ctx: ctx, log: ctx.Log}
}

// Context exposes the frame context to the presentation layer and tests.
func (e *Engine) Context() *Context { return e.ctx }

// Start pushes the initial state.
func (e *Engine) Start(id state.ID) error {
	return e.ctx.States.Push(e.ctx, id)
}

// Done reports whether a state asked to quit.
func (e *Engine) Done() bool { return e.ctx.quit }

// FPS returns the frame rate measured over the last full second.
func (e *Engine) FPS() int { return e.fps }

// Frame advances the simulation to now and rasterizes the result. The
// post-pass text is left queued for the presentation layer.
func (e *Engine) Frame(now uint32) error {
	ctx := e.ctx
	ctx.Ticks = now
	ctx.Video.Begin(now)

	ctx.Controller.Poll(now)
	ctx.Timers.Update(now)
	if err := ctx.States.Update(ctx); err != nil {
		if errors.Is(err, state.ErrEmpty) {
			return ErrHalted
		}
		return fmt.Errorf("game: update: %w", err)
	}
	ctx.Actors.Update(now, ctx.Video)
	ctx.Video.Update(now)

	e.frames++
	if now-e.fpsStart >= 1000 {
		e.fps = e.frames
		e.log.Debug("frame rate", "fps", e.fps, "timers", ctx.Timers.Active())
		e.frames = 0
		e.fpsStart = now
	}
	return nil
}

// Shutdown leaves the active states and writes the machine file.
func (e *Engine) Shutdown() error {
	e.ctx.States.Clear(e.ctx)
	if e.ctx.Paths.Machine == "" {
		return nil
	}
	if err := e.ctx.Machine.Save(e.ctx.Paths.Machine); err != nil {
		return fmt.Errorf("game: save machine: %w", err)
	}
	return nil
}
