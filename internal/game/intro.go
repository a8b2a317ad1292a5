package game

import (
	"github.com/nybblesio/ckong/internal/actor"
	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/timer"
)

// Donkey Kong's climb in the introduction.
const (
	introStartX = 124
	introStartY = 176
	introTopY   = 30
	introStep   = 25 // ms per pixel
)

// introState shows Donkey Kong climbing the intro ladders with Pauline.
type introState struct {
	timer *timer.Timer
	done  bool
}

func (s *introState) Enter(ctx *Context) {
	ctx.resetScreen()
	ctx.Video.SetBackground(ctx.Maps.Map(tilemap.MapIntro))
	drawHighScore(ctx)
	s.done = false

	dk := ctx.Actors.Lookup(actor.DonkeyKong)
	dk.X, dk.Y = introStartX, introStartY
	dk.SetAnimation(actor.KindDonkeyKongClimb, ctx.Ticks)
	dk.Enable()

	s.timer = ctx.Timers.Start(ctx.Ticks, introStep, func(*timer.Timer, uint32) bool {
		dk.Y--
		if dk.Y > introTopY {
			return true
		}
		dk.SetAnimation(actor.KindDonkeyKongStand, ctx.Ticks)
		s.done = true
		return false
	}, nil)
}

func (s *introState) Update(ctx *Context) {
	if s.done || s.timer == nil || ctx.Controller.Pressed(core.ButtonStart) {
		ctx.Transition(StateHowHigh)
	}
}

func (s *introState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}

// howHighState shows the height reached before each stage.
type howHighState struct {
	timer *timer.Timer
	done  bool
}

func (s *howHighState) Enter(ctx *Context) {
	ctx.resetScreen()
	drawHighScore(ctx)

	stage := ctx.Player.Stage
	for i := 0; i < stage; i++ {
		row := 26 - i*4
		ctx.Video.BgPrintf(row, 12, assets.PaletteText, true, "%3d m", 25*(i+1))
	}
	ctx.Video.BgString(29, 5, assets.PaletteText, true, "HOW HIGH CAN YOU GET ?")
	ctx.Video.BgPrintf(3, 23, assets.PaletteTextCyan, true, "L=%02d", ctx.Player.Level)

	dk := ctx.Actors.Lookup(actor.DonkeyKong)
	dk.X, dk.Y = 72, int16(26-(stage-1)*4)*8-24
	dk.SetAnimation(actor.KindDonkeyKongStand, ctx.Ticks)
	dk.Enable()

	s.timer = ctx.after(ctx.Config.Timing.HowHigh, &s.done)
}

func (s *howHighState) Update(ctx *Context) {
	if s.done || s.timer == nil {
		ctx.Transition(stageState(ctx.Player.Stage))
	}
}

func (s *howHighState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}
