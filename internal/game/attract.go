package game

import (
	"github.com/nybblesio/ckong/internal/actor"
	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/timer"
	"github.com/nybblesio/ckong/internal/video"
)

// bootState fades the screen in by sweeping the fill palette.
type bootState struct {
	palette int
	timer   *timer.Timer
	done    bool
}

func (s *bootState) Enter(ctx *Context) {
	ctx.resetScreen()
	s.palette = 0
	s.done = false
	ctx.Video.FillBackground(assets.TileBoot, 0)
	s.timer = ctx.Timers.Start(ctx.Ticks, ctx.Config.Timing.BootStep, func(*timer.Timer, uint32) bool {
		s.palette++
		if s.palette >= video.PaletteMax {
			s.done = true
			return false
		}
		ctx.Video.FillBackground(assets.TileBoot, uint8(s.palette))
		return true
	}, nil)
}

func (s *bootState) Update(ctx *Context) {
	// Without a timer slot the sweep can never finish.
	if s.done || s.timer == nil {
		ctx.Transition(StateInsertCoin)
	}
}

func (s *bootState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}

// insertCoinState waits for credits. Idle time alternates the title and
// high score screens on top of it.
type insertCoinState struct {
	idle    *timer.Timer
	idled   bool
	attract int
	prompt  *video.Blinker
}

func (s *insertCoinState) Enter(ctx *Context) {
	ctx.resetScreen()
	drawHighScore(ctx)
	ctx.Video.BgString(14, 10, assets.PaletteTextYellow, true, "INSERT COIN")
	s.prompt = ctx.Video.Blink(14, 10, 1, 11, ctx.Config.Timing.Blink*2, nil)
	ctx.Video.BgString(18, 7, assets.PaletteTextCyan, true, "1 PLAYER  1 COIN")
	drawCredits(ctx)
	s.idle = ctx.after(ctx.Config.Timing.AttractIdle, &s.idled)
}

func (s *insertCoinState) Update(ctx *Context) {
	in := ctx.Controller
	switch {
	case in.Pressed(core.ButtonBack):
		if ctx.Machine.AddCredit() {
			ctx.Push(StateCredit)
		}
	case in.Pressed(core.ButtonStart) && ctx.Machine.UseCredit():
		ctx.Player.Reset(ctx.Config)
		ctx.Log.Info("game started", "credits", ctx.Machine.Credits)
		ctx.Transition(StateLongIntroduction)
	case s.idled:
		s.attract++
		if s.attract%2 == 1 {
			ctx.Push(StateTitle)
		} else {
			ctx.Push(StateHighScore)
		}
	}
}

func (s *insertCoinState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.idle)
	s.idle = nil
	s.prompt = nil
}

func drawCredits(ctx *Context) {
	ctx.Video.BgPrintf(31, 20, assets.PaletteText, true, "CREDIT %02d", ctx.Machine.Credits)
}

// creditState confirms an inserted coin.
type creditState struct {
	timer *timer.Timer
	done  bool
}

func (s *creditState) Enter(ctx *Context) {
	ctx.resetScreen()
	drawHighScore(ctx)
	s.show(ctx)
}

func (s *creditState) show(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	ctx.Video.BgPrintf(16, 11, assets.PaletteTextYellow, true, "CREDIT %02d", ctx.Machine.Credits)
	drawCredits(ctx)
	s.timer = ctx.after(ctx.Config.Timing.Credit, &s.done)
}

func (s *creditState) Update(ctx *Context) {
	if ctx.Controller.Pressed(core.ButtonBack) && ctx.Machine.AddCredit() {
		s.show(ctx)
		return
	}
	if s.done {
		ctx.Pop()
	}
}

func (s *creditState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}

// titleState is the attract screen with the cast standing on the intro map.
type titleState struct {
	timer *timer.Timer
	done  bool
}

func (s *titleState) Enter(ctx *Context) {
	ctx.resetScreen()
	drawHighScore(ctx)
	ctx.Video.BgString(8, 13, assets.PaletteTextRed, true, "C KONG")
	ctx.Video.BgString(26, 6, assets.PaletteTextCyan, true, "PUSH COIN TO START")

	dk := ctx.Actors.Lookup(actor.DonkeyKong)
	dk.X, dk.Y = 112, 120
	dk.SetAnimation(actor.KindDonkeyKongStand, ctx.Ticks)
	dk.Enable()

	p := ctx.Actors.Lookup(actor.Pauline)
	p.X, p.Y = 72, 120
	p.SetAnimation(actor.KindPaulineHelp, ctx.Ticks)
	p.Enable()

	s.timer = ctx.after(ctx.Config.Timing.Title, &s.done)
}

func (s *titleState) Update(ctx *Context) {
	// A coin ends the attract loop early. InsertCoin counts it while the
	// hold lasts.
	if s.done || ctx.Controller.Held(core.ButtonBack) {
		ctx.Pop()
	}
}

func (s *titleState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}

// highScoreState lists the machine high score table.
type highScoreState struct {
	timer *timer.Timer
	done  bool
}

var rankSuffix = [...]string{"ST", "ND", "RD", "TH", "TH"}

func (s *highScoreState) Enter(ctx *Context) {
	ctx.resetScreen()
	drawHighScore(ctx)
	ctx.Video.BgString(8, 7, assets.PaletteTextRed, true, "RANK  SCORE   NAME")
	for i, entry := range ctx.Machine.Table {
		palette := assets.PaletteTextYellow
		if i > 0 {
			palette = assets.PaletteText
		}
		ctx.Video.BgPrintf(11+i*2, 7, palette, true, "%d%s   %06d  %s",
			i+1, rankSuffix[i], entry.Score, entry.Initials())
	}
	drawCredits(ctx)
	s.timer = ctx.after(ctx.Config.Timing.HighScore, &s.done)
}

func (s *highScoreState) Update(ctx *Context) {
	if s.done || ctx.Controller.Held(core.ButtonBack) || ctx.Controller.Held(core.ButtonStart) {
		ctx.Pop()
	}
}

func (s *highScoreState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.timer)
	s.timer = nil
}
