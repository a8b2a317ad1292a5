package game

import (
	"github.com/nybblesio/ckong/internal/actor"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/timer"
)

// Starting positions, in pixels.
const (
	marioStartX     = 40
	marioStartY     = 232
	donkeyKongX     = 72
	donkeyKongY     = 24
	paulineX        = 136
	paulineY        = 24
	oilBarrelX      = 16
	oilBarrelY      = 232
	climbBonus      = 100
	climbBonusBlink = 3
)

// Mario's state bits, kept in Actor.Data2. Actor.Data1 counts down the
// jump.
const (
	marioClimbing uint16 = 1 << iota
	marioFacingLeft
)

// stageScreen runs one stage. The four game screen states share it with
// different stage numbers.
type stageScreen struct {
	stage     int
	bonus     *timer.Timer
	expired   bool
	climbBase int16
}

func (s *stageScreen) Enter(ctx *Context) {
	ctx.resetScreen()
	ctx.Video.SetBackground(ctx.Maps.Map(tilemap.StageMap(s.stage)))

	ctx.Player.Stage = s.stage
	ctx.Player.Bonus = ctx.Config.Gameplay.BonusStart
	drawHeader(ctx)

	mario := ctx.Actors.Lookup(actor.Mario)
	mario.X, mario.Y = marioStartX, marioStartY
	mario.SetAnimation(actor.KindMarioStandRight, ctx.Ticks)
	mario.Enable()

	place(ctx, actor.DonkeyKong, donkeyKongX, donkeyKongY, actor.KindDonkeyKongStand)
	place(ctx, actor.Pauline, paulineX, paulineY, actor.KindPaulineHelp)
	place(ctx, actor.OilBarrel, oilBarrelX, oilBarrelY, actor.KindOilBarrel)
	place(ctx, actor.OilFire, oilBarrelX, oilBarrelY-16, actor.KindOilFire)

	s.expired = false
	interval := ctx.Difficulty.Interval(ctx.Config.Timing.BonusInterval, ctx.Player.Progress(), int(ctx.Player.Score))
	s.bonus = ctx.Timers.Start(ctx.Ticks, interval, func(*timer.Timer, uint32) bool {
		step := ctx.Config.Gameplay.BonusStep
		if ctx.Player.Bonus <= step {
			ctx.Player.Bonus = 0
			s.expired = true
		} else {
			ctx.Player.Bonus -= step
		}
		updateBonus(ctx)
		return !s.expired
	}, nil)
	ctx.Log.Debug("stage", "stage", s.stage, "level", ctx.Player.Level, "bonus_interval", interval)
}

func place(ctx *Context, id actor.ID, x, y int16, kind actor.Kind) {
	a := ctx.Actors.Lookup(id)
	a.X, a.Y = x, y
	a.SetAnimation(kind, ctx.Ticks)
	a.Enable()
}

func (s *stageScreen) Update(ctx *Context) {
	if ctx.Controller.Pressed(core.ButtonBack) {
		ctx.Machine.AddCredit()
	}

	if s.expired {
		s.loseLife(ctx)
		return
	}

	mario := ctx.Actors.Lookup(actor.Mario)
	s.moveMario(ctx, mario)

	if mario.Y < ctx.Config.Gameplay.GoalLine {
		s.clear(ctx)
	}
}

func (s *stageScreen) Leave(ctx *Context) {
	ctx.Timers.Stop(s.bonus)
	s.bonus = nil
}

// moveMario applies one frame of input to Mario.
func (s *stageScreen) moveMario(ctx *Context, m *actor.Actor) {
	rules := ctx.Config.Gameplay
	in := ctx.Controller

	// One direction per frame: right, then left, then the ladder.
	climbing := m.Data2&marioClimbing != 0
	walking := false
	switch {
	case !climbing && in.Held(core.ButtonDpadRight):
		m.X += rules.Step
		m.Data2 &^= marioFacingLeft
		walking = true
	case !climbing && in.Held(core.ButtonDpadLeft):
		m.X -= rules.Step
		m.Data2 |= marioFacingLeft
		walking = true
	case m.Data1 == 0 && in.Held(core.ButtonDpadUp):
		s.climbUp(ctx, m)
	case m.Data1 == 0 && climbing && in.Held(core.ButtonDpadDown):
		s.climbDown(ctx, m)
	}
	if walking {
		m.X = int16(core.Clamp(int(m.X), int(rules.MinX), int(rules.MaxX)))
	}

	if m.Data1 == 0 && m.Data2&marioClimbing == 0 && in.Pressed(core.ButtonA) {
		m.Data1 = rules.JumpTicks
	}

	if m.Data1 > 0 {
		if m.Data1 > rules.JumpApex {
			m.Y -= rules.Step
		} else {
			m.Y += rules.Step
		}
		m.Data1--
	}

	m.SetAnimation(marioAnimation(m, walking), ctx.Ticks)
}

// onLadder samples the background cell behind Mario's lower half.
func onLadder(ctx *Context, x, y int16) (int, bool) {
	tx := (int(x) + 8) / 8
	ty := (int(y) + 8) / 8
	cell := ctx.Video.Tile(tx, ty)
	return tx, cell != nil && cell.Tile == ctx.Config.Gameplay.LadderTile
}

func (s *stageScreen) climbUp(ctx *Context, m *actor.Actor) {
	tx, ok := onLadder(ctx, m.X, m.Y)
	climbing := m.Data2&marioClimbing != 0
	if !ok {
		if climbing {
			m.Data2 &^= marioClimbing
			s.awardClimb(ctx, m)
		}
		return
	}
	if !climbing {
		s.climbBase = m.Y
		m.Data2 |= marioClimbing
	}
	m.X = int16(tx*8 - 4)
	m.Y -= ctx.Config.Gameplay.ClimbStep
}

func (s *stageScreen) climbDown(ctx *Context, m *actor.Actor) {
	m.Y += ctx.Config.Gameplay.ClimbStep
	if m.Y >= s.climbBase {
		m.Y = s.climbBase
		m.Data2 &^= marioClimbing
	}
}

// awardClimb scores a ladder and flashes the points above Mario.
func (s *stageScreen) awardClimb(ctx *Context, m *actor.Actor) {
	ctx.Player.Score += climbBonus
	updateScore(ctx)

	b := ctx.Actors.Lookup(actor.Bonus)
	b.X, b.Y = m.X, m.Y-16
	b.Data1 = climbBonusBlink
	b.OnComplete = func(a *actor.Actor) bool {
		a.Data1--
		if a.Data1 == 0 {
			a.Disable()
			return false
		}
		return true
	}
	b.SetAnimation(actor.KindBonus100, ctx.Ticks)
	b.Enable()
}

func marioAnimation(m *actor.Actor, walking bool) actor.Kind {
	left := m.Data2&marioFacingLeft != 0
	switch {
	case m.Data1 > 0:
		if left {
			return actor.KindMarioJumpLeft
		}
		return actor.KindMarioJumpRight
	case m.Data2&marioClimbing != 0:
		return actor.KindMarioClimb
	case walking:
		if left {
			return actor.KindMarioWalkLeft
		}
		return actor.KindMarioWalkRight
	case left:
		return actor.KindMarioStandLeft
	default:
		return actor.KindMarioStandRight
	}
}

// clear banks the remaining bonus and moves on to the next stage.
func (s *stageScreen) clear(ctx *Context) {
	p := &ctx.Player
	p.Score += p.Bonus
	ctx.Log.Info("stage cleared", "stage", p.Stage, "level", p.Level, "bonus", p.Bonus, "score", p.Score)

	p.Stage++
	if p.Stage > tilemap.Stages {
		p.Stage = 1
		p.Level++
	}
	ctx.Transition(StateHowHigh)
}

func (s *stageScreen) loseLife(ctx *Context) {
	p := &ctx.Player
	p.Lives--
	ctx.Log.Info("life lost", "lives", p.Lives, "stage", p.Stage)
	if p.Lives > 0 {
		ctx.Transition(StateHowHigh)
		return
	}
	gameOver(ctx)
}

// gameOver records the score and returns to the attract loop by way of
// the high score table.
func gameOver(ctx *Context) {
	p := &ctx.Player
	ctx.Log.Info("game over", "score", p.Score, "level", p.Level, "stage", p.Stage)

	if ctx.Scores != nil {
		if _, err := ctx.Scores.SaveScore(p.Initials, int(p.Score), p.Level, p.Stage); err != nil {
			ctx.Log.Warn("cannot save score", "err", err)
		}
	}
	if rank := ctx.Machine.Insert(p.Initials, p.Score); rank >= 0 {
		ctx.Log.Info("new high score", "rank", rank+1, "score", p.Score)
	}
	if ctx.Paths.Machine != "" {
		if err := ctx.Machine.Save(ctx.Paths.Machine); err != nil {
			ctx.Log.Warn("cannot save machine", "err", err)
		}
	}

	ctx.Transition(StateInsertCoin)
	ctx.Push(StateHighScore)
}
