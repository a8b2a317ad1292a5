// Package actor holds the fixed set of animated game characters and stamps
// their current animation frames into the sprite pool.
package actor

import "github.com/nybblesio/ckong/internal/video"

// ID identifies one of the pre-allocated actors.
type ID uint8

const (
	Mario ID = iota
	DonkeyKong
	Pauline
	OilBarrel
	OilFire
	Bonus
	Count
)

// Flags is the actor behavior bitset.
type Flags uint8

const (
	FlagNone    Flags = 0b00000000
	FlagEnabled Flags = 0b00000001
)

// CompletionFunc runs when an animation wraps past its last frame.
// Returning false ends the animation.
type CompletionFunc func(a *Actor) bool

// Actor is a positioned, animated entity. Data1 and Data2 are scratch
// fields owned by whichever state drives the actor.
type Actor struct {
	X, Y       int16
	Frame      int
	Data1      uint16
	Data2      uint16
	Flags      Flags
	OnComplete CompletionFunc

	animation *Animation
	kind      Kind
	nextTick  uint32
}

// Enabled reports whether the actor is drawn and animated.
func (a *Actor) Enabled() bool { return a.Flags&FlagEnabled != 0 }

// Enable turns the actor on.
func (a *Actor) Enable() { a.Flags |= FlagEnabled }

// Disable hides the actor without touching its other state.
func (a *Actor) Disable() { a.Flags &^= FlagEnabled }

// Kind returns the assigned animation kind.
func (a *Actor) Kind() Kind { return a.kind }

// Animation returns the assigned animation, nil when none.
func (a *Actor) Animation() *Animation { return a.animation }

// NextTick returns the tick at which the next frame is due.
func (a *Actor) NextTick() uint32 { return a.nextTick }

// SetAnimation assigns an animation kind. Reassigning the active kind is a
// no-op, so per-frame logic may call it unconditionally. Kinds missing from
// the table leave the actor without an animation.
func (a *Actor) SetAnimation(kind Kind, now uint32) {
	if a.kind == kind {
		return
	}
	a.Frame = 0
	anim, ok := Lookup(kind)
	if !ok {
		a.clearAnimation()
		return
	}
	a.kind = kind
	a.animation = anim
	a.nextTick = now + anim.Frames[0].Delay
}

func (a *Actor) clearAnimation() {
	a.kind = KindNone
	a.animation = nil
	a.nextTick = 0
	a.Frame = 0
}

func (a *Actor) advance(now uint32) {
	a.Frame++
	if a.Frame >= a.animation.FrameCount() {
		a.Frame = 0
		if a.OnComplete != nil && !a.OnComplete(a) {
			a.clearAnimation()
			return
		}
		// The callback may have assigned a different animation.
		if a.animation == nil {
			return
		}
	}
	a.nextTick = now + a.animation.Frames[a.Frame].Delay
}

// SpriteSink receives the stamped sprites. The compositor implements it.
type SpriteSink interface {
	ResetSprites()
	Sprite(n int) *video.SpriteControlBlock
}

// Registry is the fixed actor table.
type Registry struct {
	actors [Count]Actor
}

// NewRegistry returns a registry with every actor reset.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup returns the actor for id, or nil for an invalid id.
func (r *Registry) Lookup(id ID) *Actor {
	if id >= Count {
		return nil
	}
	return &r.actors[id]
}

// Reset clears every actor: flags, animations, callbacks and scratch data.
func (r *Registry) Reset() {
	for i := range r.actors {
		r.actors[i] = Actor{}
	}
}

// Update resets the sprite pool, stamps the current frame of every enabled
// actor into it and advances animations that are due. Stamping stops once
// the pool is full.
func (r *Registry) Update(now uint32, sink SpriteSink) {
	sink.ResetSprites()

	n := 0
	for i := range r.actors {
		a := &r.actors[i]
		if !a.Enabled() || a.animation == nil {
			continue
		}

		frame := &a.animation.Frames[a.Frame]
		for _, ft := range frame.Tiles {
			spr := sink.Sprite(n)
			if spr == nil {
				break
			}
			n++
			spr.X = a.X + ft.DX
			spr.Y = a.Y + ft.DY
			spr.Tile = ft.Tile
			spr.Palette = ft.Palette
			spr.Flags = spr.Flags.With(ft.Flags | video.SprEnabled)
		}

		if a.animation.FrameCount() > 1 && now >= a.nextTick {
			a.advance(now)
		}
	}
}
