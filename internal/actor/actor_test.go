package actor

import (
	"testing"

	"github.com/nybblesio/ckong/internal/video"
)

type fakeSink struct {
	sprites [video.SpriteMax]video.SpriteControlBlock
	resets  int
}

func (s *fakeSink) ResetSprites() {
	s.resets++
	s.sprites = [video.SpriteMax]video.SpriteControlBlock{}
}

func (s *fakeSink) Sprite(n int) *video.SpriteControlBlock {
	if n < 0 || n >= len(s.sprites) {
		return nil
	}
	return &s.sprites[n]
}

func (s *fakeSink) enabled() int {
	n := 0
	for _, spr := range s.sprites {
		if spr.Flags.Has(video.SprEnabled) {
			n++
		}
	}
	return n
}

const kindTest Kind = 200

func withAnimation(t *testing.T, kind Kind, a *Animation) {
	t.Helper()
	catalog[kind] = a
	t.Cleanup(func() { delete(catalog, kind) })
}

func TestCatalogComplete(t *testing.T) {
	for k := KindNone + 1; k < kindCount; k++ {
		a, ok := Lookup(k)
		if !ok {
			t.Errorf("Lookup(%s) missing", k)
			continue
		}
		if err := validate(a); err != nil {
			t.Errorf("validate(%s) = %v", k, err)
		}
	}
	if _, ok := Lookup(KindNone); ok {
		t.Error("Lookup(KindNone) should miss")
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name string
		anim *Animation
		ok   bool
	}{
		{"empty", &Animation{}, false},
		{"too many frames", &Animation{Frames: make([]Frame, MaxFrames+1)}, false},
		{"too many tiles", &Animation{Frames: []Frame{{Tiles: make([]FrameTile, MaxFrameTiles+1)}}}, false},
		{"limits", &Animation{Frames: make([]Frame, MaxFrames)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(tt.anim); (err == nil) != tt.ok {
				t.Errorf("validate() = %v, expected ok %v", err, tt.ok)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindMarioClimb.String(); got != "mario-climb" {
		t.Errorf("String() = %q, expected %q", got, "mario-climb")
	}
	if got := Kind(250).String(); got != "kind(250)" {
		t.Errorf("String() = %q, expected %q", got, "kind(250)")
	}
}

func TestSetAnimationIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Lookup(Mario)
	a.Enable()
	a.SetAnimation(KindMarioWalkRight, 1000)

	sink := &fakeSink{}
	r.Update(1066, sink)
	if a.Frame != 1 {
		t.Fatalf("Frame = %d, expected 1", a.Frame)
	}
	next := a.NextTick()

	for _, now := range []uint32{1067, 1100, 5000} {
		a.SetAnimation(KindMarioWalkRight, now)
		if a.Frame != 1 || a.NextTick() != next {
			t.Errorf("SetAnimation(same) at %d: frame %d next %d, expected frame 1 next %d", now, a.Frame, a.NextTick(), next)
		}
	}

	a.SetAnimation(KindMarioWalkLeft, 2000)
	if a.Frame != 0 || a.NextTick() != 2066 {
		t.Errorf("SetAnimation(new) = frame %d next %d, expected frame 0 next 2066", a.Frame, a.NextTick())
	}
}

func TestSetAnimationUnknownKind(t *testing.T) {
	a := &Actor{}
	a.SetAnimation(KindOilFire, 0)
	a.SetAnimation(Kind(99), 10)
	if a.Kind() != KindNone || a.Animation() != nil {
		t.Errorf("unknown kind left kind %s animation %v", a.Kind(), a.Animation())
	}
}

func TestSingleFrameNeverCompletes(t *testing.T) {
	r := NewRegistry()
	a := r.Lookup(Pauline)
	a.Enable()
	calls := 0
	a.OnComplete = func(*Actor) bool {
		calls++
		return true
	}
	a.SetAnimation(KindPaulineStandRight, 0)

	sink := &fakeSink{}
	for now := uint32(0); now < 10000; now++ {
		r.Update(now, sink)
	}
	if calls != 0 {
		t.Errorf("callback calls = %d, expected 0", calls)
	}
	if a.Frame != 0 {
		t.Errorf("Frame = %d, expected 0", a.Frame)
	}
}

func TestCompletionCallbackEndsAnimation(t *testing.T) {
	withAnimation(t, kindTest, &Animation{Frames: []Frame{
		{Delay: 100, Tiles: []FrameTile{{Tile: 1}}},
		{Delay: 100, Tiles: []FrameTile{{Tile: 2}}},
	}})

	r := NewRegistry()
	a := r.Lookup(Bonus)
	a.Enable()
	calls := 0
	a.OnComplete = func(*Actor) bool {
		calls++
		return false
	}
	a.SetAnimation(kindTest, 0)

	sink := &fakeSink{}
	for now := uint32(0); now <= 250; now += 10 {
		r.Update(now, sink)
	}

	if calls != 1 {
		t.Errorf("callback calls = %d, expected 1", calls)
	}
	if a.Kind() != KindNone {
		t.Errorf("Kind() = %s, expected none", a.Kind())
	}
	if a.Animation() != nil {
		t.Error("Animation() should be nil")
	}
	if a.NextTick() != 0 {
		t.Errorf("NextTick() = %d, expected 0", a.NextTick())
	}

	r.Update(300, sink)
	if sink.enabled() != 0 {
		t.Errorf("enabled sprites = %d, expected 0", sink.enabled())
	}
}

func TestCompletionCallbackContinues(t *testing.T) {
	r := NewRegistry()
	a := r.Lookup(Bonus)
	a.Enable()
	a.Data1 = 2
	a.OnComplete = func(a *Actor) bool {
		if a.Data1 > 0 {
			a.Data1--
			return true
		}
		a.Disable()
		return false
	}
	a.SetAnimation(KindBonus100, 0)

	sink := &fakeSink{}
	for now := uint32(0); now <= 2000; now += 50 {
		r.Update(now, sink)
	}
	if a.Enabled() {
		t.Error("bonus should disable itself after its cycles")
	}
	if a.Data1 != 0 {
		t.Errorf("Data1 = %d, expected 0", a.Data1)
	}
	if a.Kind() != KindNone {
		t.Errorf("Kind() = %s, expected none", a.Kind())
	}
}

func TestUpdateStampsSprites(t *testing.T) {
	r := NewRegistry()
	dk := r.Lookup(DonkeyKong)
	dk.Enable()
	dk.X, dk.Y = 100, 50
	dk.SetAnimation(KindDonkeyKongStand, 0)

	hidden := r.Lookup(Mario)
	hidden.SetAnimation(KindMarioStandRight, 0)

	sink := &fakeSink{}
	r.Update(0, sink)

	if sink.resets != 1 {
		t.Errorf("ResetSprites() calls = %d, expected 1", sink.resets)
	}
	if sink.enabled() != 4 {
		t.Fatalf("enabled sprites = %d, expected 4", sink.enabled())
	}
	br := sink.sprites[3]
	if br.X != 116 || br.Y != 66 {
		t.Errorf("bottom-right at (%d, %d), expected (116, 66)", br.X, br.Y)
	}
}

func TestUpdateStopsWhenPoolFull(t *testing.T) {
	tiles := make([]FrameTile, MaxFrameTiles)
	withAnimation(t, kindTest, &Animation{Frames: []Frame{{Tiles: tiles}}})

	r := NewRegistry()
	for id := ID(0); id < Count; id++ {
		a := r.Lookup(id)
		a.Enable()
		a.SetAnimation(kindTest, 0)
	}
	sink := &fakeSink{}
	r.Update(0, sink)
	if sink.enabled() != video.SpriteMax {
		t.Errorf("enabled sprites = %d, expected %d", sink.enabled(), video.SpriteMax)
	}
}

func TestReset(t *testing.T) {
	r := NewRegistry()
	a := r.Lookup(OilFire)
	a.Enable()
	a.OnComplete = func(*Actor) bool { return true }
	a.SetAnimation(KindOilFire, 0)
	r.Reset()
	if a.Enabled() || a.Animation() != nil || a.OnComplete != nil {
		t.Error("Reset() should clear flags, animation and callback")
	}
	if r.Lookup(Count) != nil {
		t.Error("Lookup(Count) should be nil")
	}
}
