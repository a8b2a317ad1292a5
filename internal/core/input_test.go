package core

import "testing"

func TestControllerHeldExpires(t *testing.T) {
	c := NewController()
	c.Hold(ButtonDpadLeft, 100)

	c.Poll(50)
	if !c.Held(ButtonDpadLeft) {
		t.Error("button should be held before its release tick")
	}

	c.Poll(100)
	if c.Held(ButtonDpadLeft) {
		t.Error("button should be released at its release tick")
	}
}

func TestControllerPressedIsEdgeTriggered(t *testing.T) {
	c := NewController()
	c.Hold(ButtonA, 100)
	c.Poll(0)

	if !c.Pressed(ButtonA) {
		t.Fatal("first Pressed() during a hold should be true")
	}
	c.Poll(16)
	if c.Pressed(ButtonA) {
		t.Error("Pressed() should not repeat while the button stays held")
	}

	// Key auto-repeat extends the same hold
	c.Hold(ButtonA, 200)
	c.Poll(120)
	if c.Pressed(ButtonA) {
		t.Error("extending a hold should not produce a new press")
	}

	c.Poll(200)
	c.Hold(ButtonA, 300)
	c.Poll(216)
	if !c.Pressed(ButtonA) {
		t.Error("a new hold after release should produce a new press")
	}
}

func TestControllerKeys(t *testing.T) {
	c := NewController()
	c.HoldKey("f2", 50)

	if !c.KeyState("f2") {
		t.Error("KeyState() should be true while held")
	}
	if !c.KeyPressed("f2") {
		t.Error("first KeyPressed() should be true")
	}
	if c.KeyPressed("f2") {
		t.Error("second KeyPressed() should be false")
	}

	c.Poll(60)
	if c.KeyState("f2") {
		t.Error("KeyState() should be false after release")
	}
}

func TestControllerInvalidButton(t *testing.T) {
	c := NewController()
	c.Hold(ButtonCount, 100)

	if c.Held(ButtonCount) || c.Pressed(ButtonCount) {
		t.Error("out of range buttons are never held")
	}
	if ButtonCount.String() != "Unknown" {
		t.Errorf("String() = %q, expected %q", ButtonCount.String(), "Unknown")
	}
}

func TestControllerReleaseEndsHold(t *testing.T) {
	c := NewController()
	c.Hold(ButtonDpadRight, 100)
	c.Poll(0)
	if !c.Pressed(ButtonDpadRight) {
		t.Fatal("first Pressed() should be true")
	}

	c.Release(ButtonDpadRight)
	if c.Held(ButtonDpadRight) {
		t.Error("button should be up after Release()")
	}

	// A hold right after the release is a new press even before Poll runs.
	c.Hold(ButtonDpadRight, 116)
	c.Poll(16)
	if !c.Pressed(ButtonDpadRight) {
		t.Error("Pressed() after Release() and a new Hold() should be true")
	}
}
