package core

// Button is a controller button. The order matches the classic game
// controller layout so the values can be used as bit positions.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack // Coin
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight

	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonBack:
		return "Back"
	case ButtonGuide:
		return "Guide"
	case ButtonStart:
		return "Start"
	case ButtonLeftStick:
		return "LeftStick"
	case ButtonRightStick:
		return "RightStick"
	case ButtonLeftShoulder:
		return "LeftShoulder"
	case ButtonRightShoulder:
		return "RightShoulder"
	case ButtonDpadUp:
		return "Up"
	case ButtonDpadDown:
		return "Down"
	case ButtonDpadLeft:
		return "Left"
	case ButtonDpadRight:
		return "Right"
	default:
		return "Unknown"
	}
}

func (b Button) mask() uint32 {
	return uint32(1) << uint32(b)
}

// Controller is the input collaborator consumed by the states.
//
// Terminals only deliver key-down events, so the platform layer "holds" a
// button until a release tick; Poll expires holds once per frame. Held is
// level triggered. Pressed is edge triggered: it reports true once per hold,
// tracked with a 32-bit sticky mask that is cleared when the button is
// released.
type Controller struct {
	held      uint32
	sticky    uint32
	releaseAt [ButtonCount]uint32

	keys      map[string]uint32 // key -> release tick
	keySticky map[string]bool
}

// NewController creates a controller with nothing held.
func NewController() *Controller {
	return &Controller{
		keys:      make(map[string]uint32),
		keySticky: make(map[string]bool),
	}
}

// Hold marks the button held until the given tick.
// Repeated holds (key auto-repeat) extend the deadline.
func (c *Controller) Hold(b Button, until uint32) {
	if b >= ButtonCount {
		return
	}
	c.held |= b.mask()
	if until > c.releaseAt[b] {
		c.releaseAt[b] = until
	}
}

// Release drops the button immediately and ends its hold, so the next
// Hold reports a fresh press.
func (c *Controller) Release(b Button) {
	if b >= ButtonCount {
		return
	}
	c.held &^= b.mask()
	c.sticky &^= b.mask()
	c.releaseAt[b] = 0
}

// HoldKey marks a raw key name held until the given tick.
func (c *Controller) HoldKey(key string, until uint32) {
	if until > c.keys[key] {
		c.keys[key] = until
	}
}

// Poll expires holds whose release tick has passed and clears the sticky
// state of released buttons. Called once per frame before timers and states.
func (c *Controller) Poll(now uint32) {
	for b := Button(0); b < ButtonCount; b++ {
		if c.held&b.mask() != 0 && now >= c.releaseAt[b] {
			c.held &^= b.mask()
			c.releaseAt[b] = 0
		}
	}
	c.sticky &= c.held

	for k, until := range c.keys {
		if now >= until {
			delete(c.keys, k)
			delete(c.keySticky, k)
		}
	}
}

// Held reports whether the button is currently down.
func (c *Controller) Held(b Button) bool {
	if b >= ButtonCount {
		return false
	}
	return c.held&b.mask() != 0
}

// Pressed reports true the first time it is called during a hold.
func (c *Controller) Pressed(b Button) bool {
	if !c.Held(b) {
		return false
	}
	if c.sticky&b.mask() != 0 {
		return false
	}
	c.sticky |= b.mask()
	return true
}

// KeyState reports whether a raw key is currently down.
func (c *Controller) KeyState(key string) bool {
	_, ok := c.keys[key]
	return ok
}

// KeyPressed is the edge-triggered variant of KeyState.
func (c *Controller) KeyPressed(key string) bool {
	if !c.KeyState(key) || c.keySticky[key] {
		return false
	}
	c.keySticky[key] = true
	return true
}

// Reset releases everything.
func (c *Controller) Reset() {
	c.held = 0
	c.sticky = 0
	c.releaseAt = [ButtonCount]uint32{}
	clear(c.keys)
	clear(c.keySticky)
}
