package video

import "github.com/nybblesio/ckong/internal/core"

// BlinkersMax is the number of simultaneous blink regions.
const BlinkersMax = 16

// BlinkCallback runs each time a blinker toggles. Returning false stops the
// blinker, leaving its cells in the state they just toggled into.
type BlinkCallback func(b *Blinker) bool

// Blinker periodically toggles the enabled flag of a rectangle of
// background cells.
type Blinker struct {
	// Bounds is measured in cells.
	Bounds   core.Rect
	Visible  bool
	Duration uint32
	Timeout  uint32
	Data1    uint32
	Data2    uint32

	callback BlinkCallback
	active   bool
}

// Active reports whether the blinker is still running.
func (b *Blinker) Active() bool { return b.active }

// StopBlink ends the blinker and leaves its cells visible.
func (c *Compositor) StopBlink(b *Blinker) {
	if b == nil || !b.active {
		return
	}
	b.active = false
	b.Visible = true
	c.applyBlink(b)
}

// Blink starts toggling the cells at (x, y) with height h and width w every
// duration milliseconds. It returns nil when all blinkers are in use.
func (c *Compositor) Blink(y, x, h, w int, duration uint32, cb BlinkCallback) *Blinker {
	for i := range c.blinkers {
		b := &c.blinkers[i]
		if b.active {
			continue
		}
		*b = Blinker{
			Bounds:   core.NewRect(x, y, w, h),
			Visible:  true,
			Duration: duration,
			Timeout:  c.now + duration,
			callback: cb,
			active:   true,
		}
		return b
	}
	c.log.Debug("blinker pool exhausted", "x", x, "y", y)
	return nil
}

// ClearBlinkers stops every blinker without touching the cells.
func (c *Compositor) ClearBlinkers() {
	for i := range c.blinkers {
		c.blinkers[i] = Blinker{}
	}
}

func (c *Compositor) updateBlinkers(now uint32) {
	for i := range c.blinkers {
		b := &c.blinkers[i]
		if !b.active || now < b.Timeout {
			continue
		}
		b.Visible = !b.Visible
		c.applyBlink(b)
		if b.callback != nil && !b.callback(b) {
			b.active = false
			continue
		}
		b.Timeout = now + b.Duration
	}
}

func (c *Compositor) applyBlink(b *Blinker) {
	for y := b.Bounds.Y; y < b.Bounds.Bottom(); y++ {
		for x := b.Bounds.X; x < b.Bounds.Right(); x++ {
			cell := c.Tile(x, y)
			if cell == nil {
				continue
			}
			if b.Visible {
				cell.Flags = cell.Flags.With(BgEnabled)
			} else {
				cell.Flags = cell.Flags.Without(BgEnabled)
			}
			cell.MarkChanged()
		}
	}
}
