package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nybblesio/ckong/internal/core"
)

// KeyMap binds terminal keys to controller buttons and model commands.
type KeyMap struct {
	Buttons    [core.ButtonCount]key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the keyboard layout used when no gamepad exists.
func DefaultKeyMap() KeyMap {
	var k KeyMap
	bind := func(b core.Button, help string, keys ...string) {
		k.Buttons[b] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	bind(core.ButtonDpadUp, "up", "up", "w")
	bind(core.ButtonDpadDown, "down", "down", "s")
	bind(core.ButtonDpadLeft, "left", "left", "a")
	bind(core.ButtonDpadRight, "right", "right", "d")
	bind(core.ButtonA, "jump / A", " ", "z")
	bind(core.ButtonB, "B", "x")
	bind(core.ButtonX, "X", "c")
	bind(core.ButtonY, "Y", "v")
	bind(core.ButtonBack, "coin", "5", "tab")
	bind(core.ButtonStart, "start", "enter", "1")
	bind(core.ButtonGuide, "palettes", "g")
	bind(core.ButtonLeftShoulder, "prev map", "[")
	bind(core.ButtonRightShoulder, "next map", "]")
	bind(core.ButtonLeftStick, "copy", "y")
	bind(core.ButtonRightStick, "paste", "p")

	k.Screenshot = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot"))
	k.Help = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	k.Quit = key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit"))
	return k
}

// Button returns the controller button bound to msg.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	for b := core.Button(0); b < core.ButtonCount; b++ {
		if key.Matches(msg, k.Buttons[b]) {
			return b, true
		}
	}
	return core.ButtonCount, false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Buttons[core.ButtonBack],
		k.Buttons[core.ButtonStart],
		k.Buttons[core.ButtonA],
		k.Help,
		k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Buttons[core.ButtonDpadUp], k.Buttons[core.ButtonDpadDown], k.Buttons[core.ButtonDpadLeft], k.Buttons[core.ButtonDpadRight]},
		{k.Buttons[core.ButtonA], k.Buttons[core.ButtonB], k.Buttons[core.ButtonX], k.Buttons[core.ButtonY]},
		{k.Buttons[core.ButtonBack], k.Buttons[core.ButtonStart], k.Buttons[core.ButtonGuide]},
		{k.Buttons[core.ButtonLeftShoulder], k.Buttons[core.ButtonRightShoulder], k.Buttons[core.ButtonLeftStick], k.Buttons[core.ButtonRightStick]},
		{k.Screenshot, k.Help, k.Quit},
	}
}
