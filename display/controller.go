package display

import (
	"fmt"

	"github.com/faiface/pixel/pixelgl"

	"github.com/go-invaders/invaders8080/invaders"
)

// button names an emulator input independent of its port/bit or key
// binding, for the status line.
type button int

const (
	buttonCoin button = iota
	button1PStart
	button2PStart
	buttonP1Left
	buttonP1Right
	buttonP1Fire
	buttonP2Left
	buttonP2Right
	buttonP2Fire
	buttonPause
	buttonStep
	buttonReset
)

var buttonNames = map[button]string{
	buttonCoin:    "Coin",
	button1PStart: "1P Start",
	button2PStart: "2P Start",
	buttonP1Left:  "P1 Left",
	buttonP1Right: "P1 Right",
	buttonP1Fire:  "P1 Fire",
	buttonP2Left:  "P2 Left",
	buttonP2Right: "P2 Right",
	buttonP2Fire:  "P2 Fire",
	buttonPause:   "Pause",
	buttonStep:    "Step",
	buttonReset:   "Reset",
}

// Key bindings per spec.md 6's normative control table.
var buttonKeys = map[button]pixelgl.Button{
	buttonCoin:    pixelgl.KeyC,
	button1PStart: pixelgl.Key1,
	button2PStart: pixelgl.Key2,
	buttonP1Left:  pixelgl.KeyA,
	buttonP1Right: pixelgl.KeyD,
	buttonP1Fire:  pixelgl.KeySpace,
	buttonP2Left:  pixelgl.KeyLeft,
	buttonP2Right: pixelgl.KeyRight,
	buttonP2Fire:  pixelgl.KeyRightControl,
	buttonPause:   pixelgl.KeyP,
	buttonStep:    pixelgl.KeyN,
	buttonReset:   pixelgl.KeyR,
}

// inputTarget is the (port, bit) pair a pressed/released button drives in
// the machine's input latches. The host-level actions (pause/step/reset)
// have no inputTarget; Controller handles them itself.
type inputTarget struct {
	port, bit int
}

var buttonInputs = map[button]inputTarget{
	buttonCoin:    {1, invaders.BitCoin},
	button1PStart: {1, invaders.BitP1Start},
	button2PStart: {1, invaders.BitP2Start},
	buttonP1Left:  {1, invaders.BitP1Left},
	buttonP1Right: {1, invaders.BitP1Right},
	buttonP1Fire:  {1, invaders.BitP1Fire},
	buttonP2Left:  {2, invaders.BitP2Left},
	buttonP2Right: {2, invaders.BitP2Right},
	buttonP2Fire:  {2, invaders.BitP2Fire},
}

// Controller polls pixelgl key state each frame and forwards transitions
// into a Machine's input latches (C12), grounded on nes.Controller's
// JustPressed/JustReleased edge-triggered polling pattern.
type Controller struct {
	state map[button]bool

	// Pause/Step/Reset are edge-triggered one-shot callbacks invoked by
	// Poll instead of input-bit state, since they aren't machine inputs.
	OnPauseToggle func()
	OnStep        func()
	OnReset       func()
}

func NewController() *Controller {
	return &Controller{state: make(map[button]bool, len(buttonNames))}
}

// Poll reads key transitions from win and applies them to m, and fires
// the host-action callbacks on their key-down edge.
func (c *Controller) Poll(win *pixelgl.Window, m *invaders.Machine) {
	for b, key := range buttonKeys {
		if win.JustPressed(key) {
			c.state[b] = true
			if target, ok := buttonInputs[b]; ok {
				m.SetInputBit(target.port, target.bit, true)
			}
			c.fireAction(b)
		}
		if win.JustReleased(key) {
			c.state[b] = false
			if target, ok := buttonInputs[b]; ok {
				m.SetInputBit(target.port, target.bit, false)
			}
		}
	}
}

func (c *Controller) fireAction(b button) {
	switch b {
	case buttonPause:
		if c.OnPauseToggle != nil {
			c.OnPauseToggle()
		}
	case buttonStep:
		if c.OnStep != nil {
			c.OnStep()
		}
	case buttonReset:
		if c.OnReset != nil {
			c.OnReset()
		}
	}
}

// Status renders a one-line-per-button summary for the debug panel.
func (c *Controller) Status() string {
	s := ""
	for b := buttonCoin; b <= buttonP2Fire; b++ {
		mark := " "
		if c.state[b] {
			mark = "*"
		}
		s += fmt.Sprintf("[%s] %s\n", mark, buttonNames[b])
	}
	return s
}
