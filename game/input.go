package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionDigit
	ActionBackspace
	ActionClear
	ActionCheck
	ActionMode
	ActionStats
)

// KeyAction is a decoded key press. Value holds the digit or the Mode.
type KeyAction struct {
	Action Action
	Value  int
}

// KeyMap maps key codes that are not digits to actions.
var KeyMap = map[int]KeyAction{
	8:   {Action: ActionBackspace}, // Backspace
	46:  {Action: ActionClear},     // Delete
	27:  {Action: ActionClear},     // Esc
	13:  {Action: ActionCheck},     // Enter
	32:  {Action: ActionCheck},     // Space
	121: {Action: ActionStats},     // F10
}

// TranslateKey decodes a key press. Digits on the main row and the numpad
// type; with Alt held, 1-3 pick Addition, Subtraction and Mixed.
func TranslateKey(keyCode int, alt bool) KeyAction {
	digit := -1
	switch {
	case keyCode >= 48 && keyCode <= 57:
		digit = keyCode - 48
	case keyCode >= 96 && keyCode <= 105:
		digit = keyCode - 96
	}
	if digit >= 0 {
		if alt {
			if digit >= 1 && digit <= len(Modes) {
				return KeyAction{Action: ActionMode, Value: int(Modes[digit-1])}
			}
			return KeyAction{}
		}
		return KeyAction{Action: ActionDigit, Value: digit}
	}
	if a, ok := KeyMap[keyCode]; ok {
		return a
	}
	return KeyAction{}
}

// Dispatch routes a decoded key press. It reports whether the key was used.
func (g *Game) Dispatch(a KeyAction) bool {
	switch a.Action {
	case ActionDigit:
		g.HandleNumberClick(a.Value)
	case ActionBackspace:
		g.HandleBackspace()
	case ActionClear:
		g.HandleClear()
	case ActionCheck:
		g.HandleCheck()
	case ActionMode:
		g.ChangeMode(Mode(a.Value))
	case ActionStats:
		g.StatsOverlay.Toggle()
	default:
		return false
	}
	return true
}

// Press routes a button press to its entry point.
func (g *Game) Press(b Button) {
	switch b.Kind {
	case ButtonDigit:
		g.HandleNumberClick(b.Value)
	case ButtonClear:
		g.HandleClear()
	case ButtonCheck:
		g.HandleCheck()
	case ButtonMode:
		g.ChangeMode(Mode(b.Value))
	}
}

// PointerAt handles a click at canvas coordinates. Any click counts as the
// first gesture, even one that misses every button.
func (g *Game) PointerAt(x, y float64) {
	g.HandleInteraction()
	if b, ok := g.Layout.HitTest(x, y); ok {
		g.Press(b)
	}
}

// SetupInputHandlers initializes keyboard and pointer event handlers.
func (g *Game) SetupInputHandlers() {
	js.Global.Get("document").Call("addEventListener", "keydown",
		func(event *js.Object) {
			if event.Get("repeat").Bool() {
				return
			}
			a := TranslateKey(event.Get("keyCode").Int(), event.Get("altKey").Bool())
			if g.Dispatch(a) {
				event.Call("preventDefault")
			}
		})

	// Canvas coordinates differ from CSS pixels when the page scales it.
	g.Canvas.Call("addEventListener", "pointerdown",
		func(event *js.Object) {
			if event.Get("button").Int() != 0 {
				return
			}
			rect := g.Canvas.Call("getBoundingClientRect")
			sx := float64(WIDTH) / rect.Get("width").Float()
			sy := float64(HEIGHT) / rect.Get("height").Float()
			x := (event.Get("clientX").Float() - rect.Get("left").Float()) * sx
			y := (event.Get("clientY").Float() - rect.Get("top").Float()) * sy
			g.PointerAt(x, y)
		})

	js.Global.Get("document").Call("addEventListener", "visibilitychange",
		func() {
			if js.Global.Get("document").Get("visibilityState").String() == "visible" {
				g.Audio.Resume()
			}
		})
}
