package game

import (
	"testing"
)

func TestTranslateKey_Digits(t *testing.T) {
	tests := []struct {
		name     string
		keyCode  int
		expected int
	}{
		{"Top row 0", 48, 0},
		{"Top row 7", 55, 7},
		{"Numpad 3", 99, 3},
		{"Numpad 9", 105, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := TranslateKey(tt.keyCode, false)
			if a.Action != ActionDigit || a.Value != tt.expected {
				t.Errorf("Expected digit %d, got %+v", tt.expected, a)
			}
		})
	}
}

func TestTranslateKey_Controls(t *testing.T) {
	tests := []struct {
		name     string
		keyCode  int
		expected Action
	}{
		{"Enter checks", 13, ActionCheck},
		{"Space checks", 32, ActionCheck},
		{"Backspace deletes", 8, ActionBackspace},
		{"Delete clears", 46, ActionClear},
		{"Esc clears", 27, ActionClear},
		{"F10 toggles stats", 121, ActionStats},
		{"Letters do nothing", 65, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := TranslateKey(tt.keyCode, false); a.Action != tt.expected {
				t.Errorf("Expected action %d, got %d", tt.expected, a.Action)
			}
		})
	}
}

func TestTranslateKey_AltSelectsMode(t *testing.T) {
	for i, m := range Modes {
		a := TranslateKey(49+i, true)
		if a.Action != ActionMode || Mode(a.Value) != m {
			t.Errorf("Expected Alt+%d to select %s, got %+v", i+1, m, a)
		}
	}
	if a := TranslateKey(52, true); a.Action != ActionNone {
		t.Errorf("Expected Alt+4 to do nothing, got %+v", a)
	}
}

func TestDispatch_RoutesToEntryPoints(t *testing.T) {
	g := newTestGame()

	g.Dispatch(TranslateKey(52, false)) // 4
	g.Dispatch(TranslateKey(50, false)) // 2
	g.Dispatch(TranslateKey(8, false))
	if g.Input != "4" {
		t.Errorf("Expected input 4, got %q", g.Input)
	}

	g.Dispatch(TranslateKey(51, true)) // Alt+3
	if g.State.Mode != Mixed {
		t.Errorf("Expected Mixed mode, got %s", g.State.Mode)
	}

	if g.Dispatch(TranslateKey(65, false)) {
		t.Error("Expected unmapped key to be reported unused")
	}

	g.Dispatch(TranslateKey(121, false))
	if !g.StatsOverlay.Visible {
		t.Error("Expected F10 to show the stats overlay")
	}
}

func TestLayout_HasKeypadAndModes(t *testing.T) {
	l := NewLayout()

	counts := map[ButtonKind]int{}
	for _, b := range l.Buttons {
		counts[b.Kind]++
		r := b.Rect
		if r.X < 0 || r.Y < 0 || r.X+r.W > WIDTH || r.Y+r.H > HEIGHT {
			t.Errorf("Expected %s to fit the canvas, got %+v", b.Label, r)
		}
	}
	if counts[ButtonDigit] != 10 || counts[ButtonClear] != 1 || counts[ButtonCheck] != 1 || counts[ButtonMode] != 3 {
		t.Errorf("Unexpected button counts: %v", counts)
	}
}

func TestLayout_ButtonsDoNotOverlap(t *testing.T) {
	l := NewLayout()
	for i, a := range l.Buttons {
		for _, b := range l.Buttons[i+1:] {
			if a.Rect.X < b.Rect.X+b.Rect.W && b.Rect.X < a.Rect.X+a.Rect.W &&
				a.Rect.Y < b.Rect.Y+b.Rect.H && b.Rect.Y < a.Rect.Y+a.Rect.H {
				t.Errorf("Expected %s and %s not to overlap", a.Label, b.Label)
			}
		}
	}
}

func TestLayout_HitTestCenters(t *testing.T) {
	l := NewLayout()
	for _, b := range l.Buttons {
		got, ok := l.HitTest(b.Rect.CenterX(), b.Rect.CenterY())
		if !ok || got.Kind != b.Kind || got.Value != b.Value {
			t.Errorf("Expected %s at its center, got %+v", b.Label, got)
		}
	}
	if _, ok := l.HitTest(1, HEIGHT/2); ok {
		t.Error("Expected no button at the left edge")
	}
}

func TestLayout_KeypadOrder(t *testing.T) {
	l := NewLayout()
	one, _ := l.Find(ButtonDigit, 1)
	zero, _ := l.Find(ButtonDigit, 0)
	clear, _ := l.Find(ButtonClear, 0)
	check, _ := l.Find(ButtonCheck, 0)

	if !(clear.Rect.X < zero.Rect.X && zero.Rect.X < check.Rect.X) {
		t.Errorf("Expected bottom row ⌫ 0 GO!, got x %f %f %f", clear.Rect.X, zero.Rect.X, check.Rect.X)
	}
	if zero.Rect.Y <= one.Rect.Y {
		t.Errorf("Expected 0 below 1, got y %f and %f", zero.Rect.Y, one.Rect.Y)
	}
}

func TestPointerAt_PressesButtons(t *testing.T) {
	g := newTestGame()
	press := func(kind ButtonKind, value int) {
		b, ok := g.Layout.Find(kind, value)
		if !ok {
			t.Fatalf("Expected button %d/%d", kind, value)
		}
		g.PointerAt(b.Rect.CenterX(), b.Rect.CenterY())
	}

	press(ButtonDigit, 9)
	press(ButtonDigit, 0)
	if g.Input != "90" {
		t.Errorf("Expected input 90, got %q", g.Input)
	}
	press(ButtonClear, 0)
	if g.Input != "" {
		t.Errorf("Expected cleared input, got %q", g.Input)
	}
	press(ButtonCheck, 0)
	if g.State.Total != 0 {
		t.Errorf("Expected GO! to be inert while empty, got total %d", g.State.Total)
	}
	press(ButtonMode, int(Subtraction))
	if g.State.Mode != Subtraction {
		t.Errorf("Expected Subtraction mode, got %s", g.State.Mode)
	}
}

func TestPointerAt_MissStillCountsAsGesture(t *testing.T) {
	g := newTestGame()
	g.PointerAt(1, 1)
	if g.sound.music != 1 {
		t.Errorf("Expected music to start on any click, got %d", g.sound.music)
	}
	if g.sound.clicks != 0 {
		t.Errorf("Expected no click sound for a miss, got %d", g.sound.clicks)
	}
}

func TestIconPositions(t *testing.T) {
	l := NewLayout()
	for n := 1; n <= MaxOperand; n++ {
		pos := IconPositions(l.Operand1, n)
		if len(pos) != n {
			t.Fatalf("Expected %d positions, got %d", n, len(pos))
		}
		for _, p := range pos {
			if !l.Operand1.Contains(p[0], p[1]) {
				t.Errorf("Expected icon %v inside %+v", p, l.Operand1)
			}
		}
	}
}
