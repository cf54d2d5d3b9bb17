package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// ButtonKind identifies what a button does.
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	ButtonClear
	ButtonCheck
	ButtonMode
)

// Button is a clickable region. Value holds the digit or the Mode.
type Button struct {
	Kind  ButtonKind
	Value int
	Label string
	Rect  Rect
}

// Layout places every element of the portrait screen.
type Layout struct {
	Header   Rect
	Bubble   Rect
	Operand1 Rect
	Operator Rect
	Operand2 Rect
	Prompt   Rect
	Answer   Rect
	Pad      Rect
	Buttons  []Button
}

// Layout metrics
const (
	padKeyW   = 130.0
	padKeyH   = 46.0
	padGap    = 12.0
	padTop    = 630.0
	modeTop   = 122.0
	modeW     = 130.0
	modeH     = 36.0
	modeGap   = 10.0
	iconSize  = 32.0
	iconCols  = 3
	aidHeight = 3*iconSize + 24
)

// NewLayout computes the layout for a WIDTH x HEIGHT canvas.
func NewLayout() *Layout {
	l := &Layout{
		Header:   Rect{0, 0, WIDTH, 104},
		Bubble:   Rect{28, 176, WIDTH - 56, 56},
		Operand1: Rect{40, 250, 150, 80 + aidHeight},
		Operator: Rect{WIDTH/2 - 30, 250, 60, 80},
		Operand2: Rect{WIDTH - 190, 250, 150, 80 + aidHeight},
		Prompt:   Rect{0, 470, WIDTH, 30},
		Answer:   Rect{WIDTH/2 - 70, 506, 140, 80},
		Pad:      Rect{0, padTop - 24, WIDTH, HEIGHT - padTop + 24},
	}

	// Mode selector
	x := (WIDTH - (3*modeW + 2*modeGap)) / 2
	for _, m := range Modes {
		l.Buttons = append(l.Buttons, Button{
			Kind:  ButtonMode,
			Value: int(m),
			Label: m.String(),
			Rect:  Rect{x, modeTop, modeW, modeH},
		})
		x += modeW + modeGap
	}

	// Keypad: 1-9, then clear, 0, check
	left := (WIDTH - (3*padKeyW + 2*padGap)) / 2
	key := func(i int) Rect {
		return Rect{
			left + float64(i%3)*(padKeyW+padGap),
			padTop + float64(i/3)*(padKeyH+padGap),
			padKeyW, padKeyH,
		}
	}
	for d := 1; d <= 9; d++ {
		l.Buttons = append(l.Buttons, Button{Kind: ButtonDigit, Value: d, Label: strconv.Itoa(d), Rect: key(d - 1)})
	}
	l.Buttons = append(l.Buttons,
		Button{Kind: ButtonClear, Label: "⌫", Rect: key(9)},
		Button{Kind: ButtonDigit, Value: 0, Label: "0", Rect: key(10)},
		Button{Kind: ButtonCheck, Label: "GO!", Rect: key(11)},
	)
	return l
}

// HitTest returns the button under (x, y).
func (l *Layout) HitTest(x, y float64) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Find returns the first button of kind with value.
func (l *Layout) Find(kind ButtonKind, value int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Kind == kind && (kind == ButtonClear || kind == ButtonCheck || b.Value == value) {
			return b, true
		}
	}
	return Button{}, false
}

// IconPositions returns the centers of count icons inside box, three per row.
func IconPositions(box Rect, count int) [][2]float64 {
	pos := make([][2]float64, 0, count)
	rows := (count + iconCols - 1) / iconCols
	top := box.Y + 80 + (aidHeight-float64(rows)*iconSize)/2
	for i := 0; i < count; i++ {
		row, col := i/iconCols, i%iconCols
		inRow := iconCols
		if row == rows-1 && count%iconCols != 0 {
			inRow = count % iconCols
		}
		left := box.CenterX() - float64(inRow)*iconSize/2
		pos = append(pos, [2]float64{
			left + (float64(col)+0.5)*iconSize,
			top + (float64(row)+0.5)*iconSize,
		})
	}
	return pos
}

// roundRect traces a rounded rectangle path.
func roundRect(ctx *js.Object, r Rect, radius float64) {
	ctx.Call("beginPath")
	ctx.Call("moveTo", r.X+radius, r.Y)
	ctx.Call("arcTo", r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, radius)
	ctx.Call("arcTo", r.X+r.W, r.Y+r.H, r.X, r.Y+r.H, radius)
	ctx.Call("arcTo", r.X, r.Y+r.H, r.X, r.Y, radius)
	ctx.Call("arcTo", r.X, r.Y, r.X+r.W, r.Y, radius)
	ctx.Call("closePath")
}

// fillText draws centered text.
func fillText(ctx *js.Object, text, font, color string, x, y float64) {
	ctx.Set("font", font)
	ctx.Set("fillStyle", color)
	ctx.Set("textAlign", "center")
	ctx.Set("textBaseline", "middle")
	ctx.Call("fillText", text, x, y)
}

// Render draws one frame from v.
func (g *Game) Render(v View) {
	ctx := g.Ctx
	ctx.Set("fillStyle", Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, WIDTH, HEIGHT)

	g.RenderHeader(v)
	g.RenderModes(v)
	g.RenderBubble(v)
	g.RenderQuestion(v)
	g.RenderKeypad(v)
	if v.State.FeedbackVisible {
		g.RenderFeedback(v)
	}
}

// RenderHeader draws the title, star row and score pill.
func (g *Game) RenderHeader(v View) {
	ctx := g.Ctx
	h := g.Layout.Header

	ctx.Call("save")
	ctx.Set("shadowColor", Theme.HeaderShadow)
	ctx.Set("shadowBlur", 8)
	ctx.Set("fillStyle", Theme.HeaderColor)
	roundRect(ctx, Rect{h.X, h.Y - Theme.HeaderRadius, h.W, h.H + Theme.HeaderRadius}, Theme.HeaderRadius)
	ctx.Call("fill")
	ctx.Call("restore")

	ctx.Set("font", Theme.TitleFont)
	ctx.Set("fillStyle", Theme.TitleColor)
	ctx.Set("textAlign", "left")
	ctx.Set("textBaseline", "middle")
	ctx.Call("fillText", "MATH FUN", 20, 38)

	lit := v.State.Stars()
	for i := 0; i < StarsPerRow; i++ {
		alpha := Theme.StarOffAlpha
		if i < lit {
			alpha = Theme.StarOnAlpha
		}
		ctx.Set("globalAlpha", alpha)
		fillText(ctx, "⭐", "20px sans-serif", Theme.TitleColor, 32+float64(i)*26, 74)
	}
	ctx.Set("globalAlpha", 1)

	pill := Rect{WIDTH - 150, 34, 130, 36}
	ctx.Set("fillStyle", Theme.ScorePillColor)
	roundRect(ctx, pill, 18)
	ctx.Call("fill")
	fillText(ctx, "Score: "+strconv.Itoa(v.State.Score), Theme.ScoreFont, Theme.ScoreTextColor, pill.CenterX(), pill.CenterY())
}

// RenderModes draws the mode selector.
func (g *Game) RenderModes(v View) {
	ctx := g.Ctx
	for _, b := range g.Layout.Buttons {
		if b.Kind != ButtonMode {
			continue
		}
		fill, text := Theme.ModeInactiveColor, Theme.ModeInactiveText
		if Mode(b.Value) == v.State.Mode {
			fill, text = Theme.ModeActiveColor, Theme.ModeActiveText
		}
		ctx.Set("fillStyle", fill)
		roundRect(ctx, b.Rect, b.Rect.H/2)
		ctx.Call("fill")
		fillText(ctx, b.Label, Theme.ModeFont, text, b.Rect.CenterX(), b.Rect.CenterY())
	}
}

// RenderBubble draws the message bubble.
func (g *Game) RenderBubble(v View) {
	ctx := g.Ctx
	b := g.Layout.Bubble

	ctx.Set("fillStyle", Theme.BubbleColor)
	ctx.Set("strokeStyle", Theme.BubbleBorder)
	ctx.Set("lineWidth", 2)
	roundRect(ctx, b, 16)
	ctx.Call("fill")
	ctx.Call("stroke")

	// Tail
	ctx.Call("beginPath")
	ctx.Call("moveTo", b.X+24, b.Y)
	ctx.Call("lineTo", b.X+34, b.Y-10)
	ctx.Call("lineTo", b.X+44, b.Y)
	ctx.Call("fill")

	fillText(ctx, v.Message, Theme.BubbleFont, Theme.BubbleText, b.CenterX(), b.CenterY())
}

// RenderQuestion draws both operands as digits and as icon counts, the
// operator and the answer box.
func (g *Game) RenderQuestion(v View) {
	ctx := g.Ctx
	q := v.State.Question
	l := g.Layout

	aid2 := Theme.PlusAidColor
	if q.Op == Minus {
		aid2 = Theme.MinusAidColor
	}
	g.renderOperand(l.Operand1, q.Num1, Theme.Num1Color, Theme.Num1AidColor, v.Icon)
	g.renderOperand(l.Operand2, q.Num2, Theme.Num2Color, aid2, v.Icon)
	fillText(ctx, q.Op.String(), Theme.OperatorFont, Theme.OperatorColor, l.Operator.CenterX(), l.Operator.CenterY())

	fillText(ctx, "HOW MANY?", Theme.PromptFont, Theme.PromptColor, l.Prompt.CenterX(), l.Prompt.CenterY())

	ctx.Set("fillStyle", Theme.AnswerBoxColor)
	ctx.Set("strokeStyle", Theme.AnswerBoxBorder)
	ctx.Set("lineWidth", 4)
	ctx.Call("setLineDash", js.Global.Get("Array").Call("of", 10, 6))
	roundRect(ctx, l.Answer, 16)
	ctx.Call("fill")
	ctx.Call("stroke")
	ctx.Call("setLineDash", js.Global.Get("Array").New())

	answer := v.Input
	if answer == "" {
		answer = "?"
	}
	fillText(ctx, answer, Theme.AnswerFont, Theme.AnswerColor, l.Answer.CenterX(), l.Answer.CenterY())
}

func (g *Game) renderOperand(box Rect, n int, color, aid string, icon Icon) {
	ctx := g.Ctx
	fillText(ctx, strconv.Itoa(n), Theme.NumberFont, color, box.CenterX(), box.Y+40)

	panel := Rect{box.X, box.Y + 80, box.W, aidHeight}
	ctx.Set("fillStyle", aid)
	ctx.Set("strokeStyle", Theme.AidBorderColor)
	ctx.Set("lineWidth", 2)
	roundRect(ctx, panel, 16)
	ctx.Call("fill")
	ctx.Call("stroke")

	if n == 0 {
		fillText(ctx, "0", Theme.PromptFont, Theme.PromptColor, panel.CenterX(), panel.CenterY())
		return
	}
	for _, p := range IconPositions(box, n) {
		fillText(ctx, string(icon), Theme.IconFont, color, p[0], p[1])
	}
}

// RenderKeypad draws the number pad. GO! is greyed out while the answer is
// empty.
func (g *Game) RenderKeypad(v View) {
	ctx := g.Ctx
	pad := g.Layout.Pad
	ctx.Set("fillStyle", Theme.PadBackground)
	roundRect(ctx, Rect{pad.X, pad.Y, pad.W, pad.H + 48}, 48)
	ctx.Call("fill")

	for _, b := range g.Layout.Buttons {
		fill, shadow, text := Theme.KeyColor, Theme.KeyShadow, Theme.KeyText
		switch b.Kind {
		case ButtonMode:
			continue
		case ButtonClear:
			fill, shadow, text = Theme.ClearColor, Theme.ClearShadow, Theme.KeyColor
		case ButtonCheck:
			fill, shadow, text = Theme.CheckColor, Theme.CheckShadow, Theme.KeyColor
			if v.Input == "" {
				fill = Theme.CheckDisabled
			}
		}
		r := b.Rect
		ctx.Set("fillStyle", shadow)
		roundRect(ctx, Rect{r.X, r.Y + Theme.KeyShadowOffset, r.W, r.H}, Theme.KeyRadius)
		ctx.Call("fill")
		ctx.Set("fillStyle", fill)
		roundRect(ctx, r, Theme.KeyRadius)
		ctx.Call("fill")
		fillText(ctx, b.Label, Theme.KeyFont, text, r.CenterX(), r.CenterY())
	}
}

// RenderFeedback draws the full-screen result overlay.
func (g *Game) RenderFeedback(v View) {
	ctx := g.Ctx
	ctx.Set("fillStyle", Theme.OverlayColor)
	ctx.Call("fillRect", 0, 0, WIDTH, HEIGHT)

	emoji, title, sub, color := Theme.WrongEmoji, WrongTitle, WrongSubtitle, Theme.WrongColor
	if v.State.LastResult == ResultCorrect {
		emoji, title, sub, color = Theme.CorrectEmoji, CorrectTitle, CorrectSubtitle, Theme.CorrectColor
	}
	fillText(ctx, emoji, Theme.OverlayEmoji, color, WIDTH/2, HEIGHT/2-110)
	fillText(ctx, title, Theme.OverlayTitle, color, WIDTH/2, HEIGHT/2+10)
	fillText(ctx, sub, Theme.OverlayText, Theme.OverlayTextColor, WIDTH/2, HEIGHT/2+56)
}
