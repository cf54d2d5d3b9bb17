package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		Visible:     false,
		PanelX:      WIDTH - 236,
		PanelY:      112,
		LineHeight:  18,
		PanelWidth:  220,
		PanelHeight: 250,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// StatLine is one label/value row of the overlay.
type StatLine struct {
	Label string
	Value string
	Color string
}

// Lines returns the rows shown for v, grouped by section headers (rows with
// an empty Value).
func (s *StatsOverlay) Lines(g *Game, v View) []StatLine {
	q := v.State.Question
	lines := []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#16a34a"},
		{Label: "── Game ──"},
		{"Seed", strconv.FormatUint(uint64(g.GetGameSeed()), 10), "#6b7280"},
		{"Mode", v.State.Mode.String(), "#2563eb"},
		{"Question", strconv.Itoa(q.Num1) + " " + q.Op.String() + " " + strconv.Itoa(q.Num2) + " = " + strconv.Itoa(q.Answer), "#2563eb"},
		{"Score", strconv.Itoa(v.State.Score) + "/" + strconv.Itoa(v.State.Total), "#ca8a04"},
		{"Accuracy", strconv.Itoa(int(v.State.Accuracy()*100)) + "%", s.accuracyColor(v.State.Accuracy())},
		{Label: "── Audio ──"},
	}

	state := "off"
	music := "stopped"
	if g.Audio != nil {
		if g.Audio.AudioCtx != nil {
			state = g.Audio.AudioCtx.Get("state").String()
		}
		if g.Audio.MusicPlaying() {
			music = "step " + strconv.Itoa(g.Audio.Music.Step()%16)
		}
	}
	lines = append(lines,
		StatLine{"Context", state, "#6b7280"},
		StatLine{"Music", music, "#9333ea"},
	)
	return lines
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(ctx *js.Object, g *Game, v View) {
	if !s.Visible {
		return
	}

	// Draw stats panel background
	ctx.Set("fillStyle", "rgba(255, 255, 255, 0.92)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Draw panel border
	ctx.Set("strokeStyle", "#3b82f6")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Title
	ctx.Set("fillStyle", "#3b82f6")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Set("textBaseline", "alphabetic")
	ctx.Call("fillText", "GAME STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 44
	for _, line := range s.Lines(g, v) {
		if line.Value == "" {
			y += 5
			ctx.Set("fillStyle", "#9ca3af")
			ctx.Call("fillText", line.Label, s.PanelX+10, y)
		} else {
			s.drawStatLine(ctx, line.Label, line.Value, line.Color, y)
		}
		y += s.LineHeight
	}
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y int) {
	ctx.Set("fillStyle", "#374151")
	ctx.Call("fillText", label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}

// accuracyColor returns a color based on the share of right answers
func (s *StatsOverlay) accuracyColor(acc float64) string {
	if acc > 0.75 {
		return "#16a34a"
	} else if acc > 0.5 {
		return "#65a30d"
	} else if acc > 0.25 {
		return "#ca8a04"
	} else {
		return "#dc2626"
	}
}
