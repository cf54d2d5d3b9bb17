package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// GameLoopRAF is the main render loop using requestAnimationFrame. The game
// itself is event driven; frames only redraw the current state.
func (g *Game) GameLoopRAF(currentTime float64) {
	// Schedule next frame
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()

	// Update FPS counter
	g.StatsOverlay.UpdateFPS(currentTime)

	// Fixed timestep
	if currentTime-g.LastFrameTime < FrameDuration {
		return
	}
	g.LastFrameTime = currentTime

	g.GameLoop()
}

// GameLoop draws one frame.
func (g *Game) GameLoop() {
	v := g.View()
	g.Render(v)
	g.StatsOverlay.Render(g.Ctx, g, v)
}
