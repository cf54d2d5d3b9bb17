//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/ukg-math-adventure/game"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	// Set canvas dimensions
	canvas.Set("width", game.WIDTH)
	canvas.Set("height", game.HEIGHT)

	// Create the game instance
	g := game.NewGame()
	g.Canvas = canvas
	g.Ctx = canvas.Call("getContext", "2d")

	g.Audio.InitControlPanel(canvas)
	g.SetupInputHandlers()

	// Expose a small API for replays and debugging
	js.Global.Set("MathAdventure", map[string]interface{}{
		"setSeed": func(seed uint32) {
			g.SetGameSeed(seed)
		},
		"getSeed": func() uint32 {
			return g.GetGameSeed()
		},
		"toggleStats": func() {
			g.StatsOverlay.Toggle()
		},
	})

	// Release the audio context when the page goes away
	js.Global.Call("addEventListener", "beforeunload", func() {
		g.Stop()
	})

	g.Start()

	select {}
}
