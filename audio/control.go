package audio

import (
	"bytes"
	_ "embed"
	"strconv"
	"text/template"

	"github.com/gopherjs/gopherjs/js"
)

// ControlPanelData holds all data needed to render the control panel template
type ControlPanelData struct {
	Categories   []SfxCategory
	Song         string
	Tempo        int // steps per minute
	MasterVolume int
	MusicVolume  int
}

// SfxCategory groups sound effects by category for display
type SfxCategory struct {
	Name    string
	Effects []SfxTemplateData
}

// SfxTemplateData holds sound effect data for template rendering
type SfxTemplateData struct {
	ID           int
	Name         string
	Description  string
	WaveTypeName string
}

//go:embed control.gohtml
var controlHtml string

var controlTemplate = template.Must(template.New("controlPanel").Parse(controlHtml))

// NewControlPanelData collects what the panel shows. Categories keep the
// order in which they first appear in SoundEffectLibrary.
func NewControlPanelData(song *Song) ControlPanelData {
	data := ControlPanelData{
		MasterVolume: int(AudioConfig.MasterVolume * 100),
		MusicVolume:  100,
	}
	if song != nil {
		data.Song = song.Name
		if song.Tick > 0 {
			data.Tempo = int(60e9 / song.Tick.Nanoseconds())
		}
	}

	index := map[string]int{}
	for _, sfx := range SoundEffectLibrary {
		i, ok := index[sfx.Category]
		if !ok {
			i = len(data.Categories)
			index[sfx.Category] = i
			data.Categories = append(data.Categories, SfxCategory{Name: sfx.Category})
		}
		data.Categories[i].Effects = append(data.Categories[i].Effects, SfxTemplateData{
			ID:           int(sfx.ID),
			Name:         sfx.Name,
			Description:  sfx.Description,
			WaveTypeName: sfx.Wave.String(),
		})
	}
	return data
}

// RenderControlPanel executes the panel template.
func RenderControlPanel(data ControlPanelData) (string, error) {
	var buf bytes.Buffer
	if err := controlTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InitControlPanel creates the audio control panel and attaches right-click handler.
func (am *AudioManager) InitControlPanel(canvas *js.Object) {
	doc := js.Global.Get("document")

	// Create control panel container
	panel := doc.Call("createElement", "div")
	panel.Set("id", "audio-control-panel")
	panel.Get("style").Set("cssText", `
		position: fixed;
		top: 50%;
		left: 50%;
		transform: translate(-50%, -50%);
		background: rgba(255, 255, 255, 0.97);
		border: 4px solid #fbbf24;
		border-radius: 16px;
		padding: 20px;
		color: #1e3a8a;
		font-family: 'Comic Sans MS', 'Trebuchet MS', sans-serif;
		font-size: 14px;
		z-index: 10000;
		display: none;
		min-width: 320px;
		box-shadow: 0 8px 30px rgba(0, 0, 0, 0.25);
	`)

	html, err := RenderControlPanel(NewControlPanelData(am.Music.song))
	if err != nil {
		html = "<div style='color:red'>Template error: " + err.Error() + "</div>"
	}
	panel.Set("innerHTML", html)

	doc.Get("body").Call("appendChild", panel)
	am.controlPanel = panel

	// Right-click handler to show panel
	canvas.Call("addEventListener", "contextmenu", func(e *js.Object) {
		e.Call("preventDefault")
		am.toggleControlPanel()
	})

	closeBtn := doc.Call("getElementById", "audio-panel-close")
	if closeBtn != nil && closeBtn != js.Undefined {
		closeBtn.Call("addEventListener", "click", func() {
			am.hideControlPanel()
		})
	}

	am.attachControlHandlers()
}

// attachControlHandlers wires sliders and buttons. Every handler runs in a
// click or input event, so it may create the AudioContext.
func (am *AudioManager) attachControlHandlers() {
	doc := js.Global.Get("document")

	attachSlider := func(id string, handler func(float64)) {
		slider := doc.Call("getElementById", id)
		valSpan := doc.Call("getElementById", id+"-val")
		if slider == nil || slider == js.Undefined {
			return
		}
		slider.Call("addEventListener", "input", func(e *js.Object) {
			val := e.Get("target").Get("value").Float()
			if valSpan != nil && valSpan != js.Undefined {
				valSpan.Set("textContent", strconv.Itoa(int(val))+"%")
			}
			handler(val)
		})
	}

	attachSlider("ctrl-master-vol", func(v float64) {
		am.SetVolume(v / 100)
	})
	attachSlider("ctrl-music-vol", func(v float64) {
		am.SetMusicVolume(v / 100)
	})

	// SFX play buttons
	playBtns := doc.Call("querySelectorAll", ".sfx-play-btn")
	for i := 0; i < playBtns.Length(); i++ {
		btn := playBtns.Index(i)
		btn.Call("addEventListener", "click", func(e *js.Object) {
			idStr := e.Get("currentTarget").Call("getAttribute", "data-id").String()
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return
			}
			am.Play(Effect(id))
		})
	}

	musicBtn := doc.Call("getElementById", "ctrl-music-toggle")
	if musicBtn != nil && musicBtn != js.Undefined {
		musicBtn.Call("addEventListener", "click", func() {
			if am.MusicPlaying() {
				am.StopMusic()
				musicBtn.Set("textContent", "Play music")
			} else {
				am.StartMusic()
				musicBtn.Set("textContent", "Stop music")
			}
		})
	}
}

// toggleControlPanel shows or hides the control panel.
func (am *AudioManager) toggleControlPanel() {
	if am.controlPanel == nil {
		return
	}
	current := am.controlPanel.Get("style").Get("display").String()
	if current == "none" {
		am.showControlPanel()
	} else {
		am.hideControlPanel()
	}
}

// hideControlPanel hides the control panel.
func (am *AudioManager) hideControlPanel() {
	if am.controlPanel != nil {
		am.controlPanel.Get("style").Set("display", "none")
	}
}

// showControlPanel shows the control panel and syncs the music button.
func (am *AudioManager) showControlPanel() {
	if am.controlPanel == nil {
		return
	}
	am.controlPanel.Get("style").Set("display", "block")
	musicBtn := js.Global.Get("document").Call("getElementById", "ctrl-music-toggle")
	if musicBtn != nil && musicBtn != js.Undefined {
		if am.MusicPlaying() {
			musicBtn.Set("textContent", "Stop music")
		} else {
			musicBtn.Set("textContent", "Play music")
		}
	}
}
