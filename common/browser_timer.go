package common

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// BrowserScheduler arms callbacks with window.setTimeout. Callbacks run on
// the page's event loop, so they never overlap with input handlers.
type BrowserScheduler struct{}

type browserTimer struct {
	id   *js.Object
	done bool
}

// AfterFunc implements Scheduler.
func (BrowserScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &browserTimer{}
	t.id = js.Global.Call("setTimeout", func() {
		if t.done {
			return
		}
		t.done = true
		f()
	}, float64(d)/float64(time.Millisecond))
	return t
}

func (t *browserTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global.Call("clearTimeout", t.id)
	return true
}

// HasBrowser reports whether a JavaScript global object is present.
func HasBrowser() bool {
	return js.Global != nil && js.Global != js.Undefined
}
