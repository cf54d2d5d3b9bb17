package game

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/ukg-math-adventure/common"
)

var EnableDebug = true

// console returns the browser console, or nil outside a JS runtime.
func console() *js.Object {
	if !common.HasBrowser() {
		return nil
	}
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return nil
	}
	return c
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("log", args...)
	}
}

// Debugf logs a formatted message to the browser console if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("log", fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("warn", args...)
	}
}

// DebugError logs an error to the browser console if debug mode is enabled.
func DebugError(args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("error", args...)
	}
}
