// Package viewer shows a rendered figure in a desktop window.
//
// Show blocks the calling goroutine until the window is closed, either from
// the window manager or by pressing Esc or Q. Builds without cgo have no
// window backend and Show returns ErrNoDisplay.
package viewer

import "errors"

// ErrNoDisplay is returned when this build has no window backend.
var ErrNoDisplay = errors.New("viewer: no display backend in this build")
