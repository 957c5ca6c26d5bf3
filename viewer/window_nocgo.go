//go:build !cgo

package viewer

import "image"

// Show reports ErrNoDisplay; window support needs cgo.
func Show(img image.Image, title string) error {
	return ErrNoDisplay
}
