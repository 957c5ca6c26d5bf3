//go:build cgo

package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show opens a window displaying img and blocks until it closes.
func Show(img image.Image, title string) error {
	if img == nil {
		return errors.New("viewer: nil image")
	}

	w := newWindow(img)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

type window struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func newWindow(img image.Image) *window {
	b := img.Bounds()
	return &window{src: img, width: b.Dx(), height: b.Dy()}
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	// Created lazily: ebiten images need the running game loop.
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at the figure's pixel size; ebiten scales
// it to the window.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
