//go:build cgo

package viewer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowLayoutMatchesImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	w := newWindow(img)

	width, height := w.Layout(1280, 960)
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)

	width, height = w.Layout(100, 100)
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)
}

func TestWindowOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 110, 70))
	w := newWindow(img)

	assert.Equal(t, 100, w.width)
	assert.Equal(t, 50, w.height)
	assert.Nil(t, w.img)
}

func TestShowNilImage(t *testing.T) {
	assert.Error(t, Show(nil, "empty"))
}
