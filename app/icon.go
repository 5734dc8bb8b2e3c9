// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"gtkwin.org/app/internal/wm"
)

// MaxIconSize is the largest icon dimension passed to the window
// manager. Larger images are scaled down.
const MaxIconSize = 256

// ErrInvalidIcon is returned for empty images and malformed pixel
// buffers.
var ErrInvalidIcon = errors.New("app: invalid icon")

// Icon is a window icon.
type Icon struct {
	icon wm.Icon
}

// NewIcon converts img to an icon, scaling it down to MaxIconSize if
// necessary.
func NewIcon(img image.Image) (*Icon, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidIcon)
	}
	w, h := fitIcon(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return &Icon{icon: wm.Icon{Width: w, Height: h, Pix: dst.Pix}}, nil
}

// NewIconFromRGBA creates an icon from straight alpha RGBA pixels
// without row padding.
func NewIconFromRGBA(rgba []byte, width, height int) (*Icon, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidIcon, width, height)
	}
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d pixels", ErrInvalidIcon, len(rgba), width, height)
	}
	img := &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return NewIcon(img)
}

// Size returns the icon dimensions in pixels.
func (i *Icon) Size() (width, height int) {
	return i.icon.Width, i.icon.Height
}

func fitIcon(w, h int) (int, int) {
	if w <= MaxIconSize && h <= MaxIconSize {
		return w, h
	}
	if w >= h {
		return MaxIconSize, max(1, h*MaxIconSize/w)
	}
	return max(1, w*MaxIconSize/h), MaxIconSize
}
